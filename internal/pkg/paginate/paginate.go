// Package paginate slices row sets into 1-based pages for the listing
// envelope (total / from / to / is_last_page).
package paginate

// Window describes one page of a result set. Lo and Hi are half-open slice
// bounds into the ordered rows; From and To are the 1-based inclusive
// positions reported to the client (both 0 when the page is empty).
type Window struct {
	Lo      int
	Hi      int
	From    int
	To      int
	Total   int
	HasNext bool
}

// Paginate computes the window for the given page number over total rows.
//
// A nil size means no pagination: the whole set is one page and HasNext is
// always false. Otherwise pages out of range are clamped to the nearest
// valid page, so page 0 serves page 1 and a page past the end serves the
// last page.
func Paginate(total, page int, size *int) Window {
	if size == nil {
		return Window{
			Lo:    0,
			Hi:    total,
			From:  boundedStart(total),
			To:    total,
			Total: total,
		}
	}

	if total == 0 {
		return Window{Total: 0}
	}

	perPage := *size
	lastPage := (total + perPage - 1) / perPage
	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}

	lo := (page - 1) * perPage
	hi := lo + perPage
	if hi > total {
		hi = total
	}

	return Window{
		Lo:      lo,
		Hi:      hi,
		From:    lo + 1,
		To:      hi,
		Total:   total,
		HasNext: page < lastPage,
	}
}

func boundedStart(total int) int {
	if total == 0 {
		return 0
	}
	return 1
}
