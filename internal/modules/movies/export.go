package movies

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"marcus/internal/domain"
	"marcus/internal/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportColumns = []string{"ID", "Movie ID", "Movie Name", "Platform", "Tags", "Content", "Created At"}

// ExportCritics streams every critique as an xlsx workbook.
func (h *Handler) ExportCritics(c *gin.Context) {
	rows, _, err := h.service.ListCritics(c.Request.Context(), ListParams{})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to export critics")
		return
	}

	f, err := criticsWorkbook(rows)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to build workbook")
		return
	}
	defer f.Close()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="critics.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		// Headers are already gone; nothing left to do but log via gin.
		_ = c.Error(err)
	}
}

func criticsWorkbook(rows []domain.MovieCritic) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []any{
			row.ID,
			row.MovieID,
			row.MovieName,
			row.Platform,
			row.Tags,
			row.Content,
			row.CreatedAt.Format(time.RFC3339),
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	return f, nil
}
