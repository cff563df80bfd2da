package response

import "github.com/gin-gonic/gin"

// List writes the standard listing envelope.
func List(c *gin.Context, statusCode, total, from, to int, isLastPage bool, data any) {
	c.JSON(statusCode, gin.H{
		"total":        total,
		"from":         from,
		"to":           to,
		"is_last_page": isLastPage,
		"data":         data,
	})
}

// Message writes a mutation success body.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Error writes a failure body. details may be a string or a field map.
func Error(c *gin.Context, statusCode int, details any) {
	c.JSON(statusCode, gin.H{"error": details})
}
