package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ppa-analysis/internal/api/models"
)

// Recovery converts panics into the standard error envelope. Engine and
// validation errors never panic; this is a backstop for programming mistakes.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		case fmt.Stringer:
			msg = v.String()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
	})
}
