package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amogh004/store-ratings-platform/internal/logger"
)

// HandleError writes an AppError as the API's JSON error body:
// {"errors": {field: message}} for validation failures, {"message": ...}
// for everything else. Internal causes are logged, never sent to clients.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= http.StatusInternalServerError {
		logger.CtxWithError(c.Request.Context(), "server error", err,
			"code", string(err.Code),
			"path", c.Request.URL.Path,
		)
	}

	if len(err.Details) > 0 {
		c.JSON(err.HTTPCode, gin.H{"errors": err.Details})
		return
	}
	c.JSON(err.HTTPCode, gin.H{"message": err.Message})
}

// AbortWithError is HandleError plus request abortion, for middleware.
func AbortWithError(c *gin.Context, err *AppError) {
	HandleError(c, err)
	c.Abort()
}
