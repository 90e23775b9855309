package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/de0k/mobcard-server/internal/pkg/response"
)

// handleError is the fallthrough for errors the endpoint did not map itself.
// Store-level failures (including foreign-key violations on contact saves)
// end up here as a generic 500.
func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	logutil.GetLogger(c.Request.Context()).Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	response.Fail(c, http.StatusInternalServerError, "internal error")
}
