package handlers

import (
	"net/http"

	"salonbook/services"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var statusByKind = map[services.ErrorKind]int{
	services.KindValidation:    http.StatusBadRequest,
	services.KindNotFound:      http.StatusNotFound,
	services.KindRuleViolation: http.StatusUnprocessableEntity,
	services.KindUpstream:      http.StatusBadGateway,
	services.KindUnconfigured:  http.StatusServiceUnavailable,
	services.KindInternal:      http.StatusInternalServerError,
}

// respondError renders an engine error as {"error", "code"} with the status its kind maps to.
// Causes of internal and upstream failures are logged but never sent to the client.
func respondError(c *gin.Context, err error) {
	ee := services.AsEngineError(err)
	status, ok := statusByKind[ee.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		getLogger(c).Error("request failed",
			zap.String("code", ee.Code), zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, utils.ErrorResponse{Error: ee.Message, Code: ee.Code})
}

func respondBadRequest(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, utils.ErrorResponse{
		Error:   "invalid input",
		Code:    "INVALID_INPUT",
		Details: details,
	})
}
