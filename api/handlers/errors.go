package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travisco/apperr"
	"travisco/dto"
)

// respondError is the single place errors become HTTP responses. Caller
// faults map to 400, everything else to 500; the body always carries the
// error message, with the upstream cause embedded as detail.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if apperr.KindOf(err) == apperr.KindValidation {
		status = http.StatusBadRequest
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}
