// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/codec"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/plan"
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidID ensures plan IDs are hex and 32 chars (matches the ID generator).
func isValidID(v string) bool {
	if len(v) != 32 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, codec.ErrMalformed), errors.Is(err, plan.ErrInvalidQuery), errors.Is(err, plan.ErrUnknownOption):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, plan.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, plan.ErrSuperseded):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
