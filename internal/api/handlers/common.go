package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/hojadevida/internal/forms"
	"github.com/yoockh/hojadevida/internal/utils"
)

type APIError struct {
	Code    utils.Code        `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	_ = c.Error(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
			Fields:  ae.Fields,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func requireUserID(c *gin.Context) (string, bool) {
	if v, ok := c.Get("user_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}

	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
	return "", false
}

// bindJSON decodes and validates the body into form. On failure it writes
// the error response and returns false.
func bindJSON(c *gin.Context, op string, form any) bool {
	err := c.ShouldBindJSON(form)
	if err == nil {
		return true
	}
	if verrs, ok := forms.AsValidation(err); ok {
		writeError(c, utils.Invalid(op, "invalid form data", verrs.Fields(), err))
	} else {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
	}
	return false
}
