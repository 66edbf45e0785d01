package services

import (
	"errors"

	"github.com/yoockh/hojadevida/internal/forms"
	"github.com/yoockh/hojadevida/internal/utils"
)

// invalid turns form errors into INVALID_ARGUMENT with per-field messages.
func invalid(op string, err error) error {
	if verrs, ok := forms.AsValidation(err); ok {
		return utils.Invalid(op, "invalid form data", verrs.Fields(), err)
	}
	return utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
}

func notFoundOr(op, what string, err error) error {
	if errors.Is(err, utils.ErrNotFound) {
		return utils.E(utils.CodeNotFound, op, what+" not found", err)
	}
	return utils.E(utils.CodeInternal, op, "failed to load "+what, err)
}
