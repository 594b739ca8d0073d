package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "rewardstracker/internal/errors"
	"rewardstracker/internal/logger"
	rules "rewardstracker/internal/validator"
)

// ErrorResponse represents an error response. Error is always a plain string
// so clients can surface it verbatim.
type ErrorResponse struct {
	Error  string                 `json:"error"`
	Code   string                 `json:"code,omitempty"`
	Fields []apperrors.FieldError `json:"fields,omitempty"`
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{
			Error:  appErr.Message,
			Code:   appErr.Code,
			Fields: appErr.Fields,
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Error: apperrors.ErrInternalServer.Message,
		Code:  apperrors.ErrInternalServer.Code,
	})
}

// bindingError converts a ShouldBindJSON failure into an AppError. Failed
// field rules become per-field messages; anything else is a malformed body.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid request body")
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldError(fe))
	}
	appErr := apperrors.Validation(fields)
	appErr.Message = fields[0].Message
	return appErr
}

func fieldError(fe validator.FieldError) apperrors.FieldError {
	switch fe.Tag() {
	case "email_shape":
		return apperrors.FieldError{Field: rules.FieldEmail, Message: "Please enter a valid email"}
	case "phone10":
		return apperrors.FieldError{Field: rules.FieldPhone, Message: "Please enter a valid 10-digit phone number"}
	default:
		return apperrors.FieldError{Field: fe.Field(), Message: "Invalid " + fe.Field()}
	}
}
