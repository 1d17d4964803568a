package middleware

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"video-transcriber/internal/api/errors"
)

func init() {
	// Report JSON field names (videoId) rather than Go names (VideoID)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateRequest binds the JSON body and validates struct tags and domain
// rules. Failures are returned as 400 errors naming the first bad field.
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		var validationErrs validator.ValidationErrors
		if stderrors.As(err, &validationErrs) && len(validationErrs) > 0 {
			fieldError := validationErrs[0]
			switch fieldError.Tag() {
			case "required":
				return errors.NewBadRequestError(fieldError.Field() + " is required")
			default:
				return errors.NewBadRequestError(fieldError.Field() + " is invalid")
			}
		}
		return errors.NewBadRequestError("invalid JSON body")
	}

	if validator, ok := req.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return err
		}
	}

	return nil
}
