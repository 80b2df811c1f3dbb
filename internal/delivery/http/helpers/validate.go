package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20 // 1 MB

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeAndValidate decodes the request body into dest (rejecting unknown
// fields) and runs struct-tag validation on it. On failure it writes a 400
// with the given message and returns false; callers should return
// immediately in that case.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any, message string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteValidationError(w, message, []string{err.Error()})
		return false
	}
	if err := validate.Struct(dest); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]string, 0, len(verrs))
			for _, ve := range verrs {
				details = append(details, fieldErrorMessage(ve))
			}
			WriteValidationError(w, message, details)
			return false
		}
		WriteError(w, http.StatusBadRequest, message)
		return false
	}
	return true
}

func fieldErrorMessage(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", ve.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", ve.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", ve.Field(), ve.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", ve.Field(), ve.Param())
	default:
		return fmt.Sprintf("%s is invalid", ve.Field())
	}
}
