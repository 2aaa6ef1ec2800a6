package request

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/graretg02/Superbowl-app2/internal/api/apierr"
)

var validate = validator.New()

// Decode reads a JSON body into dst and validates it
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierr.NewInvalidRequestError("Invalid request body")
	}
	if err := validate.StructCtx(r.Context(), dst); err != nil {
		return apierr.NewInvalidRequestError(fmt.Sprintf("Validation failed: %v", err))
	}
	return nil
}
