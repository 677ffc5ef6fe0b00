package req

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/SuperOrca/sbshards/internal/domain"
	"github.com/SuperOrca/sbshards/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return domain.WrapError(
			fmt.Errorf("json.Decode: %w", err),
			errcodes.ValidationError,
			"Invalid JSON",
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return domain.WrapError(err, errcodes.ValidationError, "validation error")
	}

	return nil
}
