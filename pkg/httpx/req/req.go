package req

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"num_market/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

// ReadRaw returns the request body as is. The body must be a single valid JSON
// document no longer than maxBytes.
func ReadRaw(r *http.Request, maxBytes int64) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBytes))
	if err != nil {
		return nil, failure.NewInvalidArgumentError(
			fmt.Errorf("io.ReadAll: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Request body is too large"),
		)
	}

	if !json.Valid(body) {
		return nil, failure.NewInvalidArgumentError(
			"json.Valid: invalid JSON",
			failure.WithCode(errcodes.InvalidJSONBody),
			failure.WithDescription("Invalid JSON"),
		)
	}

	return body, nil
}

// Validate checks the `validate` struct tags of dest.
func Validate(ctx context.Context, dest any) error {
	if err := validate.StructCtx(ctx, dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}
