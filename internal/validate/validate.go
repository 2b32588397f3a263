// Package validate builds the shared go-playground validator with the
// store's custom formats registered.
package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	slugRe      = regexp.MustCompile(`^[a-z0-9-]+$`)
	assetPathRe = regexp.MustCompile(`^/models/[a-z0-9-]+\.glb$`)
)

// New returns a validator that understands:
//
//	slug      - lowercase alphanumeric plus hyphens (model ids)
//	assetpath - fixed asset-path pattern for .glb files
func New() *validator.Validate {
	v := validator.New()

	// regexp-backed validations never fail to register
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("assetpath", func(fl validator.FieldLevel) bool {
		return assetPathRe.MatchString(fl.Field().String())
	})

	return v
}
