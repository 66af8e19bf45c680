package brand

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/brandkit/internal/theme"
	apperrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	accentNamePattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	hexAlphaPattern   = regexp.MustCompile(`^#[0-9a-fA-F]{8}$`)
	colorFuncPrefixes = []string{"rgb(", "rgba(", "hsl(", "hsla("}
	reservedAccents   = map[string]struct{}{}
)

func init() {
	for _, name := range theme.SurfaceNames {
		reservedAccents[name] = struct{}{}
	}
	reservedAccents[theme.TemplateBase] = struct{}{}
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("palette", func(fl validator.FieldLevel) bool {
			field := fl.Field()
			return field.Kind() == reflect.Slice && field.Len() == theme.PaletteStops
		})

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			return isHexColor(fl.Field().String())
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return IsColor(fl.Field().String())
		})

		_ = v.RegisterValidation("accent_name", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			if _, reserved := reservedAccents[name]; reserved {
				return false
			}
			return accentNamePattern.MatchString(name)
		})

		validateInst = v
	})

	return validateInst
}

func isHexColor(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}

// IsColor accepts #rgb, #rrggbb, #rrggbbaa and rgb()/rgba()/hsl()/hsla() values.
func IsColor(s string) bool {
	s = strings.TrimSpace(s)
	if isHexColor(s) || hexAlphaPattern.MatchString(s) {
		return true
	}
	lower := strings.ToLower(s)
	for _, prefix := range colorFuncPrefixes {
		if strings.HasPrefix(lower, prefix) && strings.HasSuffix(lower, ")") {
			return true
		}
	}
	return false
}

// Validate checks a definition's schema.
func Validate(def *Definition) error {
	if def == nil {
		return apperrors.NewValidationError("brand", "definition is nil", nil)
	}
	if err := validatorInstance().Struct(def); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		switch ve.Tag() {
		case "palette":
			msg = fmt.Sprintf("%s must contain exactly %d color stops", field, theme.PaletteStops)
		case "hex_color":
			msg = fmt.Sprintf("%s must be a hex color, got %q", field, ve.Value())
		}
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("brand", err.Error(), err)
}

// fieldName drops the root struct name from the yaml-tag namespace.
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.IndexByte(ns, '.'); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
