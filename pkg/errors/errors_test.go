package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("brand.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "brand.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "brand.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("palettes.light", "must contain exactly 12 stops", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "palettes.light", validationErr.Field)
	require.Contains(t, err.Error(), "12 stops")
}

func TestConfigErrorMessageVariants(t *testing.T) {
	t.Parallel()

	require.Equal(t, "config error [theme light_coral, palette light_coral]: palette not found",
		NewConfigError("light_coral", "light_coral", "palette not found").Error())
	require.Equal(t, "config error [theme light]: template not found",
		NewConfigError("light", "", "template not found").Error())
	require.Equal(t, "config error: no roots", NewConfigError("", "", "no roots").Error())
}

func TestFontLoadErrorTimeout(t *testing.T) {
	t.Parallel()

	err := NewFontLoadError("https://fonts.example/css2", true, ErrTimeout)

	var loadErr *FontLoadError
	require.ErrorAs(t, err, &loadErr)
	require.True(t, loadErr.Timeout)
	require.ErrorIs(t, err, ErrTimeout)
	require.Contains(t, err.Error(), "timed out")
}

func TestFontLoadErrorGeneric(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewFontLoadError("https://fonts.example/css2", false, underlying)
	require.ErrorIs(t, err, underlying)
	require.Contains(t, err.Error(), "connection refused")
}
