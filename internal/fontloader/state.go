// Package fontloader makes a brand's typefaces available at runtime. The web
// strategy links the synthesized stylesheet into an HTML document and relies on
// font-display swap; the native strategy fetches the stylesheet, extracts its
// @font-face sources and hands them to an injected asset loader.
package fontloader

import "context"

// State is the observable result of a load. Loaded always converges to true;
// Err is non-nil only when a fetch or asset load failed and typography fell
// back to system fonts.
type State struct {
	Loaded bool
	Err    error
}

// AssetLoader is the platform capability that registers font resources.
// Sources maps canonical face keys (family_weight_style) to resource URLs.
type AssetLoader interface {
	LoadFonts(ctx context.Context, sources map[string]string) error
}

// AssetLoaderFunc adapts a function to AssetLoader.
type AssetLoaderFunc func(ctx context.Context, sources map[string]string) error

// LoadFonts calls f.
func (f AssetLoaderFunc) LoadFonts(ctx context.Context, sources map[string]string) error {
	return f(ctx, sources)
}

// Release undoes whatever a web load added to the document.
type Release func()

func noRelease() {}
