package fonts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const serviceStylesheet = `/* cyrillic */
@font-face {
  font-family: 'Lora';
  font-style: italic;
  font-weight: 400;
  font-display: swap;
  src: url(https://fonts.gstatic.com/s/lora/v35/cyrillic.ttf) format('truetype');
  unicode-range: U+0301, U+0400-045F;
}
/* latin */
@font-face {
  font-family: 'Lora';
  font-style: italic;
  font-weight: 400;
  font-display: swap;
  src: url(https://fonts.gstatic.com/s/lora/v35/latin.ttf) format('truetype');
}
@font-face {
  font-family: "Inter";
  src: url("https://fonts.gstatic.com/s/inter/v13/inter.ttf");
}
`

func TestParseFontFacesExtractsFields(t *testing.T) {
	t.Parallel()

	faces := ParseFontFaces(serviceStylesheet)
	require.Len(t, faces, 3)

	require.Equal(t, Face{
		Family: "Lora",
		Weight: "400",
		Style:  "italic",
		URL:    "https://fonts.gstatic.com/s/lora/v35/latin.ttf",
	}, faces[1])
	require.Equal(t, "Lora_400_italic", faces[1].Key())

	require.Equal(t, Face{
		Family: "Inter",
		Weight: "400",
		Style:  "normal",
		URL:    "https://fonts.gstatic.com/s/inter/v13/inter.ttf",
	}, faces[2])
}

func TestParseFontFacesDropsIncompleteBlocks(t *testing.T) {
	t.Parallel()

	css := `
@font-face { font-family: 'NoSource'; font-weight: 700; }
@font-face { src: url(https://example.com/nofamily.ttf); }
@font-face { font-family: Kept; src: local('Kept'), url(https://example.com/kept.ttf); }
`
	faces := ParseFontFaces(css)
	require.Len(t, faces, 1)
	require.Equal(t, "Kept", faces[0].Family)
	require.Equal(t, "https://example.com/kept.ttf", faces[0].URL)
}

func TestParseFontFacesHandlesDataURLs(t *testing.T) {
	t.Parallel()

	css := `@font-face{font-family:Embedded;font-weight:600;src:url(data:font/woff2;base64,AAAA) format("woff2")}`
	faces := ParseFontFaces(css)
	require.Len(t, faces, 1)
	require.Equal(t, "data:font/woff2;base64,AAAA", faces[0].URL)
	require.Equal(t, "600", faces[0].Weight)
}

func TestParseFontFacesFailsClosedOnUnterminatedBlock(t *testing.T) {
	t.Parallel()

	css := `@font-face { font-family: A; src: url(https://example.com/a.ttf); }
@font-face { font-family: B; src: url(https://example.com/b.ttf);`

	var faces []Face
	require.NotPanics(t, func() { faces = ParseFontFaces(css) })
	require.Len(t, faces, 1)
	require.Equal(t, "A", faces[0].Family)
}

func TestParseFontFacesIgnoresOtherRules(t *testing.T) {
	t.Parallel()

	css := `body { font-family: 'Nope'; } /* @font-face { font-family: Commented; src: url(x); } */ @media print { a { color: red } }`
	require.Empty(t, ParseFontFaces(css))
	require.Empty(t, ParseFontFaces(""))
	require.Empty(t, ParseFontFaces("<html>not css</html>"))
}
