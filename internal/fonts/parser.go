package fonts

import "strings"

// Face is one usable @font-face declaration.
type Face struct {
	Family string
	Weight string
	Style  string
	URL    string
}

// Key returns the canonical loaded-font key for the face.
func (f Face) Key() string {
	return FaceKey(f.Family, f.Weight, f.Style)
}

// ParseFontFaces scans a stylesheet for @font-face blocks. Blocks missing a
// family or a url() source are dropped, as is an unterminated trailing block.
// Weight defaults to 400 and style to normal.
func ParseFontFaces(css string) []Face {
	var faces []Face
	for _, body := range fontFaceBlocks(css) {
		if face, ok := parseFaceBlock(body); ok {
			faces = append(faces, face)
		}
	}
	return faces
}

const atFontFace = "@font-face"

// fontFaceBlocks returns the brace-delimited bodies following each @font-face.
func fontFaceBlocks(css string) []string {
	var blocks []string
	i := 0
	for i < len(css) {
		switch {
		case strings.HasPrefix(css[i:], "/*"):
			end := strings.Index(css[i+2:], "*/")
			if end < 0 {
				return blocks
			}
			i += end + 4
		case hasPrefixFold(css[i:], atFontFace):
			i += len(atFontFace)
			for i < len(css) && isSpace(css[i]) {
				i++
			}
			if i >= len(css) || css[i] != '{' {
				continue
			}
			end := closingBrace(css, i+1)
			if end < 0 {
				return blocks
			}
			blocks = append(blocks, css[i+1:end])
			i = end + 1
		default:
			i++
		}
	}
	return blocks
}

// closingBrace finds the '}' that ends a block opened just before start,
// ignoring braces inside quotes and parentheses.
func closingBrace(css string, start int) int {
	var quote byte
	depth := 0
	for i := start; i < len(css); i++ {
		c := css[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == '}' && depth == 0:
			return i
		}
	}
	return -1
}

func parseFaceBlock(body string) (Face, bool) {
	face := Face{Weight: "400", Style: StyleNormal}
	for _, decl := range splitDeclarations(body) {
		colon := strings.IndexByte(decl, ':')
		if colon < 0 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(decl[:colon]))
		value := strings.TrimSpace(decl[colon+1:])
		switch prop {
		case "font-family":
			face.Family = unquote(value)
		case "font-weight":
			if value != "" {
				face.Weight = value
			}
		case "font-style":
			if value != "" {
				face.Style = value
			}
		case "src":
			if u, ok := firstURL(value); ok {
				face.URL = u
			}
		}
	}
	if face.Family == "" || face.URL == "" {
		return Face{}, false
	}
	return face, true
}

// splitDeclarations splits on ';' outside quotes and parentheses so data:
// URLs survive intact.
func splitDeclarations(body string) []string {
	var out []string
	var quote byte
	depth := 0
	start := 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == ';' && depth == 0:
			out = append(out, body[start:i])
			start = i + 1
		}
	}
	if rest := strings.TrimSpace(body[start:]); rest != "" {
		out = append(out, rest)
	}
	return out
}

func firstURL(value string) (string, bool) {
	idx := indexFold(value, "url(")
	if idx < 0 {
		return "", false
	}
	rest := value[idx+len("url("):]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return "", false
	}
	u := unquote(strings.TrimSpace(rest[:end]))
	return u, u != ""
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func indexFold(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
