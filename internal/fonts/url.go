package fonts

import (
	"sort"
	"strconv"
	"strings"
)

// DefaultServiceURL is the font-CSS endpoint stylesheet URLs point at.
const DefaultServiceURL = "https://fonts.googleapis.com/css2"

var systemFonts = []string{
	"system-ui",
	"-apple-system",
	"BlinkMacSystemFont",
	"Segoe UI",
	"Roboto",
	"Helvetica",
	"Arial",
	"sans-serif",
	"serif",
	"monospace",
	"ui-monospace",
	"SFMono-Regular",
	"SF Mono",
	"Menlo",
	"Consolas",
	"Georgia",
	"Times New Roman",
}

// IsSystemFont reports whether family is a platform or generic font that is
// never requested from the font service.
func IsSystemFont(family string) bool {
	for _, name := range systemFonts {
		if strings.EqualFold(name, family) {
			return true
		}
	}
	return false
}

func loadable(family string) bool {
	return strings.TrimSpace(family) != "" && !IsSystemFont(family)
}

// ExtractFamilies returns the unique externally loadable families in slot
// order (heading, body, mono, quote).
func ExtractFamilies(cfg *Config) []string {
	if cfg == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(Slots))
	var out []string
	for _, slot := range Slots {
		family := cfg.Family(slot)
		if !loadable(family) {
			continue
		}
		if _, ok := seen[family]; ok {
			continue
		}
		seen[family] = struct{}{}
		out = append(out, family)
	}
	return out
}

// BuildStylesheetURL synthesizes the stylesheet URL against DefaultServiceURL.
func BuildStylesheetURL(cfg *Config) string {
	return BuildStylesheetURLWithBase(DefaultServiceURL, cfg)
}

// BuildStylesheetURLWithBase synthesizes the stylesheet URL against base. It
// returns "" when no slot names a loadable family.
func BuildStylesheetURLWithBase(base string, cfg *Config) string {
	families := ExtractFamilies(cfg)
	if len(families) == 0 {
		return ""
	}

	weights := make(map[string]map[int]struct{}, len(families))
	for _, slot := range Slots {
		family := cfg.Family(slot)
		if !loadable(family) {
			continue
		}
		set, ok := weights[family]
		if !ok {
			set = make(map[int]struct{})
			weights[family] = set
		}
		for _, w := range cfg.Weights(slot) {
			set[w] = struct{}{}
		}
	}

	italicFamily := ""
	if cfg.Quote.EffectiveStyle() == StyleItalic {
		italicFamily = cfg.Quote.Family
	}

	params := make([]string, 0, len(families)+1)
	for _, family := range families {
		sorted := sortedWeights(weights[family])
		name := strings.ReplaceAll(family, " ", "+")
		if family == italicFamily {
			params = append(params, "family="+name+":ital,wght@"+italicSpecifier(sorted))
			continue
		}
		params = append(params, "family="+name+":wght@"+joinInts(sorted, ";"))
	}
	params = append(params, "display=swap")

	return base + "?" + strings.Join(params, "&")
}

func sortedWeights(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Ints(out)
	return out
}

// italicSpecifier lists upright tuples before italic ones, as the service
// requires tuples in ascending order.
func italicSpecifier(weights []int) string {
	pairs := make([]string, 0, len(weights)*2)
	for _, w := range weights {
		pairs = append(pairs, "0,"+strconv.Itoa(w))
	}
	for _, w := range weights {
		pairs = append(pairs, "1,"+strconv.Itoa(w))
	}
	return strings.Join(pairs, ";")
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
