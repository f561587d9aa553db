package shoppinglist

import "strings"

// unitWords are leading quantity/unit tokens stripped before matching.
// The set is closed on purpose: normalization is a dedupe heuristic, not an
// ingredient parser.
var unitWords = map[string]struct{}{
	"bag":         {},
	"bags":        {},
	"bunch":       {},
	"bunches":     {},
	"can":         {},
	"cans":        {},
	"clove":       {},
	"cloves":      {},
	"cup":         {},
	"cups":        {},
	"dash":        {},
	"g":           {},
	"gram":        {},
	"grams":       {},
	"handful":     {},
	"kg":          {},
	"l":           {},
	"large":       {},
	"lb":          {},
	"lbs":         {},
	"liter":       {},
	"liters":      {},
	"medium":      {},
	"ml":          {},
	"of":          {},
	"ounce":       {},
	"ounces":      {},
	"oz":          {},
	"package":     {},
	"packages":    {},
	"piece":       {},
	"pieces":      {},
	"pinch":       {},
	"pound":       {},
	"pounds":      {},
	"slice":       {},
	"slices":      {},
	"small":       {},
	"stick":       {},
	"sticks":      {},
	"tablespoon":  {},
	"tablespoons": {},
	"tbsp":        {},
	"teaspoon":    {},
	"teaspoons":   {},
	"tsp":         {},
}

// Normalize canonicalizes an ingredient line for duplicate detection:
// lowercase, collapsed whitespace, leading quantity/unit tokens stripped.
// "2 cups flour" and "flour" normalize to the same key.
func Normalize(raw string) string {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return ""
	}

	start := 0
	for start < len(fields) {
		token := fields[start]
		if !isQuantityToken(token) {
			if _, ok := unitWords[token]; !ok {
				break
			}
		}
		start++
	}

	// Quantity-only lines keep the full cleaned form rather than vanishing.
	if start == len(fields) {
		start = 0
	}

	return strings.Join(fields[start:], " ")
}

// Dedupe removes duplicate ingredients by canonical key, keeping the
// first-seen display text for each key.
func Dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := Normalize(item)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// isQuantityToken reports whether the token is numeric-ish: "2", "1.5",
// "1/2", "½", "1-2".
func isQuantityToken(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == '/' || r == '-' || r == ',':
		case r == '½' || r == '⅓' || r == '⅔' || r == '¼' || r == '¾' || r == '⅛':
		default:
			return false
		}
	}
	return true
}
