package decorator

import (
	"fmt"
	"strings"
	"unicode"
)

// actionName derives the span and metric segment for a query or command
// value: "queries.GetBalanceQuery" becomes "get_balance".
func actionName(v any) string {
	name := fmt.Sprintf("%T", v)
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}

	name = strings.TrimPrefix(name, "*")
	for _, suffix := range []string{"Query", "Command"} {
		if trimmed := strings.TrimSuffix(name, suffix); trimmed != "" {
			name = trimmed
		}
	}

	var b strings.Builder

	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}
