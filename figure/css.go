package figure

import "strings"

// ParseStyle splits an inline style attribute into its declarations.
// Property names are lower-cased; declarations without a value are dropped.
func ParseStyle(style string) map[string]string {
	styles := make(map[string]string)

	for _, rule := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(rule, ":")
		if !ok {
			continue
		}

		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		if prop == "" || value == "" {
			continue
		}

		styles[prop] = value
	}

	return styles
}
