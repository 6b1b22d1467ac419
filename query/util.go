package query

import "strings"

// quote wraps s in double quotes. s is not escaped.
func quote(s string) string {
	return `"` + s + `"`
}

func cleanEmptyElements(elements []string) []string {
	var result []string
	for _, e := range elements {
		if strings.TrimSpace(e) != "" {
			result = append(result, e)
		}
	}
	return result
}
