package fields

import (
	"regexp"
	"strings"
)

var commaSeparator = regexp.MustCompile("\\s*,\\s*")

// Split will take a comma-separated list and return the values without the blanks around them.
// Empty values are dropped.
func Split(s string) []string {
	res := make([]string, 0)
	for _, v := range commaSeparator.Split(strings.TrimSpace(s), -1) {
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}
