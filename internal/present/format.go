package present

import (
	"fmt"
	"sort"
	"strings"
)

// Format selects how a result or error is rendered.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

var formats = map[Format]bool{
	FormatText:  true,
	FormatJSON:  true,
	FormatYAML:  true,
	FormatTable: true,
}

// Formats returns the accepted format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for f := range formats {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// ParseFormat validates s. The empty string means text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	f := Format(strings.ToLower(s))
	if !formats[f] {
		return "", fmt.Errorf("%q (expected one of: %s)", s, strings.Join(Formats(), ", "))
	}
	return f, nil
}
