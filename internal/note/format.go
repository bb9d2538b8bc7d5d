package note

import (
	"strings"

	"github.com/araddon/dateparse"
)

// FormatTimestamp renders a server timestamp in local time using layout. The
// raw value is returned when it cannot be parsed.
func FormatTimestamp(raw, layout string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}
	return t.Local().Format(layout)
}
