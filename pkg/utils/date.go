package utils

import (
	"fmt"
	"strings"
	"time"
)

var acceptedDateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseOptionalDate accepts an RFC 3339 timestamp or a plain date. An empty
// value yields nil.
func ParseOptionalDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	return nil, fmt.Errorf("unrecognized date %q", value)
}

func ConvertDateTimeToHumanReadableFormat(t time.Time) string {
	return t.UTC().Format("02 January 2006, 15:04 MST")
}
