package handler

import (
	"strconv"
	"strings"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// splitParam parses a comma-separated query value into a set; blank
// segments are dropped. Returns nil for an empty value.
func splitParam(raw string) map[string]bool {
	if raw == "" {
		return nil
	}
	set := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			set[part] = true
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

func parseMillis(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
