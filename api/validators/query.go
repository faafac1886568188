package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
)

// ParseQueryIntLenient parses an integer query parameter, falling back to
// defaultVal when the value is absent or malformed. Range clamping is left
// to the caller.
func ParseQueryIntLenient(r *http.Request, key string, defaultVal int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return value
}

// ParsePathID parses a positive integer route parameter.
func ParsePathID(raw string, message string) (int64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || value < 1 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, message)
	}
	return value, nil
}
