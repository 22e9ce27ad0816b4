package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

const requestIDPrefix = "PR"

var requestIDPattern = regexp.MustCompile(`^PR\d{4,}$`)

// FormatRequestID renders a sequence value as the public request identifier,
// zero-padded to four digits. Values past 9999 widen the field (PR10000)
// instead of wrapping.
func FormatRequestID(seq int) string {
	return fmt.Sprintf("%s%04d", requestIDPrefix, seq)
}

var ErrBadRequestKey = errors.New("malformed request identifier")

// RequestKey is a tagged lookup key for a single request: either the public
// PRxxxx identifier or the internal storage id. Exactly one side is set.
type RequestKey struct {
	Public   string
	Internal int
}

func (k RequestKey) IsPublic() bool {
	return k.Public != ""
}

// ParseRequestKey resolves a path segment into a RequestKey. The public PRxxxx
// form wins; anything else must parse as a positive storage id.
func ParseRequestKey(s string) (RequestKey, error) {
	if requestIDPattern.MatchString(s) {
		return RequestKey{Public: s}, nil
	}
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return RequestKey{}, fmt.Errorf("%w: %q", ErrBadRequestKey, s)
	}
	return RequestKey{Internal: id}, nil
}
