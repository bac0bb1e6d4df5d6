package accessfilter

import (
	"fmt"
	"strings"
)

// SecurityLabel is the parsed form of a record's security label header:
// attribute key -> attribute value, both normalised to upper case.
type SecurityLabel map[string]string

// ParseError reports a malformed security label string. A record whose
// label fails to parse is never admitted.
type ParseError struct {
	Raw     string
	Segment string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed security label %q: segment %q: %s", e.Raw, e.Segment, e.Reason)
}

// splitPair splits one label segment on '=' or ':'. Exactly two non-empty
// tokens are required.
func splitPair(segment string) (string, string, bool) {
	normalised := strings.ReplaceAll(segment, ":", "=")
	parts := strings.Split(normalised, "=")
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" || value == "" {
		return "", "", false
	}
	return key, value, true
}

// ParseLabel parses a comma-separated list of KEY=VALUE or KEY:VALUE
// pairs. Keys and values are upper-cased. Blank segments are skipped; any
// non-blank segment that does not split into exactly one key and one value
// is a hard failure, not a default. A duplicate key keeps the later value
// (last write wins).
func ParseLabel(raw string) (SecurityLabel, error) {
	label := make(SecurityLabel)

	for _, segment := range strings.Split(raw, ",") {
		if strings.TrimSpace(segment) == "" {
			continue
		}

		key, value, ok := splitPair(segment)
		if !ok {
			return nil, &ParseError{
				Raw:     raw,
				Segment: segment,
				Reason:  "expected exactly one key and one value",
			}
		}

		label[strings.ToUpper(key)] = strings.ToUpper(value)
	}

	return label, nil
}
