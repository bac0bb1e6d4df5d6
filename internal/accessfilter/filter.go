package accessfilter

import (
	"strings"

	"github.com/National-Digital-Twin/federator-sub004/internal/domain/entity"
)

// Grant is the set of attribute values a client is authorised to receive:
// attribute key -> allowed values. Keys and values are normalised to upper
// case on construction. A Grant is immutable for the duration of a session.
type Grant map[string][]string

// NewGrant builds a Grant from raw configuration values, upper-casing all
// keys and values.
func NewGrant(raw map[string][]string) Grant {
	grant := make(Grant, len(raw))
	for key, values := range raw {
		upper := make([]string, len(values))
		for i, v := range values {
			upper[i] = strings.ToUpper(v)
		}
		grant[strings.ToUpper(key)] = upper
	}
	return grant
}

// permits reports whether value is one of the authorised values for key.
func (g Grant) permits(key, value string) bool {
	for _, allowed := range g[key] {
		if allowed == value {
			return true
		}
	}
	return false
}

// Decide returns true when the record carrying label may be released under
// grant. Every attribute the grant cares about must be present in the
// label with an authorised value; a missing attribute is a deny.
func Decide(label SecurityLabel, grant Grant) bool {
	for key := range grant {
		value, present := label[key]
		if !present {
			return false
		}
		if !grant.permits(key, value) {
			return false
		}
	}
	return true
}

// Filter gates records against a single client's grant.
type Filter struct {
	grant Grant
}

// New creates a filter for one client's grant.
func New(grant Grant) *Filter {
	return &Filter{grant: grant}
}

// FilterOut reports whether the record must be withheld from the client.
// A record without a security label header is evaluated against an empty
// label, so it passes only a grant that requires no attributes. A label
// that fails to parse withholds the record: admission defaults to deny on
// any parse failure. The returned error is non-nil only for parse
// failures, so callers can audit them distinctly from ordinary denials.
func (f *Filter) FilterOut(rec *entity.Record) (bool, error) {
	label := SecurityLabel{}

	if raw, ok := rec.SecurityLabel(); ok {
		parsed, err := ParseLabel(raw)
		if err != nil {
			return true, err
		}
		label = parsed
	}

	return !Decide(label, f.grant), nil
}

// Close releases cached resources. The filter is stateless, so this is a
// no-op kept for symmetry with the other session collaborators.
func (f *Filter) Close() error {
	return nil
}
