// Package codec converts Response values to and from wire formats (JSON,
// YAML). It is the handoff surface for serialization collaborators: encoding
// goes through goresult.ToMap, decoding revives wire scalars and promotes the
// map through goresult.FromMap, which re-checks every field constraint.
package codec

import (
	"time"

	goresult "github.com/reoring/goresult"
)

// toWire prepares a map projection for marshalling. The timestamp metadata
// value is rendered as a canonical RFC3339 string (UTC, trailing zeros
// trimmed); everything else is emitted as-is.
func toWire(m map[string]any) map[string]any {
	t, ok := m[goresult.KeyTimestamp].(time.Time)
	if !ok {
		return m
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	out[goresult.KeyTimestamp] = t.UTC().Format(time.RFC3339Nano)
	return out
}

// revive undoes the wire rendering before validation. A timestamp string in
// RFC3339 form becomes a time.Time again; anything unparseable is left
// untouched so that FromMap reports it as an invalid timestamp.
func revive(m map[string]any) map[string]any {
	switch v := m[goresult.KeyTimestamp].(type) {
	case string:
		if t, err := parseRFC3339(v); err == nil {
			m[goresult.KeyTimestamp] = t
		}
	case time.Time:
		m[goresult.KeyTimestamp] = v.UTC()
	}
	return m
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2.UTC(), nil
		}
		return time.Time{}, err
	}
	return t.UTC(), nil
}
