package codec

import (
	"gopkg.in/yaml.v3"

	goresult "github.com/reoring/goresult"
)

// EncodeYAML renders r as a YAML mapping, using the same wire rules as JSON
// (timestamps as canonical RFC3339 strings).
func EncodeYAML(r goresult.Response) ([]byte, error) {
	m, err := goresult.ToMap(r)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(toWire(m))
}

// DecodeYAML parses a YAML mapping and promotes it to a typed Response.
// yaml.v3 may resolve timestamp scalars to time.Time on its own; revive
// normalizes both that case and the plain-string case to UTC before FromMap
// re-validates.
func DecodeYAML(data []byte) (goresult.Response, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, goresult.Issues{{Path: "/", Code: goresult.CodeParseError, Message: "invalid YAML document", Cause: err}}
	}
	if m == nil {
		return nil, goresult.Issues{{Path: "/", Code: goresult.CodeParseError, Message: "expected a YAML mapping"}}
	}
	return goresult.FromMap(revive(m))
}
