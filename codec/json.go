package codec

import (
	json "github.com/goccy/go-json"

	goresult "github.com/reoring/goresult"
)

// EncodeJSON renders r as a flat JSON object: the status tag, the variant's
// own fields and every extension key.
func EncodeJSON(r goresult.Response) ([]byte, error) {
	m, err := goresult.ToMap(r)
	if err != nil {
		return nil, err
	}
	return json.Marshal(toWire(m))
}

// DecodeJSON parses a JSON object and promotes it to a typed Response. The
// document must be a JSON object; field constraints are re-validated by
// FromMap, so untrusted wire data is never accepted blindly.
func DecodeJSON(data []byte) (goresult.Response, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, goresult.Issues{{Path: "/", Code: goresult.CodeParseError, Message: "invalid JSON document", Cause: err}}
	}
	return goresult.FromMap(revive(m))
}
