package goresult

import (
	"fmt"
	"time"
)

// IsSuccess reports whether v is a member of the success set: a Success value,
// or a plain map carrying the "ok" status tag, whose recognized metadata all
// satisfies its constraints.
func IsSuccess(v any) bool { return len(checkSuccess(v)) == 0 }

// IsFailure reports whether v is a member of the failure set: a Failure value,
// or a plain map carrying a non-"ok" status tag and a non-empty title, whose
// recognized metadata all satisfies its constraints.
func IsFailure(v any) bool { return len(checkFailure(v)) == 0 }

// IsResponse reports whether v belongs to either variant set.
func IsResponse(v any) bool { return IsSuccess(v) || IsFailure(v) }

// Validate checks v for membership in the response union. It returns nil on
// success and a *ValidationError carrying v and the failing issues otherwise.
func Validate(v any) error {
	iss := checkResponse(v)
	if len(iss) == 0 {
		return nil
	}
	return &ValidationError{Value: v, Issues: iss}
}

// checkResponse dispatches on the candidate's tag: the concrete variant type
// for typed values, the "status" key for plain maps.
func checkResponse(v any) Issues {
	switch c := v.(type) {
	case Success:
		return checkSuccess(c)
	case Failure:
		return checkFailure(c)
	case map[string]any:
		st, ok := tagOf(c)
		if !ok {
			return Issues{{Path: "/" + KeyStatus, Code: CodeDiscriminatorMissing, Message: "status tag is missing or not a string"}}
		}
		if st == StatusOK {
			return checkSuccessMap(c)
		}
		return checkFailureMap(c)
	default:
		return Issues{{Path: "/", Code: CodeInvalidType, Message: "expected a Response or map[string]any", Params: typeParam(v)}}
	}
}

func checkSuccess(v any) Issues {
	switch c := v.(type) {
	case Success:
		iss := checkShadowedKeys(c.Extra, KeyStatus, KeyResult)
		return append(iss, checkMeta(c.Extra, false)...)
	case map[string]any:
		st, ok := tagOf(c)
		if !ok {
			return Issues{{Path: "/" + KeyStatus, Code: CodeDiscriminatorMissing, Message: "status tag is missing or not a string"}}
		}
		if st != StatusOK {
			return Issues{{Path: "/" + KeyStatus, Code: CodeInvalidType, Message: `status must be "ok"`, Params: map[string]any{"got": string(st)}}}
		}
		return checkSuccessMap(c)
	default:
		return Issues{{Path: "/", Code: CodeInvalidType, Message: "expected a Success or map[string]any", Params: typeParam(v)}}
	}
}

func checkFailure(v any) Issues {
	switch c := v.(type) {
	case Failure:
		return checkFailureValue(c)
	case map[string]any:
		st, ok := tagOf(c)
		if !ok {
			return Issues{{Path: "/" + KeyStatus, Code: CodeDiscriminatorMissing, Message: "status tag is missing or not a string"}}
		}
		if st == StatusOK {
			return Issues{{Path: "/" + KeyStatus, Code: CodeReservedStatus, Message: `"ok" is reserved for the success variant`}}
		}
		return checkFailureMap(c)
	default:
		return Issues{{Path: "/", Code: CodeInvalidType, Message: "expected a Failure or map[string]any", Params: typeParam(v)}}
	}
}

func checkFailureValue(f Failure) Issues {
	var iss Issues
	if f.Status == "" {
		iss = append(iss, Issue{Path: "/" + KeyStatus, Code: CodeRequired, Message: "status is required"})
	} else if f.Status == StatusOK {
		iss = append(iss, Issue{Path: "/" + KeyStatus, Code: CodeReservedStatus, Message: `"ok" is reserved for the success variant`})
	}
	if f.Title == "" {
		iss = append(iss, Issue{Path: "/" + KeyTitle, Code: CodeTooShort, Message: "title must not be empty"})
	}
	iss = append(iss, checkShadowedKeys(f.Extra, KeyStatus, KeyTitle)...)
	return append(iss, checkMeta(f.Extra, true)...)
}

// checkShadowedKeys rejects extras that would collide with a variant's fixed
// fields. Allowing them would make the map projection lossy.
func checkShadowedKeys(m map[string]any, fixed ...string) Issues {
	var iss Issues
	for _, k := range fixed {
		if _, ok := m[k]; ok {
			iss = append(iss, Issue{Path: "/" + k, Code: CodeInvalidType, Message: k + " is a fixed field and cannot appear in the extension map"})
		}
	}
	return iss
}

func checkSuccessMap(m map[string]any) Issues {
	meta := make(map[string]any, len(m))
	for k, v := range m {
		if k == KeyStatus || k == KeyResult {
			continue
		}
		meta[k] = v
	}
	return checkMeta(meta, false)
}

func checkFailureMap(m map[string]any) Issues {
	var iss Issues
	st, _ := tagOf(m)
	if st == "" {
		iss = append(iss, Issue{Path: "/" + KeyStatus, Code: CodeTooShort, Message: "status must not be empty"})
	}
	tv, ok := m[KeyTitle]
	if !ok {
		iss = append(iss, Issue{Path: "/" + KeyTitle, Code: CodeRequired, Message: "title is required"})
	} else if s, isStr := tv.(string); !isStr {
		iss = append(iss, Issue{Path: "/" + KeyTitle, Code: CodeInvalidType, Message: "title must be a string", Params: typeParam(tv)})
	} else if s == "" {
		iss = append(iss, Issue{Path: "/" + KeyTitle, Code: CodeTooShort, Message: "title must not be empty"})
	}
	meta := make(map[string]any, len(m))
	for k, v := range m {
		if k == KeyStatus || k == KeyTitle {
			continue
		}
		meta[k] = v
	}
	return append(iss, checkMeta(meta, true)...)
}

// checkMeta validates the recognized optional keys of an extension map.
// Unrecognized keys pass through untouched: the schema is open for unknown
// keys but closed for the recognized ones. The failure-only keys (detail,
// retryable, cause, fields) are recognized only when failure is set; on a
// success they count as unknown keys.
func checkMeta(m map[string]any, failure bool) Issues {
	var iss Issues
	iss = checkStringMeta(iss, m, KeyTraceID)
	if v, ok := m[KeyTimestamp]; ok {
		if _, isTime := v.(time.Time); !isTime {
			iss = append(iss, Issue{Path: "/" + KeyTimestamp, Code: CodeInvalidType, Message: "timestamp must be a time.Time", Params: typeParam(v)})
		}
	}
	if !failure {
		return iss
	}
	iss = checkStringMeta(iss, m, KeyDetail)
	iss = checkStringMeta(iss, m, KeyCause)
	if v, ok := m[KeyRetryable]; ok {
		if _, isBool := v.(bool); !isBool {
			iss = append(iss, Issue{Path: "/" + KeyRetryable, Code: CodeInvalidType, Message: "retryable must be a bool", Params: typeParam(v)})
		}
	}
	if v, ok := m[KeyFields]; ok {
		iss = append(iss, checkFields(v)...)
	}
	return iss
}

func checkStringMeta(iss Issues, m map[string]any, key string) Issues {
	v, ok := m[key]
	if !ok {
		return iss
	}
	s, isStr := v.(string)
	if !isStr {
		return append(iss, Issue{Path: "/" + key, Code: CodeInvalidType, Message: key + " must be a string", Params: typeParam(v)})
	}
	if s == "" {
		return append(iss, Issue{Path: "/" + key, Code: CodeTooShort, Message: key + " must not be empty"})
	}
	return iss
}

func checkFields(v any) Issues {
	var m map[string]any
	switch fe := v.(type) {
	case FieldErrors:
		m = fe
	case map[string]any:
		m = fe
	default:
		return Issues{{Path: "/" + KeyFields, Code: CodeInvalidType, Message: "fields must be a map of field name to error payload", Params: typeParam(v)}}
	}
	var iss Issues
	for k := range m {
		if k == "" {
			iss = append(iss, Issue{Path: "/" + KeyFields, Code: CodeTooShort, Message: "field names must not be empty"})
		}
	}
	return iss
}

// tagOf extracts the status tag from a map candidate. A Status or plain
// string value is accepted; anything else reports absence.
func tagOf(m map[string]any) (Status, bool) {
	switch st := m[KeyStatus].(type) {
	case Status:
		return st, true
	case string:
		return Status(st), true
	default:
		return "", false
	}
}

func typeParam(v any) map[string]any {
	return map[string]any{"got": fmt.Sprintf("%T", v)}
}
