package codec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	goresult "github.com/reoring/goresult"
	"github.com/reoring/goresult/codec"
)

func TestJSON_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 4, 3, 2, 1, 500000000, time.UTC)
	responses := []goresult.Response{
		goresult.MustOK("data"),
		goresult.MustOK(nil, map[string]any{"trace_id": "req-1", "timestamp": ts}),
		goresult.MustFail("timeout", "Request timeout", map[string]any{
			"timestamp": ts,
			"retryable": true,
			"fields":    map[string]any{"host": "unreachable"},
		}),
	}
	for _, r := range responses {
		data, err := codec.EncodeJSON(r)
		require.NoError(t, err)
		back, err := codec.DecodeJSON(data)
		require.NoError(t, err)
		require.Equal(t, r, back)
	}
}

func TestJSON_EncodeTimestampCanonical(t *testing.T) {
	loc := time.FixedZone("JST", 9*3600)
	s := goresult.MustOK(nil, map[string]any{"timestamp": time.Date(2024, 5, 4, 12, 0, 0, 0, loc)})
	data, err := codec.EncodeJSON(s)
	require.NoError(t, err)
	require.Contains(t, string(data), `"2024-05-04T03:00:00Z"`)
}

func TestJSON_EncodeRejectsInvalid(t *testing.T) {
	_, err := codec.EncodeJSON(goresult.Failure{Status: "x"})
	var verr *goresult.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestJSON_DecodeErrors(t *testing.T) {
	// malformed document
	_, err := codec.DecodeJSON([]byte(`{`))
	iss, ok := goresult.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, goresult.CodeParseError, iss[0].Code)

	// not an object
	_, err = codec.DecodeJSON([]byte(`[1,2]`))
	_, ok = goresult.AsIssues(err)
	require.True(t, ok)

	// no status tag
	var perr *goresult.PreconditionError
	_, err = codec.DecodeJSON([]byte(`{"result": 1}`))
	require.ErrorAs(t, err, &perr)

	// a date without a time part is not a timestamp
	var verr *goresult.ValidationError
	_, err = codec.DecodeJSON([]byte(`{"status":"ok","timestamp":"2024-01-01"}`))
	require.ErrorAs(t, err, &verr)
}

func TestJSON_DecodeRevalidates(t *testing.T) {
	var verr *goresult.ValidationError
	_, err := codec.DecodeJSON([]byte(`{"status":"x","title":"t","retryable":"true"}`))
	require.ErrorAs(t, err, &verr)

	_, err = codec.DecodeJSON([]byte(`{"status":"not_found"}`))
	require.ErrorAs(t, err, &verr)
}
