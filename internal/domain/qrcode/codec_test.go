//go:build unit

package qrcode_test

import (
	"errors"
	"testing"

	"salon-loyalty/internal/domain/qrcode"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	ids := []string{uuid.NewString(), "owner-1", "a b", "x?y"}
	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			got, err := qrcode.Decode(qrcode.Encode("https://app.example", id))
			require.NoError(t, err)
			assert.Equal(t, id, got)
		})
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "https://app.example/scan/abc", qrcode.Encode("https://app.example/", "abc"))
}

func TestDecode(t *testing.T) {
	cases := []struct {
		name     string
		payload  string
		want     string
		wantKind qrcode.DecodeErrorKind
	}{
		{name: "scan url", payload: "https://app.example/scan/abc", want: "abc"},
		{name: "any last segment", payload: "https://other.example/x/y/z?ref=1", want: "z"},
		{name: "missing segment", payload: "https://app.example/scan/", wantKind: qrcode.KindMissingSegment},
		{name: "no path", payload: "https://app.example", wantKind: qrcode.KindMissingSegment},
		{name: "relative", payload: "scan/abc", wantKind: qrcode.KindMalformed},
		{name: "plain text", payload: "hello", wantKind: qrcode.KindMalformed},
		{name: "bad escape", payload: "https://app.example/%zz", wantKind: qrcode.KindMalformed},
		{name: "empty", payload: "", wantKind: qrcode.KindMalformed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := qrcode.Decode(c.payload)
			if c.wantKind == "" {
				require.NoError(t, err)
				assert.Equal(t, c.want, got)
				return
			}
			var decErr *qrcode.DecodeError
			require.True(t, errors.As(err, &decErr))
			assert.Equal(t, c.wantKind, decErr.Kind)
			assert.ErrorIs(t, err, qrcode.ErrInvalidPayload)
		})
	}
}

func TestNewCodec(t *testing.T) {
	c, err := qrcode.NewCodec("https://app.example")
	require.NoError(t, err)
	assert.Equal(t, "https://app.example/scan/abc", c.Encode("abc"))

	_, err = qrcode.NewCodec("app.example")
	assert.Error(t, err)

	for _, origin := range []string{
		"https://app.example/?q=1",
		"https://app.example/#top",
		"https://app.example/?",
	} {
		_, err := qrcode.NewCodec(origin)
		assert.Error(t, err, origin)
	}

	c, err = qrcode.NewCodec("https://app.example/loyalty/")
	require.NoError(t, err)
	id, err := c.Decode(c.Encode("owner"))
	require.NoError(t, err)
	assert.Equal(t, "owner", id)
}
