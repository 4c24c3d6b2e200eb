// Package qrcode encodes and decodes the salon check-in payload carried by a QR code.
//
// A payload is an absolute URL whose last path segment is the salon owner's id:
//
//	https://app.example/scan/5b1f...
package qrcode

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const scanPath = "/scan/"

var ErrInvalidPayload = errors.New("invalid QR payload")

type DecodeErrorKind string

const (
	KindMalformed      DecodeErrorKind = "MALFORMED"
	KindMissingSegment DecodeErrorKind = "MISSING_SEGMENT"
)

type DecodeError struct {
	Kind    DecodeErrorKind
	Payload string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("qr payload %s: %v", strings.ToLower(string(e.Kind)), e.Err)
	}
	return fmt.Sprintf("qr payload %s", strings.ToLower(string(e.Kind)))
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrInvalidPayload }

// Encode builds the payload for ownerID under origin.
func Encode(origin, ownerID string) string {
	return strings.TrimRight(origin, "/") + scanPath + url.PathEscape(ownerID)
}

// Decode returns the owner id carried by payload. It does not check that the id
// refers to anything.
func Decode(payload string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(payload))
	if err != nil {
		return "", &DecodeError{Kind: KindMalformed, Payload: payload, Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return "", &DecodeError{Kind: KindMalformed, Payload: payload}
	}

	path := u.EscapedPath()
	idx := strings.LastIndex(path, "/")
	if idx < 0 || idx == len(path)-1 {
		return "", &DecodeError{Kind: KindMissingSegment, Payload: payload}
	}
	segment, err := url.PathUnescape(path[idx+1:])
	if err != nil || segment == "" {
		return "", &DecodeError{Kind: KindMissingSegment, Payload: payload, Err: err}
	}
	return segment, nil
}

// Codec binds the public origin configured for this deployment.
type Codec struct {
	origin string
}

// NewCodec rejects origins that are not absolute or that carry a query or
// fragment, since the owner segment is appended to the path.
func NewCodec(origin string) (*Codec, error) {
	u, err := url.Parse(origin)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("invalid public origin %q", origin)
	}
	if u.RawQuery != "" || u.Fragment != "" || strings.ContainsAny(origin, "?#") {
		return nil, fmt.Errorf("public origin %q must not have a query or fragment", origin)
	}
	return &Codec{origin: origin}, nil
}

func (c *Codec) Encode(ownerID string) string {
	return Encode(c.origin, ownerID)
}

func (c *Codec) Decode(payload string) (string, error) {
	return Decode(payload)
}
