package misc

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/mo"
)

var ErrMalformedToken = errors.New("malformed token")

// GetURLParams parses a query string, a leading '?' allowed. Repeated keys keep every value in order.
func GetURLParams(query string) (map[string][]string, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse query: %w", err)
	}
	return values, nil
}

// ToURLParams encodes params with keys in sorted order.
func ToURLParams(params map[string][]string) string {
	return url.Values(params).Encode()
}

// GetParam returns the first value of param in the query of rawURL.
func GetParam(rawURL, param string) (mo.Option[string], error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return mo.None[string](), fmt.Errorf("failed to parse url: %w", err)
	}
	q := u.Query()
	if !q.Has(param) {
		return mo.None[string](), nil
	}
	return mo.Some(q.Get(param)), nil
}

type jwtHeader struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// EncodeJWT builds an unsigned token "header.payload" with alg "none".
func EncodeJWT(claims map[string]any) (string, error) {
	header, err := json.Marshal(jwtHeader{Alg: "none", Typ: "JWT"})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(header) + "." + base64.RawURLEncoding.EncodeToString(payload), nil
}

// DecodeJWT returns the claims of a token without verifying its signature.
func DecodeJWT(token string) (map[string]any, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: expected at least 2 parts, got %d", ErrMalformedToken, len(parts))
	}
	payload, err := decodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	return claims, nil
}

// decodeSegment accepts base64url with or without padding, and plain base64.
func decodeSegment(s string) ([]byte, error) {
	if b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "=")); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}

// Encode escapes s as a form component. Spaces become '+' and only
// letters, digits, '-', '_' and '.' are left as they are.
func Encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "~", "%7E")
}

// Decode reverses Encode.
func Decode(s string) (string, error) {
	out, err := url.QueryUnescape(s)
	if err != nil {
		return "", fmt.Errorf("failed to decode: %w", err)
	}
	return out, nil
}
