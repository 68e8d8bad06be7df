package httpx

import (
	"fmt"
	"net/http"
)

const HeaderNameToken = "token"

type tokenSource interface {
	Token() string
}

// TokenRoundTripper attaches the inventory access token to every outgoing
// request. The header is sent even when the token is empty.
type TokenRoundTripper struct {
	next        http.RoundTripper
	tokenSource tokenSource
}

func NewTokenRoundTripper(
	next http.RoundTripper,
	tokenSource tokenSource,
) TokenRoundTripper {
	return TokenRoundTripper{
		next:        next,
		tokenSource: tokenSource,
	}
}

func (rt TokenRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrip must not modify the caller's request.
	req = req.Clone(req.Context())
	req.Header.Set(HeaderNameToken, rt.tokenSource.Token())

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}

// StaticToken is a tokenSource that always returns the same value.
type StaticToken string

func (t StaticToken) Token() string {
	return string(t)
}
