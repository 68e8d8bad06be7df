package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"num_market/pkg/httpx"
)

func TestTokenRoundTripper(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		token httpx.StaticToken
	}{
		{
			name:  "Empty token",
			token: "",
		},
		{
			name:  "Configured token",
			token: "secret",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var (
				gotToken  string
				hasHeader bool
			)

			httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, hasHeader = r.Header[http.CanonicalHeaderKey(httpx.HeaderNameToken)]
				gotToken = r.Header.Get(httpx.HeaderNameToken)
				w.WriteHeader(http.StatusOK)
			}))
			defer httpServer.Close()

			client := &http.Client{
				Transport: httpx.NewTokenRoundTripper(http.DefaultTransport, tc.token),
			}

			req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, httpServer.URL, http.NoBody)
			rq.NoError(err)

			resp, err := client.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.True(hasHeader)
			rq.Equal(string(tc.token), gotToken)
			rq.Empty(req.Header.Get(httpx.HeaderNameToken))
		})
	}
}
