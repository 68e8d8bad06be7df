package inventory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"num_market/internal/config"
	"num_market/pkg/httpx"
	"num_market/pkg/logx"
)

const (
	headerAccept = "application/json, text/plain, */*"

	maxResponseBytes = 16 << 20
)

// Response ответ сервиса номеров без изменений.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client пересылает запросы в сервис номеров.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(cfg config.Inventory, logFieldMaxLen int) *Client {
	transport := httpx.NewTokenRoundTripper(
		httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
		),
		httpx.StaticToken(cfg.Token),
	)

	return NewClientWithHTTP(cfg.URL, &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	})
}

func NewClientWithHTTP(url string, httpClient *http.Client) *Client {
	return &Client{
		url:        url,
		httpClient: httpClient,
	}
}

// Forward отправляет body как есть и возвращает ответ как есть, включая
// ответы с ошибочным статусом.
func (c *Client) Forward(ctx context.Context, body []byte) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", headerAccept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Response{}, fmt.Errorf("io.ReadAll: %w", err)
	}

	return Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}
