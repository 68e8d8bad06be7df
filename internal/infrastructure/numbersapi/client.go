package numbersapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"num_market/internal/domain"
	"num_market/internal/domain/entity"
	"num_market/pkg/errcodes"
	"num_market/pkg/httpx/req"
	"num_market/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const maxErrorBodyLen = 512

// Client загружает страницы номеров через локальный прокси.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		url:        url,
		httpClient: httpClient,
	}
}

// Fetch отправляет запрос и возвращает строки из поля data ответа.
func (c *Client) Fetch(ctx context.Context, query entity.Query) ([]entity.RawListing, error) {
	request := newRESTRequest(query)

	if err := req.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("req.Validate: %w", err)
	}

	b, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen)) //nolint:errcheck

		return nil, domain.NewError(
			errcodes.UpstreamUnavailable,
			fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, body),
		)
	}

	var response rest.NumbersResponse

	if err = json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, domain.WrapError(err, errcodes.MalformedListing, "json.Decode")
	}

	if response.Data == nil {
		return nil, domain.NewError(errcodes.MalformedListing, "response has no data array")
	}

	return newDomainListings(*response.Data), nil
}
