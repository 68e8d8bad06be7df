package tests

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"

	jsoniter "github.com/json-iterator/go"

	"num_market/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const EndpointNumbers = "/api/numbers"

// APIClient клиент прокси для тестов. Тела ответов возвращаются как есть:
// прокси обязан отдавать ответ сервиса номеров без изменений.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(
	baseURL string,
	httpClient *http.Client,
) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return APIClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// PostNumbers отправляет запрос страницы номеров.
func (a APIClient) PostNumbers(
	ctx context.Context,
	request rest.NumbersRequest,
) (*http.Response, []byte, error) {
	b, err := json.Marshal(request)
	if err != nil {
		return nil, nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return a.httpRequest(ctx, http.MethodPost, EndpointNumbers, bytes.NewReader(b))
}

// PostJSON отправляет тело без проверки, в том числе невалидный JSON.
func (a APIClient) PostJSON(
	ctx context.Context,
	endpoint string,
	requestJSON string,
) (*http.Response, []byte, error) {
	return a.httpRequest(ctx, http.MethodPost, endpoint, bytes.NewReader([]byte(requestJSON)))
}

func (a APIClient) Get(
	ctx context.Context,
	endpoint string,
) (*http.Response, []byte, error) {
	return a.httpRequest(ctx, http.MethodGet, endpoint, http.NoBody)
}

// DecodeError разбирает тело ответа с ошибкой.
func DecodeError(body []byte) (rest.Error, error) {
	var e rest.Error

	if err := json.Unmarshal(body, &e); err != nil {
		return rest.Error{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return e, nil
}

func (a APIClient) httpRequest(
	ctx context.Context,
	httpMethod string,
	endpoint string,
	payload io.Reader,
) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, httpMethod, a.baseURL+endpoint, payload)
	if err != nil {
		return nil, nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if httpMethod == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Printf("Request:  %s %s", req.Method, req.URL)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if dump, err := httputil.DumpResponse(resp, false); err == nil {
		log.Println("Response:", string(dump))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	return resp, body, nil
}
