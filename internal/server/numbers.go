package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"num_market/internal/infrastructure/inventory"
	"num_market/pkg/httpx/reply"
	"num_market/pkg/httpx/req"
)

var errInvalidUpstreamBody = errors.New("upstream returned invalid JSON")

//go:generate moq -rm -out inventory_client_mock.gen.go . inventoryClient:InventoryClientMock
type inventoryClient interface {
	Forward(ctx context.Context, body []byte) (inventory.Response, error)
}

type NumbersServer struct {
	inventory    inventoryClient
	maxBodyBytes int64
	metrics      *Metrics
}

func NewNumbersServer(inventory inventoryClient, maxBodyBytes int64, metrics *Metrics) NumbersServer {
	return NumbersServer{
		inventory:    inventory,
		maxBodyBytes: maxBodyBytes,
		metrics:      metrics,
	}
}

// postNumbers пересылает тело запроса в сервис номеров и возвращает его ответ
// без изменений, вместе со статусом.
func (s NumbersServer) postNumbers(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	start := time.Now()

	body, err := req.ReadRaw(r, s.maxBodyBytes)
	if err != nil {
		return fmt.Errorf("req.ReadRaw: %w", err)
	}

	resp, err := s.inventory.Forward(ctx, body)
	if err != nil {
		s.metrics.observe("error", time.Since(start))

		return fmt.Errorf("inventory.Forward: %w", err)
	}

	s.metrics.observe(strconv.Itoa(resp.StatusCode), time.Since(start))

	if !jsoniter.Valid(resp.Body) {
		return fmt.Errorf("inventory.Forward: %w", errInvalidUpstreamBody)
	}

	reply.Raw(ctx, w, resp.StatusCode, resp.Body)

	return nil
}
