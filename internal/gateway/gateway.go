package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"demo/bookorders/internal/model"
)

// The two error kinds are kept distinguishable here even though callers fold
// both into "not found" at the API boundary: a future caller may want to
// retry on ErrUnreachable without changing observable behavior.
var (
	ErrNotFound    = errors.New("remote entity not found")
	ErrUnreachable = errors.New("remote service unreachable")
)

//go:generate mockgen -destination=gatewaymock/mock_gateway.go -package=gatewaymock demo/bookorders/internal/gateway Gateway

// Gateway performs existence and data lookups against the user directory and
// the catalog service. Both operations are read-only for this service.
type Gateway interface {
	LookupUser(ctx context.Context, userID int64) error
	FetchProduct(ctx context.Context, productID int64) (model.Product, error)
}

type HTTPGateway struct {
	log        *slog.Logger
	client     *http.Client
	userURL    string
	catalogURL string
}

func New(log *slog.Logger, userURL, catalogURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		log:        log,
		client:     &http.Client{Timeout: timeout},
		userURL:    userURL,
		catalogURL: catalogURL,
	}
}

// LookupUser resolves a user id against the user directory. nil means the
// user exists; ErrNotFound and ErrUnreachable report why it could not be
// confirmed.
func (g *HTTPGateway) LookupUser(ctx context.Context, userID int64) error {
	var body struct {
		ID *int64 `json:"id"`
	}
	if err := g.getJSON(ctx, fmt.Sprintf("%s/users/%d", g.userURL, userID), &body); err != nil {
		return err
	}
	if body.ID == nil || *body.ID != userID {
		return ErrNotFound
	}
	return nil
}

// FetchProduct reads a product from the catalog. A response without a stock
// field is indistinguishable from a missing product, matching the upstream
// contract.
func (g *HTTPGateway) FetchProduct(ctx context.Context, productID int64) (model.Product, error) {
	var body struct {
		ID     int64  `json:"id"`
		Title  string `json:"title"`
		Author string `json:"author"`
		Stock  *int   `json:"stock"`
	}
	if err := g.getJSON(ctx, fmt.Sprintf("%s/books/%d", g.catalogURL, productID), &body); err != nil {
		return model.Product{}, err
	}
	if body.Stock == nil {
		g.log.Warn("product response missing stock field", "product_id", productID)
		return model.Product{}, ErrNotFound
	}
	return model.Product{
		ID:     body.ID,
		Title:  body.Title,
		Author: body.Author,
		Stock:  *body.Stock,
	}, nil
}

func (g *HTTPGateway) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Warn("remote lookup failed", "url", url, "err", err)
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ErrNotFound
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		g.log.Warn("remote response malformed", "url", url, "err", err)
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return nil
}
