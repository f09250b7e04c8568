package stock

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ErrUpdateFailed covers both transport failure and an error payload from the
// catalog. A single attempt is made; retry policy, if any, belongs upstream.
var ErrUpdateFailed = errors.New("stock update failed")

//go:generate mockgen -destination=stockmock/mock_reconciler.go -package=stockmock demo/bookorders/internal/stock Reconciler

// Reconciler pushes the post-order stock level to the catalog service.
type Reconciler interface {
	ApplyStockDecrement(ctx context.Context, productID int64, observedStock, quantity int) error
}

type HTTPReconciler struct {
	log        *slog.Logger
	client     *http.Client
	catalogURL string
}

func New(log *slog.Logger, catalogURL string, timeout time.Duration) *HTTPReconciler {
	return &HTTPReconciler{
		log:        log,
		client:     &http.Client{Timeout: timeout},
		catalogURL: catalogURL,
	}
}

// ApplyStockDecrement writes observedStock-quantity as the product's new
// absolute stock value. The read that produced observedStock happened in a
// separate call, so concurrent orders for the same product can oversell; that
// is the upstream contract, not something to repair here.
func (r *HTTPReconciler) ApplyStockDecrement(ctx context.Context, productID int64, observedStock, quantity int) error {
	newStock := observedStock - quantity

	payload, err := json.Marshal(map[string]int{"stock": newStock})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}

	url := fmt.Sprintf("%s/books/updatestock/%d", r.catalogURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Warn("stock update call failed", "product_id", productID, "err", err)
		return fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}

	// the catalog reports failures in-band as {"error": ...}; a body that
	// does not decode carries no error payload and is not failed on
	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(raw, &body)
	if body.Error != "" {
		r.log.Warn("stock update rejected", "product_id", productID, "remote_error", body.Error)
		return fmt.Errorf("%w: %s", ErrUpdateFailed, body.Error)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrUpdateFailed, resp.StatusCode)
	}
	return nil
}
