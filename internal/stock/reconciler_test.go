package stock_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"demo/bookorders/internal/stock"

	"github.com/stretchr/testify/require"
)

func newReconciler(url string) *stock.HTTPReconciler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return stock.New(log, url, 2*time.Second)
}

func TestApplyStockDecrement_WritesAbsoluteValue(t *testing.T) {
	var gotPath string
	var gotBody map[string]int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"message":"Book updated successfully"}`))
	}))
	defer srv.Close()

	r := newReconciler(srv.URL)
	err := r.ApplyStockDecrement(context.Background(), 5, 10, 2)
	require.NoError(t, err)
	require.Equal(t, "/books/updatestock/5", gotPath)
	require.Equal(t, map[string]int{"stock": 8}, gotBody)
}

func TestApplyStockDecrement_ErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Book not found"}`))
	}))
	defer srv.Close()

	r := newReconciler(srv.URL)
	err := r.ApplyStockDecrement(context.Background(), 5, 10, 2)
	require.ErrorIs(t, err, stock.ErrUpdateFailed)
}

func TestApplyStockDecrement_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := newReconciler(srv.URL)
	err := r.ApplyStockDecrement(context.Background(), 5, 10, 2)
	require.ErrorIs(t, err, stock.ErrUpdateFailed)
}

func TestApplyStockDecrement_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	r := newReconciler(srv.URL)
	err := r.ApplyStockDecrement(context.Background(), 5, 10, 2)
	require.ErrorIs(t, err, stock.ErrUpdateFailed)
}
