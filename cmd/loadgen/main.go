package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"demo/bookorders/internal/model"
)

// Fires fake create-order requests at the service. Handy for exercising the
// full validation/persistence/reconciliation path against live collaborators.
func main() {
	gofakeit.Seed(time.Now().UnixNano())

	target := env("TARGET_URL", "http://localhost:8080")
	n := mustInt("10", os.Getenv("GEN_COUNT"))
	gap := mustInt("0", os.Getenv("GEN_INTERVAL_MS"))

	client := &http.Client{Timeout: 5 * time.Second}
	ok := 0
	for i := 0; i < n; i++ {
		req := fakeCreateOrder()
		if err := post(client, target+"/orders", req); err != nil {
			log.Printf("produce: %v", err)
		} else {
			ok++
		}
		if gap > 0 {
			time.Sleep(time.Duration(gap) * time.Millisecond)
		}
	}
	log.Printf("done: sent=%d ok=%d", n, ok)
}

func fakeCreateOrder() model.CreateOrderRequest {
	userID := int64(gofakeit.Number(1, 50))
	productID := int64(gofakeit.Number(1, 100))
	qty := gofakeit.Number(1, 5)
	status := model.StatusPending
	return model.CreateOrderRequest{
		UserID:    &userID,
		ProductID: &productID,
		Quantity:  &qty,
		Status:    &status,
	}
}

func post(client *http.Client, url string, req model.CreateOrderRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	b, _ := io.ReadAll(resp.Body)
	log.Printf("status=%d body=%s", resp.StatusCode, bytes.TrimSpace(b))
	if resp.StatusCode >= 500 {
		return fmt.Errorf("server error: %d", resp.StatusCode)
	}
	return nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustInt(def, s string) int {
	if s == "" {
		s = def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
