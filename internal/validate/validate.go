package validate

import (
	"fmt"
	"strconv"
	"strings"

	"demo/bookorders/internal/model"
)

type multiErr []error

func (m multiErr) Error() string {
	var b strings.Builder
	for i, e := range m {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

func (m multiErr) OrNil() error {
	if len(m) == 0 {
		return nil
	}
	return m
}

// CreateOrder checks a decoded create-order request. Missing fields are
// reported first; value checks run only once every field is present.
func CreateOrder(req model.CreateOrderRequest) error {
	var errs multiErr

	for _, f := range []struct {
		name string
		set  bool
	}{
		{"user_id", req.UserID != nil},
		{"product_id", req.ProductID != nil},
		{"quantity", req.Quantity != nil},
		{"status", req.Status != nil},
	} {
		if !f.set {
			errs = append(errs, fmt.Errorf("Missing required field: %s", f.name))
		}
	}
	if len(errs) > 0 {
		return errs
	}

	if *req.UserID <= 0 {
		errs = append(errs, fmt.Errorf("user_id must be a positive integer"))
	}
	if *req.ProductID <= 0 {
		errs = append(errs, fmt.Errorf("product_id must be a positive integer"))
	}
	if *req.Quantity <= 0 {
		errs = append(errs, fmt.Errorf("quantity must be a positive integer"))
	}
	if strings.TrimSpace(*req.Status) == "" {
		errs = append(errs, fmt.Errorf("status must not be empty"))
	}

	return errs.OrNil()
}

// ID parses a path parameter as a positive integer identifier.
func ID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, nil
}
