package model

// Order is the record owned by the order store. IDs of the user and the
// product are references into the user-directory and catalog services; they
// are not enforced as foreign keys across service boundaries.
type Order struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
}

// StatusPending is the only status this service ever produces. The field is
// stored verbatim from the request, so other values can appear in the table.
const StatusPending = "Pending"

// CreateOrderRequest is the decoded POST /orders body. Pointer fields keep
// "absent" distinguishable from a zero value so missing-field errors can name
// the field, the way the upstream dashboard expects.
type CreateOrderRequest struct {
	UserID    *int64  `json:"user_id"`
	ProductID *int64  `json:"product_id"`
	Quantity  *int    `json:"quantity"`
	Status    *string `json:"status"`
}

// Product is the catalog service's view of a product. Only fields consumed
// here are decoded; a response without stock is treated as not found.
type Product struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Stock  int    `json:"stock"`
}
