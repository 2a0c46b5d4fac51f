package models

// BuyerInfo carries the contact fields the checkout form collects. Every
// field is trimmed by the order builder; absent fields stay "".
type BuyerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// LineItem is one product's contribution to an order.
type LineItem struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
}

// Order is the payload POSTed to the remote orders endpoint. It is built
// fresh at checkout time and never persisted past that single submission.
type Order struct {
	OrderRef  string `json:"order_ref"`
	Timestamp string `json:"timestamp"`
	BuyerInfo
	Items []LineItem `json:"items"`
	Total float64    `json:"total"`
}
