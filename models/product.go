package models

// Product is one normalized catalog record. Records come out of the remote
// sheet already validated: Name is never empty and Price is a finite,
// non-negative amount.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}
