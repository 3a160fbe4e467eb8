package domain

// Product is a row of the hosted "product" table.
type Product struct {
	ProductID   int     `json:"product_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description *string `json:"description,omitempty"`
	StockCount  int     `json:"stock_count"`
}
