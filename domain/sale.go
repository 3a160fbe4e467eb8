package domain

// Sale is a row of the hosted "sale" table.
type Sale struct {
	SaleID     int     `json:"sale_id"`
	CustomerID int     `json:"customer_id"`
	ProductID  int     `json:"product_id"`
	SaleDate   Date    `json:"sale_date"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}
