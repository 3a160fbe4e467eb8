package domain

const (
	ReviewStatusPending  = "Pending"
	ReviewStatusApproved = "Approved"
	ReviewStatusRejected = "Rejected"
)

// Review is a row of the hosted "review" table. customer_id and product_id
// are foreign keys resolved only by the database, not checked here.
type Review struct {
	ReviewID   int     `json:"review_id"`
	CustomerID int     `json:"customer_id"`
	ProductID  int     `json:"product_id"`
	Rating     int     `json:"rating"`
	Comment    *string `json:"comment,omitempty"`
	ReviewDate Date    `json:"review_date"`
	Status     string  `json:"status"`
}
