package models

// OrderCreatedEvent is published after a checkout succeeds.
type OrderCreatedEvent struct {
	OrderID       string           `json:"order_id"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email,omitempty"`
	TotalPrice    float64          `json:"total_price"`
	Items         []OrderItemEvent `json:"items"`
}

type OrderItemEvent struct {
	CourseID string `json:"course_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}
