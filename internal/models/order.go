package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatuses is the full set accepted on order updates.
var ValidOrderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusCompleted: true,
	OrderStatusCancelled: true,
}

type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	CustomerEmail string      `json:"customerEmail,omitempty"`
	Items         []OrderItem `json:"items"`
	TotalPrice    float64     `json:"totalPrice"`
	Status        string      `json:"status"`
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// OrderItem references a course and snapshots its title and price at
// checkout time. The course itself may be edited or deleted afterwards
// without touching persisted orders.
type OrderItem struct {
	CourseID string  `json:"courseId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerName  string                `json:"customerName" binding:"required"`
	CustomerPhone string                `json:"customerPhone" binding:"required"`
	CustomerEmail string                `json:"customerEmail" binding:"omitempty,email"`
	Items         []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalPrice    float64               `json:"totalPrice" binding:"gte=0"`
	Notes         string                `json:"notes"`
}

type CheckoutItemRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// UpdateOrderRequest only touches status and notes; line items are
// immutable once an order exists.
type UpdateOrderRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// PopulatedOrder is the read view returned by the API: every item
// carries the current course record, or null when the referenced
// course no longer exists.
type PopulatedOrder struct {
	ID            string               `json:"id"`
	CustomerName  string               `json:"customerName"`
	CustomerPhone string               `json:"customerPhone"`
	CustomerEmail string               `json:"customerEmail,omitempty"`
	Items         []PopulatedOrderItem `json:"items"`
	TotalPrice    float64              `json:"totalPrice"`
	Status        string               `json:"status"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

type PopulatedOrderItem struct {
	CourseID string  `json:"courseId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Course   *Course `json:"course"`
}
