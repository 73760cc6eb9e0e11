package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bec-courses/course-api/internal/db"
	"github.com/bec-courses/course-api/internal/models"
)

type OrderHandler struct {
	store     OrderStore
	courses   CourseStore
	publisher OrderEventPublisher
}

// NewOrderHandler wires the checkout flow. publisher may be nil when the
// process runs without a broker.
func NewOrderHandler(store OrderStore, courses CourseStore, publisher OrderEventPublisher) *OrderHandler {
	return &OrderHandler{
		store:     store,
		courses:   courses,
		publisher: publisher,
	}
}

// ListOrders returns all orders as populated views
func (h *OrderHandler) ListOrders(c *gin.Context) {
	ctx := c.Request.Context()

	orders, err := h.store.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]models.PopulatedOrder, 0, len(orders))
	for i := range orders {
		view, err := h.populateOrder(ctx, &orders[i])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		views = append(views, *view)
	}

	c.JSON(http.StatusOK, views)
}

// GetOrder returns a single order as a populated view
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return
	}

	order, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	view, err := h.populateOrder(c.Request.Context(), order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// CreateOrder is the checkout flow: reserve seats for every line item in
// cart order, then persist the order and return its populated view.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reject malformed course ids before any seats are touched.
	for _, item := range req.Items {
		if _, err := uuid.Parse(item.CourseID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid course ID %s", item.CourseID)})
			return
		}
	}

	ctx := c.Request.Context()

	// Items are reserved one at a time, in cart order. When an item
	// fails, checkout stops and earlier reservations stay applied; the
	// client retries the whole checkout. (Matches the original shop
	// behavior; see DESIGN.md.)
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		course, err := h.courses.ReserveSeats(ctx, item.CourseID, item.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, db.ErrCourseNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("course %s not found", item.CourseID)})
			case errors.Is(err, db.ErrInsufficientSeats):
				title := item.CourseID
				if course != nil {
					title = course.Title
				}
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("not enough spaces for %s", title)})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		items = append(items, models.OrderItem{
			CourseID: course.ID,
			Title:    course.Title,
			Price:    course.Price,
			Quantity: item.Quantity,
		})
	}

	order := models.Order{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Items:         items,
		TotalPrice:    req.TotalPrice,
		Status:        models.OrderStatusCompleted,
		Notes:         req.Notes,
	}

	if err := h.store.Create(ctx, &order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Publish order.created event
	if h.publisher != nil {
		if err := h.publisher.PublishOrderCreated(&order); err != nil {
			log.Printf("⚠️ Failed to publish event: %v", err)
			// Don't fail the request, order is already created
		}
	}

	view, err := h.populateOrder(ctx, &order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, view)
}

// UpdateOrder updates order status and/or notes
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return
	}

	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != nil && !models.ValidOrderStatuses[*req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	order, err := h.store.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, db.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	view, err := h.populateOrder(c.Request.Context(), order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}
