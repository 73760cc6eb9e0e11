package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/bec-courses/course-api/internal/models"
)

// populateOrder builds the denormalized read view of an order: each line
// item is joined with the current course record. A malformed or
// no-longer-resolvable course reference yields a null course instead of
// failing the whole view. The stored order is never mutated.
func (h *OrderHandler) populateOrder(ctx context.Context, order *models.Order) (*models.PopulatedOrder, error) {
	view := models.PopulatedOrder{
		ID:            order.ID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		CustomerEmail: order.CustomerEmail,
		Items:         make([]models.PopulatedOrderItem, 0, len(order.Items)),
		TotalPrice:    order.TotalPrice,
		Status:        order.Status,
		Notes:         order.Notes,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}

	for _, item := range order.Items {
		populated := models.PopulatedOrderItem{
			CourseID: item.CourseID,
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		}

		if _, err := uuid.Parse(item.CourseID); err == nil {
			course, err := h.courses.GetByID(ctx, item.CourseID)
			if err != nil {
				return nil, err
			}
			populated.Course = course
		}

		view.Items = append(view.Items, populated)
	}

	return &view, nil
}
