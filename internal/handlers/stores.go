package handlers

import (
	"context"

	"github.com/bec-courses/course-api/internal/models"
)

// CourseStore is what the handlers need from the course repository.
// Both db.CourseRepository and db.CachedCourseRepository satisfy it.
type CourseStore interface {
	GetAll(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error)
	Update(ctx context.Context, id string, req models.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id string) error
	// ReserveSeats atomically decrements the seat count, failing with
	// db.ErrInsufficientSeats (course returned for its title) or
	// db.ErrCourseNotFound.
	ReserveSeats(ctx context.Context, id string, qty int) (*models.Course, error)
	CreateMany(ctx context.Context, reqs []models.CreateCourseRequest) ([]models.Course, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type OrderStore interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, id string, req models.UpdateOrderRequest) (*models.Order, error)
}

type OrderEventPublisher interface {
	PublishOrderCreated(order *models.Order) error
}
