package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bec-courses/course-api/internal/models"
)

type CourseRepository struct {
	db *sql.DB
}

func NewCourseRepository(database *PostgresDB) *CourseRepository {
	return &CourseRepository{db: database.Conn}
}

const courseColumns = "id, title, instructor, price, seats, category, image_url, description, created_at, updated_at"

func scanCourse(row interface{ Scan(...any) error }) (*models.Course, error) {
	var c models.Course
	err := row.Scan(&c.ID, &c.Title, &c.Instructor, &c.Price, &c.Seats,
		&c.Category, &c.ImageURL, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll returns all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	query := "SELECT " + courseColumns + " FROM courses ORDER BY created_at, id"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, *c)
	}

	return courses, rows.Err()
}

// GetByID returns a single course, or (nil, nil) when it does not exist.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := "SELECT " + courseColumns + " FROM courses WHERE id = $1"

	c, err := scanCourse(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return c, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	query := `
		INSERT INTO courses (title, instructor, price, seats, category, image_url, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + courseColumns

	c, err := scanCourse(r.db.QueryRowContext(ctx, query,
		req.Title, req.Instructor, req.Price, req.Seats, req.Category, req.ImageURL, req.Description))
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return c, nil
}

// Update applies a partial update; nil fields keep their current value.
func (r *CourseRepository) Update(ctx context.Context, id string, req models.UpdateCourseRequest) (*models.Course, error) {
	query := `
		UPDATE courses SET
			title       = COALESCE($2, title),
			instructor  = COALESCE($3, instructor),
			price       = COALESCE($4, price),
			seats       = COALESCE($5, seats),
			category    = COALESCE($6, category),
			image_url   = COALESCE($7, image_url),
			description = COALESCE($8, description),
			updated_at  = now()
		WHERE id = $1
		RETURNING ` + courseColumns

	c, err := scanCourse(r.db.QueryRowContext(ctx, query, id,
		req.Title, req.Instructor, req.Price, req.Seats, req.Category, req.ImageURL, req.Description))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	return c, nil
}

// Delete removes a course
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM courses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// ReserveSeats decrements the seat count by qty only if enough seats
// remain. Guard and decrement are one statement, so concurrent
// reservations can never act on a stale count. On failure a follow-up
// lookup distinguishes a missing course from a sold-out one.
func (r *CourseRepository) ReserveSeats(ctx context.Context, id string, qty int) (*models.Course, error) {
	query := `
		UPDATE courses
		SET seats = seats - $2, updated_at = now()
		WHERE id = $1 AND seats >= $2
		RETURNING ` + courseColumns

	c, err := scanCourse(r.db.QueryRowContext(ctx, query, id, qty))
	if err == nil {
		return c, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to reserve seats: %w", err)
	}

	// Guard failed: either the course is gone or it is short on seats.
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCourseNotFound
	}
	return existing, ErrInsufficientSeats
}

// CreateMany bulk-inserts courses in one transaction and returns the
// created records. Used by the admin import endpoint and the seed tool.
func (r *CourseRepository) CreateMany(ctx context.Context, reqs []models.CreateCourseRequest) ([]models.Course, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO courses (title, instructor, price, seats, category, image_url, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + courseColumns

	created := make([]models.Course, 0, len(reqs))
	for _, req := range reqs {
		c, err := scanCourse(tx.QueryRowContext(ctx, query,
			req.Title, req.Instructor, req.Price, req.Seats, req.Category, req.ImageURL, req.Description))
		if err != nil {
			return nil, fmt.Errorf("failed to insert course %q: %w", req.Title, err)
		}
		created = append(created, *c)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return created, nil
}

// DeleteAll clears the catalog and returns the number of deleted rows.
func (r *CourseRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM courses")
	if err != nil {
		return 0, fmt.Errorf("failed to clear courses: %w", err)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}
