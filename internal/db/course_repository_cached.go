package db

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/bec-courses/course-api/internal/cache"
	"github.com/bec-courses/course-api/internal/models"
)

// CachedCourseRepository fronts course reads with Redis. Every mutation,
// seat reservations included, invalidates the affected keys.
type CachedCourseRepository struct {
	repo  *CourseRepository
	cache *cache.RedisCache
}

func NewCachedCourseRepository(repo *CourseRepository, cache *cache.RedisCache) *CachedCourseRepository {
	return &CachedCourseRepository{
		repo:  repo,
		cache: cache,
	}
}

// Cache key helpers
func courseKey(id string) string {
	return fmt.Sprintf("course:%s", id)
}

func allCoursesKey() string {
	return "courses:all"
}

// GetAll returns all courses (with caching)
func (r *CachedCourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := r.cache.Get(ctx, allCoursesKey(), &courses)
	if err == nil {
		return courses, nil
	}
	if err != redis.Nil {
		log.Printf("⚠️ Cache error: %v", err)
	}

	courses, err = r.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, allCoursesKey(), courses); err != nil {
		log.Printf("⚠️ Failed to cache courses: %v", err)
	}

	return courses, nil
}

// GetByID returns a single course (with caching)
func (r *CachedCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	err := r.cache.Get(ctx, courseKey(id), &course)
	if err == nil {
		return &course, nil
	}
	if err != redis.Nil {
		log.Printf("⚠️ Cache error: %v", err)
	}

	c, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	if err := r.cache.Set(ctx, courseKey(id), c); err != nil {
		log.Printf("⚠️ Failed to cache course: %v", err)
	}

	return c, nil
}

// Create inserts a new course and invalidates the list cache
func (r *CachedCourseRepository) Create(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	course, err := r.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, allCoursesKey())
	return course, nil
}

// Update applies a partial update and invalidates both caches
func (r *CachedCourseRepository) Update(ctx context.Context, id string, req models.UpdateCourseRequest) (*models.Course, error) {
	course, err := r.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, courseKey(id), allCoursesKey())
	return course, nil
}

// Delete removes a course and invalidates both caches
func (r *CachedCourseRepository) Delete(ctx context.Context, id string) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}

	r.invalidate(ctx, courseKey(id), allCoursesKey())
	return nil
}

// ReserveSeats delegates to the atomic guarded decrement and drops the
// stale cached seat counts on success.
func (r *CachedCourseRepository) ReserveSeats(ctx context.Context, id string, qty int) (*models.Course, error) {
	course, err := r.repo.ReserveSeats(ctx, id, qty)
	if err != nil {
		return course, err
	}

	r.invalidate(ctx, courseKey(id), allCoursesKey())
	return course, nil
}

// CreateMany bulk-inserts and invalidates the list cache
func (r *CachedCourseRepository) CreateMany(ctx context.Context, reqs []models.CreateCourseRequest) ([]models.Course, error) {
	created, err := r.repo.CreateMany(ctx, reqs)
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, allCoursesKey())
	return created, nil
}

// DeleteAll clears the catalog and flushes the affected keys
func (r *CachedCourseRepository) DeleteAll(ctx context.Context) (int64, error) {
	courses, err := r.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	deleted, err := r.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	keys := []string{allCoursesKey()}
	for _, c := range courses {
		keys = append(keys, courseKey(c.ID))
	}
	r.invalidate(ctx, keys...)

	return deleted, nil
}

func (r *CachedCourseRepository) invalidate(ctx context.Context, keys ...string) {
	if err := r.cache.Delete(ctx, keys...); err != nil {
		log.Printf("⚠️ Failed to invalidate cache: %v", err)
	}
}
