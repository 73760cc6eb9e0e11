package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bec-courses/course-api/internal/db"
	"github.com/bec-courses/course-api/internal/handlers"
	"github.com/bec-courses/course-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeCourseStore implements handlers.CourseStore in memory with the
// same reservation contract as the SQL repository: the seat check and
// the decrement happen under one lock.
type fakeCourseStore struct {
	mu      sync.Mutex
	courses map[string]models.Course
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[string]models.Course)}
}

func (s *fakeCourseStore) GetAll(ctx context.Context) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeCourseStore) GetByID(ctx context.Context, id string) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *fakeCourseStore) Create(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	c := models.Course{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Instructor:  req.Instructor,
		Price:       req.Price,
		Seats:       req.Seats,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.courses[c.ID] = c
	return &c, nil
}

func (s *fakeCourseStore) Update(ctx context.Context, id string, req models.UpdateCourseRequest) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[id]
	if !ok {
		return nil, db.ErrCourseNotFound
	}
	if req.Title != nil {
		c.Title = *req.Title
	}
	if req.Instructor != nil {
		c.Instructor = *req.Instructor
	}
	if req.Price != nil {
		c.Price = *req.Price
	}
	if req.Seats != nil {
		c.Seats = *req.Seats
	}
	if req.Category != nil {
		c.Category = *req.Category
	}
	if req.ImageURL != nil {
		c.ImageURL = *req.ImageURL
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	c.UpdatedAt = time.Now().UTC()
	s.courses[id] = c
	return &c, nil
}

func (s *fakeCourseStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[id]; !ok {
		return db.ErrCourseNotFound
	}
	delete(s.courses, id)
	return nil
}

func (s *fakeCourseStore) ReserveSeats(ctx context.Context, id string, qty int) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[id]
	if !ok {
		return nil, db.ErrCourseNotFound
	}
	if c.Seats < qty {
		return &c, db.ErrInsufficientSeats
	}
	c.Seats -= qty
	c.UpdatedAt = time.Now().UTC()
	s.courses[id] = c
	return &c, nil
}

func (s *fakeCourseStore) CreateMany(ctx context.Context, reqs []models.CreateCourseRequest) ([]models.Course, error) {
	created := make([]models.Course, 0, len(reqs))
	for _, req := range reqs {
		c, err := s.Create(ctx, req)
		if err != nil {
			return nil, err
		}
		created = append(created, *c)
	}
	return created, nil
}

func (s *fakeCourseStore) DeleteAll(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := int64(len(s.courses))
	s.courses = make(map[string]models.Course)
	return deleted, nil
}

func (s *fakeCourseStore) seats(t *testing.T, id string) int {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[id]
	require.True(t, ok, "course %s missing", id)
	return c.Seats
}

type fakeOrderStore struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[string]models.Order)}
}

func (s *fakeOrderStore) GetAll(ctx context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (s *fakeOrderStore) GetByID(ctx context.Context, id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (s *fakeOrderStore) Create(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	order.ID = uuid.NewString()
	order.CreatedAt = now
	order.UpdatedAt = now
	s.orders[order.ID] = *order
	return nil
}

func (s *fakeOrderStore) Update(ctx context.Context, id string, req models.UpdateOrderRequest) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, db.ErrOrderNotFound
	}
	if req.Status != nil {
		o.Status = *req.Status
	}
	if req.Notes != nil {
		o.Notes = *req.Notes
	}
	o.UpdatedAt = time.Now().UTC()
	s.orders[id] = o
	return &o, nil
}

func (s *fakeOrderStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []models.OrderCreatedEvent
}

func (p *fakePublisher) PublishOrderCreated(order *models.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	event := models.OrderCreatedEvent{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		TotalPrice:   order.TotalPrice,
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, models.OrderItemEvent{
			CourseID: item.CourseID,
			Title:    item.Title,
			Quantity: item.Quantity,
		})
	}
	p.events = append(p.events, event)
	return nil
}

type testAPI struct {
	router    *gin.Engine
	courses   *fakeCourseStore
	orders    *fakeOrderStore
	publisher *fakePublisher
}

func newTestAPI() *testAPI {
	courses := newFakeCourseStore()
	orders := newFakeOrderStore()
	pub := &fakePublisher{}

	courseHandler := handlers.NewCourseHandler(courses)
	orderHandler := handlers.NewOrderHandler(orders, courses, pub)
	adminHandler := handlers.NewAdminHandler(courses)

	router := gin.New()
	router.GET("/health", courseHandler.HealthCheck)
	router.GET("/courses", courseHandler.ListCourses)
	router.GET("/courses/:id", courseHandler.GetCourse)
	router.POST("/courses", courseHandler.CreateCourse)
	router.PUT("/courses/:id", courseHandler.UpdateCourse)
	router.DELETE("/courses/:id", courseHandler.DeleteCourse)
	router.GET("/orders", orderHandler.ListOrders)
	router.GET("/orders/:id", orderHandler.GetOrder)
	router.POST("/orders", orderHandler.CreateOrder)
	router.PUT("/orders/:id", orderHandler.UpdateOrder)
	router.POST("/admin/courses/import", adminHandler.ImportCourses)
	router.DELETE("/admin/courses", adminHandler.ClearCourses)

	return &testAPI{router: router, courses: courses, orders: orders, publisher: pub}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) seedCourse(t *testing.T, title string, price float64, seats int) models.Course {
	t.Helper()

	course, err := a.courses.Create(context.Background(), models.CreateCourseRequest{
		Title:      title,
		Instructor: "T. Teacher",
		Price:      price,
		Seats:      seats,
		Category:   "programming",
	})
	require.NoError(t, err)
	return *course
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode[map[string]string](t, w)
	require.Contains(t, body, "error")
	return body["error"]
}
