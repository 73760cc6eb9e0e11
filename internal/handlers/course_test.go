package handlers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bec-courses/course-api/internal/models"
)

func TestCreateCourse(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodPost, "/courses", map[string]any{
		"title":      "Go for Beginners",
		"instructor": "R. Pike",
		"price":      29.99,
		"seats":      25,
		"category":   "programming",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decode[models.Course](t, w)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Go for Beginners", created.Title)
	require.Equal(t, 25, created.Seats)

	w = api.do(t, http.MethodGet, "/courses/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, created.ID, decode[models.Course](t, w).ID)
}

func TestCreateCourse_MissingRequiredFields(t *testing.T) {
	api := newTestAPI()

	// No instructor, no price.
	w := api.do(t, http.MethodPost, "/courses", map[string]any{"title": "Half a course"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotEmpty(t, errorBody(t, w))
}

func TestListCourses_EmptyCatalog(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodGet, "/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, decode[[]models.Course](t, w))
	require.JSONEq(t, "[]", w.Body.String())
}

func TestGetCourse_MalformedID(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodGet, "/courses/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "invalid course ID", errorBody(t, w))
}

func TestGetCourse_NotFound(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodGet, "/courses/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "course not found", errorBody(t, w))
}

func TestUpdateCourse_PartialUpdate(t *testing.T) {
	api := newTestAPI()
	course := api.seedCourse(t, "Data Science with Python", 49.99, 30)

	w := api.do(t, http.MethodPut, "/courses/"+course.ID, map[string]any{"price": 39.99})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decode[models.Course](t, w)
	require.Equal(t, 39.99, updated.Price)
	// Untouched fields survive a partial update.
	require.Equal(t, "Data Science with Python", updated.Title)
	require.Equal(t, 30, updated.Seats)
}

func TestUpdateCourse_NotFound(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodPut, "/courses/"+uuid.NewString(), map[string]any{"price": 9.99})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCourse(t *testing.T) {
	api := newTestAPI()
	course := api.seedCourse(t, "DevOps Essentials", 49.99, 30)

	w := api.do(t, http.MethodDelete, "/courses/"+course.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodGet, "/courses/"+course.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodDelete, "/courses/"+course.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestImportAndClearCourses(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodPost, "/admin/courses/import", []map[string]any{
		{"title": "Business Analytics", "instructor": "F. Rossi", "price": 29.99, "seats": 30},
		{"title": "Advanced JavaScript", "instructor": "G. Patel", "price": 34.99, "seats": 30},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	result := decode[map[string]any](t, w)
	require.Equal(t, float64(2), result["insertedCount"])
	require.Len(t, result["ids"], 2)

	w = api.do(t, http.MethodGet, "/courses", nil)
	require.Len(t, decode[[]models.Course](t, w), 2)

	w = api.do(t, http.MethodDelete, "/admin/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(2), decode[map[string]any](t, w)["deletedCount"])

	w = api.do(t, http.MethodGet, "/courses", nil)
	require.Empty(t, decode[[]models.Course](t, w))
}

func TestImportCourses_RejectsInvalidPayload(t *testing.T) {
	api := newTestAPI()

	// Not an array.
	w := api.do(t, http.MethodPost, "/admin/courses/import", map[string]any{"title": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Array with a course missing its instructor.
	w = api.do(t, http.MethodPost, "/admin/courses/import", []map[string]any{
		{"title": "No instructor", "price": 10.0},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "healthy", decode[map[string]any](t, w)["status"])
}
