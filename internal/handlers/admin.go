package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bec-courses/course-api/internal/models"
)

// AdminHandler exposes the bulk catalog operations used for loading and
// resetting test data.
type AdminHandler struct {
	store CourseStore
}

func NewAdminHandler(store CourseStore) *AdminHandler {
	return &AdminHandler{store: store}
}

// ImportCourses bulk-inserts an array of courses
func (h *AdminHandler) ImportCourses(c *gin.Context) {
	var reqs []models.CreateCourseRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected an array of courses"})
		return
	}
	if len(reqs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected an array of courses"})
		return
	}

	// Binding validation does not run on top-level arrays; check the
	// required fields by hand.
	for i, req := range reqs {
		if req.Title == "" || req.Instructor == "" || req.Price < 0 || req.Seats < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid course at index %d", i)})
			return
		}
	}

	created, err := h.store.CreateMany(c.Request.Context(), reqs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ids := make([]string, 0, len(created))
	for _, course := range created {
		ids = append(ids, course.ID)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"insertedCount": len(created),
		"ids":           ids,
	})
}

// ClearCourses deletes the whole catalog
func (h *AdminHandler) ClearCourses(c *gin.Context) {
	deleted, err := h.store.DeleteAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"deletedCount": deleted,
	})
}
