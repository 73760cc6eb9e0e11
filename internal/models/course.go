package models

import "time"

type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Instructor  string    `json:"instructor"`
	Price       float64   `json:"price"`
	Seats       int       `json:"seats"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateCourseRequest struct {
	Title       string  `json:"title" binding:"required"`
	Instructor  string  `json:"instructor" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Seats       int     `json:"seats" binding:"gte=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
}

// UpdateCourseRequest carries a partial update; nil fields are left untouched.
type UpdateCourseRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1"`
	Instructor  *string  `json:"instructor" binding:"omitempty,min=1"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Seats       *int     `json:"seats" binding:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	Description *string  `json:"description"`
}
