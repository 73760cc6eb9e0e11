package db

import "errors"

var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInsufficientSeats = errors.New("not enough seats")
)
