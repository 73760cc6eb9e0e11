package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/bec-courses/course-api/internal/config"
	"github.com/bec-courses/course-api/internal/db"
	"github.com/bec-courses/course-api/internal/models"
)

var seedCourses = []models.CreateCourseRequest{
	{Title: "Python for Beginners", Instructor: "A. Smith", Price: 24.99, Seats: 30, Category: "programming", ImageURL: "https://source.unsplash.com/featured/300x200?python,programming&sig=1", Description: "Learn Python basics."},
	{Title: "Web Development Bootcamp", Instructor: "B. Lee", Price: 39.99, Seats: 30, Category: "programming", ImageURL: "https://source.unsplash.com/featured/300x200?web,development&sig=2", Description: "Full-stack web dev."},
	{Title: "Data Science with Python", Instructor: "C. Zhao", Price: 49.99, Seats: 30, Category: "data", ImageURL: "https://source.unsplash.com/featured/300x200?data,science&sig=3", Description: "Data analysis and ML."},
	{Title: "UI/UX Design Fundamentals", Instructor: "D. Kumar", Price: 19.99, Seats: 30, Category: "design", ImageURL: "https://source.unsplash.com/featured/300x200?ui,ux,design&sig=4", Description: "Design interfaces and experiences."},
	{Title: "Intro to Machine Learning", Instructor: "E. Gomez", Price: 59.99, Seats: 30, Category: "data", ImageURL: "https://source.unsplash.com/featured/300x200?machine,learning&sig=5", Description: "ML fundamentals."},
	{Title: "Business Analytics", Instructor: "F. Rossi", Price: 29.99, Seats: 30, Category: "business", ImageURL: "https://source.unsplash.com/featured/300x200?business,analytics&sig=6", Description: "Analytics for business."},
	{Title: "Advanced JavaScript", Instructor: "G. Patel", Price: 34.99, Seats: 30, Category: "programming", ImageURL: "https://source.unsplash.com/featured/300x200?javascript,code&sig=7", Description: "Deep dive into JS."},
	{Title: "Databases with MongoDB", Instructor: "H. Wang", Price: 44.99, Seats: 30, Category: "data", ImageURL: "https://source.unsplash.com/featured/300x200?database,mongodb&sig=8", Description: "MongoDB essentials."},
	{Title: "Responsive Web Design", Instructor: "I. Murphy", Price: 22.99, Seats: 30, Category: "design", ImageURL: "https://source.unsplash.com/featured/300x200?responsive,design&sig=9", Description: "Layouts that adapt."},
	{Title: "DevOps Essentials", Instructor: "J. Nasser", Price: 49.99, Seats: 30, Category: "business", ImageURL: "https://source.unsplash.com/featured/300x200?devops,infrastructure&sig=10", Description: "CI/CD and infra."},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	database, err := db.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	ctx := context.Background()
	repo := db.NewCourseRepository(database)

	deleted, err := repo.DeleteAll(ctx)
	if err != nil {
		log.Fatalf("Failed to clear courses: %v", err)
	}
	log.Printf("Cleared %d existing courses", deleted)

	created, err := repo.CreateMany(ctx, seedCourses)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("✅ Inserted %d courses", len(created))
	log.Printf("Sample id: %s", created[0].ID)
}
