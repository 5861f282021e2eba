package models

import "time"

type Course struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Instructor  string    `bson:"instructor" json:"instructor"`
	Duration    string    `bson:"duration" json:"duration"`
	Rating      float64   `bson:"rating" json:"rating"`
	Image       string    `bson:"image" json:"image"`
	Topics      []string  `bson:"topics" json:"topics"`
	Price       float64   `bson:"price" json:"price"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// Section groups videos inside a course. The id is a generated uuid token
// and order is fixed at creation, never reassigned.
type Section struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	CourseID  string    `bson:"course_id" json:"courseId"`
	Title     string    `bson:"title" json:"title"`
	Order     int       `bson:"order" json:"order"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

type Deadline struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	CourseID    string    `bson:"course_id" json:"courseId"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	DueDate     time.Time `bson:"due_date" json:"dueDate"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// CourseDetail is the aggregate answered by GET /course/:id: the course plus
// its sections sorted by order and the full video listing.
type CourseDetail struct {
	Course   Course    `json:"course"`
	Sections []Section `json:"sections"`
	Videos   []Video   `json:"videos"`
}
