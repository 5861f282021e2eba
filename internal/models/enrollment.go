package models

import "time"

const EnrollmentStatusActive = "active"

type Enrollment struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	CourseID   string    `bson:"course_id" json:"courseId"`
	UserID     string    `bson:"user_id" json:"userId"`
	Status     string    `bson:"status" json:"status"`
	EnrolledAt time.Time `bson:"enrolled_at" json:"enrolledAt"`
}
