package responses

import (
	"legalhub-service/internal/app/models"
	"time"
)

// SavedJobItem is a job document joined with its save metadata.
type SavedJobItem struct {
	models.Job `bson:",inline"`
	SavedAt    time.Time `json:"savedAt"`
	SavedJobID string    `json:"savedJobId"`
}

// EnrolledCourseItem is a course document joined with enrollment state.
type EnrolledCourseItem struct {
	models.Course    `bson:",inline"`
	Progress         int        `json:"progress"`
	EnrollmentStatus string     `json:"enrollmentStatus"`
	EnrolledAt       time.Time  `json:"enrolledAt"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	EnrollmentID     string     `json:"enrollmentId"`
}

type UserStats struct {
	CoursesCompleted int `json:"coursesCompleted"`
	ApplicationsSent int `json:"applicationsSent"`
	Consultations    int `json:"consultations"`
	Certificates     int `json:"certificates"`
}
