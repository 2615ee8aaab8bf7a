package models

import (
	"legalhub-service/internal/pkg/constvars"
	"time"
)

type CourseEnrollment struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	UserID      string     `json:"userId" bson:"userId"`
	CourseID    string     `json:"courseId" bson:"courseId"`
	Progress    int        `json:"progress" bson:"progress"`
	Status      string     `json:"status" bson:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`

	TimeModel `bson:",inline"`
}

// ApplyProgress records progress and derives the enrollment status from it.
func (e *CourseEnrollment) ApplyProgress(progress int, now time.Time) {
	e.Progress = progress
	if progress == 100 && e.Status != constvars.EnrollmentStatusCompleted {
		e.Status = constvars.EnrollmentStatusCompleted
		e.CompletedAt = &now
		return
	}
	if progress > 0 && progress < 100 && e.Status == constvars.EnrollmentStatusEnrolled {
		e.Status = constvars.EnrollmentStatusInProgress
	}
}
