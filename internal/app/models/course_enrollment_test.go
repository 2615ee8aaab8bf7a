package models

import (
	"testing"
	"time"

	"legalhub-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyProgress(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("partial progress moves enrolled to in-progress", func(t *testing.T) {
		enrollment := &CourseEnrollment{Status: constvars.EnrollmentStatusEnrolled}
		enrollment.ApplyProgress(40, now)
		assert.Equal(t, 40, enrollment.Progress)
		assert.Equal(t, constvars.EnrollmentStatusInProgress, enrollment.Status)
		assert.Nil(t, enrollment.CompletedAt)
	})

	t.Run("full progress completes and stamps the time", func(t *testing.T) {
		enrollment := &CourseEnrollment{Status: constvars.EnrollmentStatusInProgress, Progress: 80}
		enrollment.ApplyProgress(100, now)
		assert.Equal(t, constvars.EnrollmentStatusCompleted, enrollment.Status)
		require.NotNil(t, enrollment.CompletedAt)
		assert.Equal(t, now, *enrollment.CompletedAt)
	})

	t.Run("zero progress leaves enrolled untouched", func(t *testing.T) {
		enrollment := &CourseEnrollment{Status: constvars.EnrollmentStatusEnrolled}
		enrollment.ApplyProgress(0, now)
		assert.Equal(t, constvars.EnrollmentStatusEnrolled, enrollment.Status)
	})

	t.Run("re-reporting 100 keeps the original completion time", func(t *testing.T) {
		earlier := now.Add(-24 * time.Hour)
		enrollment := &CourseEnrollment{
			Status:      constvars.EnrollmentStatusCompleted,
			Progress:    100,
			CompletedAt: &earlier,
		}
		enrollment.ApplyProgress(100, now)
		require.NotNil(t, enrollment.CompletedAt)
		assert.Equal(t, earlier, *enrollment.CompletedAt)
	})
}
