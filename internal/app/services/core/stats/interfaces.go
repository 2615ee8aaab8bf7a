package stats

import (
	"context"

	"legalhub-service/internal/pkg/dto/responses"
)

type StatsUsecase interface {
	GetHomepageStats(ctx context.Context) (*responses.HomepageStats, error)
}

type StatsRepository interface {
	CountActiveJobs(ctx context.Context) (int, error)
	CountActiveCourses(ctx context.Context) (int, error)
	SumCourseStudents(ctx context.Context) (int, error)
	AverageCourseRating(ctx context.Context) (float64, error)
	CountAppointments(ctx context.Context) (int, error)
	CountCompletedAppointments(ctx context.Context) (int, error)
}
