package stats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"legalhub-service/internal/app/contracts"
	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/dto/responses"
	"legalhub-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	homepageStatsCacheKey = "homepage_stats"
	homepageStatsCacheTTL = 5 * time.Minute

	// Fallbacks shown while no course carries a rating or no appointment
	// has been recorded yet.
	defaultRating      = 4.9
	defaultSuccessRate = 95
)

type statsUsecase struct {
	StatsRepository StatsRepository
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

var (
	statsUsecaseInstance StatsUsecase
	onceStatsUsecase     sync.Once
)

func NewStatsUsecase(statsRepository StatsRepository, redisRepository contracts.RedisRepository, logger *zap.Logger) StatsUsecase {
	onceStatsUsecase.Do(func() {
		instance := &statsUsecase{
			StatsRepository: statsRepository,
			RedisRepository: redisRepository,
			Log:             logger,
		}
		statsUsecaseInstance = instance
	})
	return statsUsecaseInstance
}

func (uc *statsUsecase) GetHomepageStats(ctx context.Context) (*responses.HomepageStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if cached, err := uc.RedisRepository.Get(ctx, homepageStatsCacheKey); err == nil && cached != "" {
		var stats responses.HomepageStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	jobCount, err := uc.StatsRepository.CountActiveJobs(ctx)
	if err != nil {
		return nil, err
	}
	courseCount, err := uc.StatsRepository.CountActiveCourses(ctx)
	if err != nil {
		return nil, err
	}
	studentCount, err := uc.StatsRepository.SumCourseStudents(ctx)
	if err != nil {
		return nil, err
	}
	appointmentCount, err := uc.StatsRepository.CountAppointments(ctx)
	if err != nil {
		return nil, err
	}
	completedCount, err := uc.StatsRepository.CountCompletedAppointments(ctx)
	if err != nil {
		return nil, err
	}
	rating, err := uc.StatsRepository.AverageCourseRating(ctx)
	if err != nil {
		return nil, err
	}

	if rating == 0 {
		rating = defaultRating
	}
	successRate := float64(defaultSuccessRate)
	if appointmentCount > 0 {
		successRate = float64(completedCount) / float64(appointmentCount) * 100
	}

	stats := &responses.HomepageStats{
		Jobs:         responses.StatEntry{Total: jobCount, Display: utils.FormatCompactNumber(jobCount)},
		Courses:      responses.StatEntry{Total: courseCount, Display: utils.FormatCompactNumber(courseCount)},
		Students:     responses.StatEntry{Total: studentCount, Display: utils.FormatCompactNumber(studentCount)},
		Appointments: responses.StatEntry{Total: appointmentCount, Display: utils.FormatCompactNumber(appointmentCount)},
		Rating:       responses.StatEntry{Value: rating, Display: fmt.Sprintf("%.1f", rating)},
		SuccessRate:  responses.StatEntry{Value: successRate, Display: fmt.Sprintf("%.0f%%", successRate)},
	}

	if err := uc.RedisRepository.Set(ctx, homepageStatsCacheKey, stats, homepageStatsCacheTTL); err != nil {
		uc.Log.Warn("statsUsecase.GetHomepageStats error caching stats",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return stats, nil
}
