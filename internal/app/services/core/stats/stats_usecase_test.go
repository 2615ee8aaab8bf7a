package stats

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStatsRepository struct {
	jobs          int
	courses       int
	students      int
	rating        float64
	appointments  int
	completed     int
	queriesServed int
}

func (f *fakeStatsRepository) CountActiveJobs(ctx context.Context) (int, error) {
	f.queriesServed++
	return f.jobs, nil
}

func (f *fakeStatsRepository) CountActiveCourses(ctx context.Context) (int, error) {
	return f.courses, nil
}

func (f *fakeStatsRepository) SumCourseStudents(ctx context.Context) (int, error) {
	return f.students, nil
}

func (f *fakeStatsRepository) AverageCourseRating(ctx context.Context) (float64, error) {
	return f.rating, nil
}

func (f *fakeStatsRepository) CountAppointments(ctx context.Context) (int, error) {
	return f.appointments, nil
}

func (f *fakeStatsRepository) CountCompletedAppointments(ctx context.Context) (int, error) {
	return f.completed, nil
}

type fakeStatsCache struct {
	values map[string]string
}

func (f *fakeStatsCache) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeStatsCache) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = string(payload)
	return nil
}

func (f *fakeStatsCache) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeStatsCache) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

func TestGetHomepageStats(t *testing.T) {
	ctx := context.Background()

	t.Run("composes counts and computed figures", func(t *testing.T) {
		repo := &fakeStatsRepository{
			jobs:         12300,
			courses:      45,
			students:     51234,
			rating:       4.65,
			appointments: 200,
			completed:    180,
		}
		usecase := &statsUsecase{
			StatsRepository: repo,
			RedisRepository: &fakeStatsCache{values: make(map[string]string)},
			Log:             zap.NewNop(),
		}

		stats, err := usecase.GetHomepageStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, "12.3K+", stats.Jobs.Display)
		assert.Equal(t, "51.2K+", stats.Students.Display)
		assert.Equal(t, "4.7", stats.Rating.Display)
		assert.Equal(t, "90%", stats.SuccessRate.Display)
		assert.Equal(t, 200, stats.Appointments.Total)
	})

	t.Run("falls back to defaults when nothing is recorded", func(t *testing.T) {
		usecase := &statsUsecase{
			StatsRepository: &fakeStatsRepository{},
			RedisRepository: &fakeStatsCache{values: make(map[string]string)},
			Log:             zap.NewNop(),
		}

		stats, err := usecase.GetHomepageStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, "4.9", stats.Rating.Display)
		assert.Equal(t, "95%", stats.SuccessRate.Display)
	})

	t.Run("serves the cached payload without hitting the store", func(t *testing.T) {
		repo := &fakeStatsRepository{jobs: 7}
		usecase := &statsUsecase{
			StatsRepository: repo,
			RedisRepository: &fakeStatsCache{values: make(map[string]string)},
			Log:             zap.NewNop(),
		}

		first, err := usecase.GetHomepageStats(ctx)
		require.NoError(t, err)
		second, err := usecase.GetHomepageStats(ctx)
		require.NoError(t, err)

		assert.Equal(t, first.Jobs.Total, second.Jobs.Total)
		assert.Equal(t, 1, repo.queriesServed)
	})
}
