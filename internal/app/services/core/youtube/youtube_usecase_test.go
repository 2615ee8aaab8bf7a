package youtube

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"legalhub-service/internal/app/config"
	"legalhub-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFeedClient struct {
	videos  []responses.YoutubeVideo
	err     error
	fetches int
}

func (f *fakeFeedClient) FetchFeed(ctx context.Context, channelID string) ([]responses.YoutubeVideo, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.videos, nil
}

type fakeFeedCache struct {
	values map[string]string
}

func (f *fakeFeedCache) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeFeedCache) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = string(payload)
	return nil
}

func (f *fakeFeedCache) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeFeedCache) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

func newYoutubeTestUsecase(client *fakeFeedClient, cache *fakeFeedCache) *youtubeUsecase {
	return &youtubeUsecase{
		FeedClient:      client,
		RedisRepository: cache,
		InternalConfig: &config.InternalConfig{
			Youtube: config.Youtube{ChannelID: "UCtest", CacheTTLInMinutes: 15},
		},
		Log: zap.NewNop(),
	}
}

func buildVideos(count int) []responses.YoutubeVideo {
	videos := make([]responses.YoutubeVideo, 0, count)
	for i := 0; i < count; i++ {
		videos = append(videos, responses.YoutubeVideo{
			VideoID: fmt.Sprintf("video-%d", i),
			Title:   fmt.Sprintf("Video %d", i),
		})
	}
	return videos
}

func TestGetLatestVideos(t *testing.T) {
	ctx := context.Background()

	t.Run("caps the feed at six entries", func(t *testing.T) {
		client := &fakeFeedClient{videos: buildVideos(10)}
		usecase := newYoutubeTestUsecase(client, &fakeFeedCache{values: make(map[string]string)})

		feed, err := usecase.GetLatestVideos(ctx)
		require.NoError(t, err)
		assert.Len(t, feed.Videos, 6)
		assert.Equal(t, "UCtest", feed.ChannelID)
	})

	t.Run("serves the cached feed without refetching", func(t *testing.T) {
		client := &fakeFeedClient{videos: buildVideos(3)}
		usecase := newYoutubeTestUsecase(client, &fakeFeedCache{values: make(map[string]string)})

		_, err := usecase.GetLatestVideos(ctx)
		require.NoError(t, err)
		_, err = usecase.GetLatestVideos(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, client.fetches)
	})

	t.Run("falls back to the stale copy when upstream fails", func(t *testing.T) {
		cache := &fakeFeedCache{values: make(map[string]string)}
		client := &fakeFeedClient{videos: buildVideos(2)}
		usecase := newYoutubeTestUsecase(client, cache)

		_, err := usecase.GetLatestVideos(ctx)
		require.NoError(t, err)

		// Fresh cache expires; upstream starts failing.
		delete(cache.values, "youtube_feed:UCtest")
		client.err = errors.New("upstream down")

		feed, err := usecase.GetLatestVideos(ctx)
		require.NoError(t, err)
		assert.Len(t, feed.Videos, 2)
	})

	t.Run("propagates the error when there is no stale copy either", func(t *testing.T) {
		client := &fakeFeedClient{err: errors.New("upstream down")}
		usecase := newYoutubeTestUsecase(client, &fakeFeedCache{values: make(map[string]string)})

		_, err := usecase.GetLatestVideos(ctx)
		require.Error(t, err)
	})

	t.Run("does not cache an empty feed", func(t *testing.T) {
		cache := &fakeFeedCache{values: make(map[string]string)}
		client := &fakeFeedClient{}
		usecase := newYoutubeTestUsecase(client, cache)

		feed, err := usecase.GetLatestVideos(ctx)
		require.NoError(t, err)
		assert.Empty(t, feed.Videos)
		assert.Empty(t, cache.values)

		_, err = usecase.GetLatestVideos(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, client.fetches)
	})
}
