package youtube

import (
	"context"
	"fmt"
	"sync"
	"time"

	"legalhub-service/internal/app/config"
	"legalhub-service/internal/app/contracts"
	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	youtubeFeedCacheKeyFormat      = "youtube_feed:%s"
	youtubeFeedStaleCacheKeyFormat = "youtube_feed_stale:%s"

	// The stale copy outlives the fresh one so an upstream outage degrades
	// to slightly old data instead of an empty page.
	youtubeFeedStaleTTL = 24 * time.Hour

	maxFeedVideos = 6
)

type youtubeUsecase struct {
	FeedClient      YoutubeFeedClient
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	youtubeUsecaseInstance YoutubeUsecase
	onceYoutubeUsecase     sync.Once
)

func NewYoutubeUsecase(
	feedClient YoutubeFeedClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) YoutubeUsecase {
	onceYoutubeUsecase.Do(func() {
		instance := &youtubeUsecase{
			FeedClient:      feedClient,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
		youtubeUsecaseInstance = instance
	})
	return youtubeUsecaseInstance
}

func (uc *youtubeUsecase) GetLatestVideos(ctx context.Context) (*responses.YoutubeFeed, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	channelID := uc.InternalConfig.Youtube.ChannelID
	cacheKey := fmt.Sprintf(youtubeFeedCacheKeyFormat, channelID)
	staleCacheKey := fmt.Sprintf(youtubeFeedStaleCacheKeyFormat, channelID)

	if cached, err := uc.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		var feed responses.YoutubeFeed
		if err := json.Unmarshal([]byte(cached), &feed); err == nil {
			return &feed, nil
		}
	}

	videos, err := uc.FeedClient.FetchFeed(ctx, channelID)
	if err != nil {
		uc.Log.Warn("youtubeUsecase.GetLatestVideos feed fetch failed, trying stale cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if stale, staleErr := uc.RedisRepository.Get(ctx, staleCacheKey); staleErr == nil && stale != "" {
			var feed responses.YoutubeFeed
			if unmarshalErr := json.Unmarshal([]byte(stale), &feed); unmarshalErr == nil {
				return &feed, nil
			}
		}
		return nil, err
	}

	if len(videos) > maxFeedVideos {
		videos = videos[:maxFeedVideos]
	}

	feed := &responses.YoutubeFeed{
		ChannelID: channelID,
		Videos:    videos,
	}

	// An empty feed is not cached; the next request retries upstream.
	if len(videos) == 0 {
		return feed, nil
	}

	cacheTTL := time.Duration(uc.InternalConfig.Youtube.CacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, cacheKey, feed, cacheTTL); err != nil {
		uc.Log.Warn("youtubeUsecase.GetLatestVideos error caching feed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if err := uc.RedisRepository.Set(ctx, staleCacheKey, feed, youtubeFeedStaleTTL); err != nil {
		uc.Log.Warn("youtubeUsecase.GetLatestVideos error caching stale feed copy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return feed, nil
}
