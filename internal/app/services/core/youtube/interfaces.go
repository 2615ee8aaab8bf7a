package youtube

import (
	"context"

	"legalhub-service/internal/pkg/dto/responses"
)

type YoutubeUsecase interface {
	GetLatestVideos(ctx context.Context) (*responses.YoutubeFeed, error)
}

// YoutubeFeedClient fetches the public RSS feed for a channel.
type YoutubeFeedClient interface {
	FetchFeed(ctx context.Context, channelID string) ([]responses.YoutubeVideo, error)
}
