package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/dto/responses"
	"legalhub-service/internal/pkg/exceptions"

	"golang.org/x/time/rate"
)

const youtubeFeedURLFormat = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"

type feedDocument struct {
	Entries []feedEntry `xml:"entry"`
}

type feedEntry struct {
	VideoID    string `xml:"videoId"`
	Title      string `xml:"title"`
	Published  string `xml:"published"`
	MediaGroup struct {
		Thumbnail struct {
			URL string `xml:"url,attr"`
		} `xml:"thumbnail"`
		Community struct {
			Statistics struct {
				Views int64 `xml:"views,attr"`
			} `xml:"statistics"`
		} `xml:"community"`
	} `xml:"group"`
}

type youtubeFeedClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewYoutubeFeedClient builds an RSS client that rate-limits outbound
// requests so a burst of portal traffic cannot hammer the upstream feed.
func NewYoutubeFeedClient(fetchTimeout time.Duration) YoutubeFeedClient {
	return &youtubeFeedClient{
		httpClient: &http.Client{Timeout: fetchTimeout},
		limiter:    rate.NewLimiter(rate.Every(10*time.Second), 3),
	}
}

func (c *youtubeFeedClient) FetchFeed(ctx context.Context, channelID string) ([]responses.YoutubeVideo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	feedURL := fmt.Sprintf(youtubeFeedURLFormat, channelID)
	request, err := http.NewRequestWithContext(ctx, constvars.MethodGet, feedURL, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, exceptions.ErrSendHTTPRequest(fmt.Errorf("feed request returned status %d", response.StatusCode))
	}

	return parseFeed(response.Body)
}

func parseFeed(reader io.Reader) ([]responses.YoutubeVideo, error) {
	var document feedDocument
	if err := xml.NewDecoder(reader).Decode(&document); err != nil {
		return nil, exceptions.ErrDecodeFeedXML(err)
	}

	videos := make([]responses.YoutubeVideo, 0, len(document.Entries))
	for _, entry := range document.Entries {
		video := responses.YoutubeVideo{
			VideoID:       entry.VideoID,
			Title:         entry.Title,
			Published:     entry.Published,
			Thumbnail:     entry.MediaGroup.Thumbnail.URL,
			ThumbnailHigh: fmt.Sprintf("https://i.ytimg.com/vi/%s/maxresdefault.jpg", entry.VideoID),
			URL:           fmt.Sprintf("https://www.youtube.com/watch?v=%s", entry.VideoID),
		}
		if views := entry.MediaGroup.Community.Statistics.Views; views > 0 {
			video.Views = &views
		}
		videos = append(videos, video)
	}
	return videos, nil
}
