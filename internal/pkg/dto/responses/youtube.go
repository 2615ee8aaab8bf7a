package responses

type YoutubeVideo struct {
	VideoID       string `json:"videoId"`
	Title         string `json:"title"`
	Published     string `json:"published"`
	Thumbnail     string `json:"thumbnail"`
	ThumbnailHigh string `json:"thumbnailHigh"`
	URL           string `json:"url"`
	Views         *int64 `json:"views"`
}

type YoutubeFeed struct {
	ChannelID string         `json:"channelId"`
	Videos    []YoutubeVideo `json:"videos"`
}
