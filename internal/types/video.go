package types

import "time"

// VideoCandidate is a single interview-video search result. The relevance
// score computed during ranking is ephemeral and never serialized.
type VideoCandidate struct {
	VideoID      string    `json:"videoId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ChannelTitle string    `json:"channelTitle"`
	ChannelID    string    `json:"channelId"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	PublishedAt  time.Time `json:"publishedAt"`
}
