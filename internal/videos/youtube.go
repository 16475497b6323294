package videos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/pranav/placement-helper/internal/types"
)

// YouTubeClient is the production SearchClient backed by the YouTube Data
// API. A missing API key is a configuration error surfaced at construction,
// never silently degraded.
type YouTubeClient struct {
	service *youtube.Service
}

// NewYouTubeClient creates a YouTube-backed search client.
func NewYouTubeClient(ctx context.Context, apiKey string) (*YouTubeClient, error) {
	if apiKey == "" {
		return nil, errors.New("GOOGLE_API_KEY is required for video search")
	}
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube client: %w", err)
	}
	return &YouTubeClient{service: service}, nil
}

// Search implements SearchClient over the YouTube search endpoint.
func (c *YouTubeClient) Search(ctx context.Context, query string, maxResults int64) ([]types.VideoCandidate, error) {
	call := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		Order("relevance").
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search failed: %w", err)
	}

	candidates := make([]types.VideoCandidate, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		published, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		candidates = append(candidates, types.VideoCandidate{
			VideoID:      item.Id.VideoId,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			ChannelID:    item.Snippet.ChannelId,
			Thumbnail:    thumbnailURL(item.Snippet.Thumbnails),
			PublishedAt:  published,
		})
	}
	return candidates, nil
}

func thumbnailURL(thumbs *youtube.ThumbnailDetails) string {
	if thumbs == nil {
		return ""
	}
	for _, t := range []*youtube.Thumbnail{thumbs.Medium, thumbs.High, thumbs.Default} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}
	return ""
}
