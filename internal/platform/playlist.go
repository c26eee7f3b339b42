package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/video-downloader/internal/model"
)

// Timeout constants
const (
	DefaultInspectTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// Default values
const (
	DefaultPlaylistName = "Unknown Playlist"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Playlist title constants
const (
	MinPrefixLength = 10
	PlaylistSuffix  = " Playlist"
)

// PlaylistFetcher lists the entries of a playlist by its ID
type PlaylistFetcher func(ctx context.Context, playlistID string) ([]model.PlaylistEntry, error)

// PlaylistInspector summarizes playlist URLs without downloading them
type PlaylistInspector struct {
	timeout time.Duration
	fetch   PlaylistFetcher
}

// NewPlaylistInspector creates an inspector backed by github.com/ytget/ytdlp
func NewPlaylistInspector() *PlaylistInspector {
	return &PlaylistInspector{
		timeout: DefaultInspectTimeout,
		fetch:   fetchPlaylistEntries,
	}
}

// SetTimeout sets the timeout for inspection
func (p *PlaylistInspector) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// SetFetcher replaces the playlist backend
func (p *PlaylistInspector) SetFetcher(fetch PlaylistFetcher) {
	if fetch != nil {
		p.fetch = fetch
	}
}

// IsPlaylistURL reports whether rawURL carries a playlist ID
func IsPlaylistURL(rawURL string) bool {
	return ExtractPlaylistID(rawURL) != ""
}

// ExtractPlaylistID returns the value of the list query parameter
func ExtractPlaylistID(rawURL string) string {
	if u, err := url.Parse(strings.TrimSpace(rawURL)); err == nil {
		if id := u.Query().Get("list"); id != "" {
			return id
		}
	}

	// Fall back to plain splitting for URLs net/url rejects
	if !strings.Contains(rawURL, PlaylistParam) {
		return ""
	}
	parts := strings.SplitN(rawURL, PlaylistParam, 2)
	return strings.TrimSpace(strings.Split(parts[1], ParamSeparator)[0])
}

// Inspect fetches the playlist entries for rawURL
func (p *PlaylistInspector) Inspect(ctx context.Context, rawURL string) (*model.PlaylistSummary, error) {
	playlistID := ExtractPlaylistID(rawURL)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", rawURL)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	entries, err := p.fetch(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	return &model.PlaylistSummary{
		ID:      playlistID,
		Title:   playlistTitle(entries),
		URL:     rawURL,
		Entries: entries,
	}, nil
}

// fetchPlaylistEntries lists a YouTube playlist with the ytget/ytdlp client
func fetchPlaylistEntries(ctx context.Context, playlistID string) ([]model.PlaylistEntry, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	entries := make([]model.PlaylistEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, model.PlaylistEntry{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}
	return entries, nil
}

// playlistTitle derives a display title from the entry titles
func playlistTitle(entries []model.PlaylistEntry) string {
	if len(entries) == 0 {
		return DefaultPlaylistName
	}
	if len(entries) > 1 {
		prefix := commonPrefix(entries[0].Title, entries[1].Title)
		if len(prefix) > MinPrefixLength {
			return strings.TrimSpace(prefix) + PlaylistSuffix
		}
	}
	return entries[0].Title + PlaylistSuffix
}

func commonPrefix(s1, s2 string) string {
	n := min(len(s1), len(s2))
	for i := 0; i < n; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:n]
}
