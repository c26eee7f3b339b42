package model

// PlaylistEntry is a single video of a playlist
type PlaylistEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// PlaylistSummary describes a playlist URL before it is downloaded
type PlaylistSummary struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	URL     string          `json:"url"`
	Entries []PlaylistEntry `json:"entries"`
}

// Count returns the number of entries in the playlist
func (p *PlaylistSummary) Count() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}
