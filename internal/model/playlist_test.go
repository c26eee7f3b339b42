package model

import "testing"

func TestPlaylistSummaryCount(t *testing.T) {
	var nilSummary *PlaylistSummary
	if nilSummary.Count() != 0 {
		t.Error("nil summary should have zero entries")
	}

	summary := &PlaylistSummary{
		ID:      "PL1",
		Entries: []PlaylistEntry{{ID: "a"}, {ID: "b"}},
	}
	if summary.Count() != 2 {
		t.Errorf("expected 2 entries, got %d", summary.Count())
	}
}
