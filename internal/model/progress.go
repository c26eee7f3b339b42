package model

import "strings"

// ProgressStatus is the tag of a collaborator progress notification
type ProgressStatus string

const (
	// ProgressDownloading is sent repeatedly while bytes are transferred
	ProgressDownloading ProgressStatus = "downloading"

	// ProgressFinished is sent once the payload is fully transferred, before
	// muxing/post-processing
	ProgressFinished ProgressStatus = "finished"
)

// UnknownField is displayed in place of a progress field the collaborator did
// not report.
const UnknownField = "Unknown"

// Progress is one notification from the download collaborator. Empty fields
// mean the value is unavailable.
type Progress struct {
	Status  ProgressStatus
	Percent string // e.g. "45.0%"
	Speed   string // e.g. "1.2MiB/s"
	ETA     string // whole seconds, e.g. "12"
}

// PercentOrUnknown returns Percent or the Unknown placeholder
func (p Progress) PercentOrUnknown() string {
	return orUnknown(p.Percent)
}

// SpeedOrUnknown returns Speed or the Unknown placeholder
func (p Progress) SpeedOrUnknown() string {
	return orUnknown(p.Speed)
}

// ETAOrUnknown returns ETA or the Unknown placeholder
func (p Progress) ETAOrUnknown() string {
	return orUnknown(p.ETA)
}

func orUnknown(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return UnknownField
	}
	return v
}
