package model

import "testing"

func TestProgress_Placeholders(t *testing.T) {
	tests := []struct {
		name     string
		progress Progress
		percent  string
		speed    string
		eta      string
	}{
		{
			name:     "all fields present",
			progress: Progress{Status: ProgressDownloading, Percent: "45%", Speed: "1.2MiB/s", ETA: "12"},
			percent:  "45%",
			speed:    "1.2MiB/s",
			eta:      "12",
		},
		{
			name:     "missing speed and eta",
			progress: Progress{Status: ProgressDownloading, Percent: "45%"},
			percent:  "45%",
			speed:    UnknownField,
			eta:      UnknownField,
		},
		{
			name:     "whitespace is trimmed",
			progress: Progress{Status: ProgressDownloading, Percent: "  7.5%", Speed: "   "},
			percent:  "7.5%",
			speed:    UnknownField,
			eta:      UnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.progress.PercentOrUnknown(); got != tt.percent {
				t.Errorf("PercentOrUnknown() = %q, expected %q", got, tt.percent)
			}
			if got := tt.progress.SpeedOrUnknown(); got != tt.speed {
				t.Errorf("SpeedOrUnknown() = %q, expected %q", got, tt.speed)
			}
			if got := tt.progress.ETAOrUnknown(); got != tt.eta {
				t.Errorf("ETAOrUnknown() = %q, expected %q", got, tt.eta)
			}
		})
	}
}
