package source

import "time"

// CaptureInfo holds what is known about a capture file without converting it
type CaptureInfo struct {
	Name            string    `json:"name"`
	Path            string    `json:"path"`
	SizeBytes       int64     `json:"sizeBytes"`
	ModifiedAt      time.Time `json:"modifiedAt"`
	StartedAt       time.Time `json:"startedAt,omitempty"`
	Device          string    `json:"device,omitempty"`
	Serial          string    `json:"serial,omitempty"`
	SamplesPerSweep int       `json:"samplesPerSweep,omitempty"`
	HeaderError     string    `json:"headerError,omitempty"`
}
