package index

import "time"

// RunRecord is everything stored for one interpreted file.
type RunRecord struct {
	RunID       string
	Path        string
	Product     string
	Vendor      string
	IndexedAt   time.Time
	Composition CompositionRecord
	Tracks      []TrackRecord
	Essences    []EssenceRecord
}

// CompositionRecord summarizes the top-level composition.
type CompositionRecord struct {
	Name       string
	EditRate   string
	Start      int64
	Length     int64
	SampleRate int
	SampleSize int
}

// TrackRecord is one audio or video track with its clips.
type TrackRecord struct {
	Kind   string
	Number int
	Name   string
	Format string
	Clips  []ClipRecord
}

// ClipRecord is one placed clip. EssenceNames are the unique names of the
// essences the clip plays, one per channel.
type ClipRecord struct {
	Position      int64
	Length        int64
	EssenceOffset int64
	Name          string
	EssenceNames  []string
	Mute          bool
}

// EssenceRecord is one source file referenced by the composition.
type EssenceRecord struct {
	Kind       string
	Name       string
	UniqueName string
	Type       string
	Embedded   bool
	Path       string
	Channels   int
	SampleRate int
	SampleSize int
	Length     int64
}

// FileEntry is one row of the file listing.
type FileEntry struct {
	ID          int64     `json:"id"`
	Path        string    `json:"path"`
	RunID       string    `json:"run_id"`
	Product     string    `json:"product"`
	Vendor      string    `json:"vendor"`
	Composition string    `json:"composition"`
	Tracks      int       `json:"tracks"`
	Clips       int       `json:"clips"`
	Essences    int       `json:"essences"`
	IndexedAt   time.Time `json:"indexed_at"`
}

// Hit is a clip matched by Search.
type Hit struct {
	Path         string   `json:"path"`
	Composition  string   `json:"composition"`
	TrackKind    string   `json:"track_kind"`
	TrackNumber  int      `json:"track_number"`
	Position     int64    `json:"position"`
	Length       int64    `json:"length"`
	ClipName     string   `json:"clip_name"`
	EssenceNames []string `json:"essence_names"`
}
