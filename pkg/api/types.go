package api

import (
	"github.com/gwopen/gwosc/pkg/segments"
	"github.com/gwopen/gwosc/pkg/strain"
)

// RunMetadata describes an observing-run dataset in the archive index.
type RunMetadata struct {
	GPSStart  int64    `json:"GPSstart"`
	GPSEnd    int64    `json:"GPSend"`
	Detectors []string `json:"detectors"`
}

// Segment returns the [GPSstart, GPSend) interval covered by the run.
func (m *RunMetadata) Segment() segments.Segment {
	return segments.New(m.GPSStart, m.GPSEnd)
}

// ArchiveEvent describes an event entry of the archive index.
type ArchiveEvent struct {
	GPSTime   float64  `json:"GPStime"`
	Detectors []string `json:"detectors"`
}

// RunEntry is a named run in server order. Meta is nil for placeholder
// entries the archive publishes with a null body.
type RunEntry struct {
	Name string
	Meta *RunMetadata
}

// ArchiveEventEntry is a named archive-index event in server order.
type ArchiveEventEntry struct {
	Name string
	Meta *ArchiveEvent
}

// DatasetIndex is the archive index for a GPS window: the runs and events
// with data in the window, in the order the server returned them.
type DatasetIndex struct {
	Runs   []RunEntry
	Events []ArchiveEventEntry
}

// Run looks up a run by name.
func (d *DatasetIndex) Run(name string) (*RunMetadata, bool) {
	for _, r := range d.Runs {
		if r.Name == name {
			return r.Meta, r.Meta != nil
		}
	}
	return nil, false
}

// RunManifest is the strain-file manifest for a run, detector, and GPS
// window.
type RunManifest struct {
	Dataset  string        `json:"dataset"`
	GPSStart int64         `json:"GPSstart"`
	GPSEnd   int64         `json:"GPSend"`
	Strain   []strain.File `json:"strain"`
}

// CatalogSummary describes one entry of the catalog list.
type CatalogSummary struct {
	Description string `json:"description"`
	URL         string `json:"url"`
}

// EventMetadata is the event API metadata for one event dataset.
// Strain is only populated by "full" queries.
type EventMetadata struct {
	CommonName string        `json:"commonName"`
	Version    int           `json:"version"`
	Catalog    string        `json:"catalog.shortName"`
	GPS        float64       `json:"GPS"`
	JSONURL    string        `json:"jsonurl"`
	Strain     []strain.File `json:"strain"`
}

// EventEntry is a keyed event dataset in server order. Keys carry the
// versioned dataset name (e.g. "GW150914-v3").
type EventEntry struct {
	Key  string
	Meta *EventMetadata
}

// EventList is an ordered set of event datasets as returned by the event
// API.
type EventList struct {
	Entries []EventEntry
}

// Get looks up an event dataset by key.
func (l *EventList) Get(key string) (*EventMetadata, bool) {
	for _, e := range l.Entries {
		if e.Key == key {
			return e.Meta, true
		}
	}
	return nil, false
}
