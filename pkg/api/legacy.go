package api

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// LegacyCatalog is the legacy filelist view of an event catalog, kept for
// the pre-eventapi data releases.
type LegacyCatalog struct {
	Data map[string]LegacyEvent `json:"data"`
}

// LegacyEvent is one event of a legacy catalog.
type LegacyEvent struct {
	Files LegacyFileSet `json:"files"`
}

// LegacyFileSet is the file map of a legacy catalog event: a data
// revision, the operating detectors, and per-detector nested URL maps.
type LegacyFileSet struct {
	Revision      string
	OperatingIFOs []string
	PerDetector   map[string]any
}

// UnmarshalJSON splits the fixed keys from the per-detector file maps.
func (f *LegacyFileSet) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	f.PerDetector = make(map[string]any)
	for key, value := range raw {
		switch key {
		case "DataRevisionNum":
			if err := json.Unmarshal(value, &f.Revision); err != nil {
				return fmt.Errorf("invalid DataRevisionNum: %w", err)
			}
		case "OperatingIFOs":
			var ifos string
			if err := json.Unmarshal(value, &ifos); err != nil {
				return fmt.Errorf("invalid OperatingIFOs: %w", err)
			}
			f.OperatingIFOs = strings.Fields(ifos)
		default:
			var nested any
			if err := json.Unmarshal(value, &nested); err != nil {
				return err
			}
			f.PerDetector[key] = nested
		}
	}
	return nil
}

// URLs flattens every string leaf of the per-detector file maps, in
// sorted detector order.
func (f *LegacyFileSet) URLs() []string {
	detectors := make([]string, 0, len(f.PerDetector))
	for det := range f.PerDetector {
		detectors = append(detectors, det)
	}
	sort.Strings(detectors)

	var urls []string
	for _, det := range detectors {
		urls = append(urls, nestedStrings(f.PerDetector[det])...)
	}
	return urls
}

// DetectorURLs flattens the string leaves of one detector's file map.
func (f *LegacyFileSet) DetectorURLs(detector string) []string {
	return nestedStrings(f.PerDetector[detector])
}

// nestedStrings collects string leaves of an arbitrarily nested JSON
// value, in sorted key order.
func nestedStrings(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var out []string
		for _, k := range keys {
			out = append(out, nestedStrings(v[k])...)
		}
		return out
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, nestedStrings(item)...)
		}
		return out
	default:
		return nil
	}
}

// LegacyCatalogFilelist fetches the legacy filelist for a catalog.
func (c *Client) LegacyCatalogFilelist(ctx context.Context, catalog string) (*LegacyCatalog, error) {
	var out LegacyCatalog
	if err := c.FetchJSON(ctx, c.legacyCatalogURL(catalog), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
