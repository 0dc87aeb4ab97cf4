package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// DatasetIndex fetches the archive index of run and event datasets with
// data inside the GPS window [start, end). Server ordering is preserved.
func (c *Client) DatasetIndex(ctx context.Context, start, end int64) (*DatasetIndex, error) {
	url := c.archiveURL(start, end)
	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	index := &DatasetIndex{}
	err = walkTopLevel(body, func(dec *json.Decoder, key string) (bool, error) {
		switch key {
		case "runs":
			return true, decodeOrderedObject(dec, func(name string, meta *RunMetadata) error {
				index.Runs = append(index.Runs, RunEntry{Name: name, Meta: meta})
				return nil
			})
		case "events":
			return true, decodeOrderedObject(dec, func(name string, meta *ArchiveEvent) error {
				index.Events = append(index.Events, ArchiveEventEntry{Name: name, Meta: meta})
				return nil
			})
		default:
			return false, nil
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse archive JSON from %q: %w", url, err)
	}

	return index, nil
}

// RunManifest fetches the strain-file manifest for a run and detector
// over the GPS window [start, end).
func (c *Client) RunManifest(ctx context.Context, run, detector string, start, end int64) (*RunManifest, error) {
	var manifest RunManifest
	if err := c.FetchJSON(ctx, c.runURL(run, detector, start, end), &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}
