package api

import (
	"context"
	"encoding/json"
	"fmt"

	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
)

// FullMode selects between the brief and full event API views. The full
// view carries strain-file manifests and is considerably larger.
type FullMode int

const (
	// FullAuto uses the full view when it is already cached, the brief
	// view otherwise.
	FullAuto FullMode = iota
	// FullBrief always uses the brief view.
	FullBrief
	// FullAll always uses the full view.
	FullAll
)

// AllEvents fetches the allevents view of the event API, preserving
// server ordering of the event datasets.
func (c *Client) AllEvents(ctx context.Context, mode FullMode) (*EventList, error) {
	full := false
	switch mode {
	case FullAll:
		full = true
	case FullAuto:
		full = c.cached(c.allEventsURL(true))
	}

	url := c.allEventsURL(full)
	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseEventList(body, url)
}

// parseEventList decodes an {"events": {...}} payload in wire order.
func parseEventList(body []byte, url string) (*EventList, error) {
	list := &EventList{}
	err := walkTopLevel(body, func(dec *json.Decoder, key string) (bool, error) {
		if key != "events" {
			return false, nil
		}
		return true, decodeOrderedObject(dec, func(name string, meta *EventMetadata) error {
			list.Entries = append(list.Entries, EventEntry{Key: name, Meta: meta})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse archive JSON from %q: %w", url, err)
	}
	return list, nil
}

// EventQuery restricts event resolution.
type EventQuery struct {
	// Catalog restricts the match to a catalog short name.
	Catalog string

	// Version restricts the match to one data-release version
	// (0 = highest available).
	Version int

	// Mode selects the brief or full event API view.
	Mode FullMode
}

// ResolveEvent finds the event dataset matching a name, which may be
// either the versioned dataset key ("GW150914-v3") or the common event
// name ("GW150914"). Without an explicit version the highest available
// release wins; among equal versions the later server entry wins.
func (c *Client) ResolveEvent(ctx context.Context, event string, q EventQuery) (*EventEntry, error) {
	list, err := c.AllEvents(ctx, q.Mode)
	if err != nil {
		return nil, err
	}

	var best *EventEntry
	for i := range list.Entries {
		entry := &list.Entries[i]
		meta := entry.Meta
		if meta == nil {
			continue
		}
		if event != entry.Key && event != meta.CommonName {
			continue
		}
		if q.Version != 0 && meta.Version != q.Version {
			continue
		}
		if q.Catalog != "" && meta.Catalog != q.Catalog {
			continue
		}
		if best == nil || meta.Version >= best.Meta.Version {
			best = entry
		}
	}
	if best != nil {
		return best, nil
	}

	// Name the constraint that failed, the way the archive semantics
	// distinguish them: without a catalog the catalog is unknown, with
	// one the version is.
	id := event
	switch {
	case q.Catalog != "":
		id = fmt.Sprintf("%s in catalog %q", event, q.Catalog)
	case q.Version != 0:
		id = fmt.Sprintf("%s at version %d", event, q.Version)
	}
	return nil, &gwoscerrors.NotFoundError{Resource: "event", ID: id}
}

// EventJSON fetches the per-event metadata payload for a named event,
// resolving catalog and version the same way ResolveEvent does.
func (c *Client) EventJSON(ctx context.Context, event string, q EventQuery) (*EventList, error) {
	q.Mode = FullAuto
	entry, err := c.ResolveEvent(ctx, event, q)
	if err != nil {
		return nil, err
	}
	if entry.Meta.JSONURL == "" {
		return nil, fmt.Errorf("event %q has no metadata URL", event)
	}

	body, err := c.fetch(ctx, entry.Meta.JSONURL)
	if err != nil {
		return nil, err
	}
	return parseEventList(body, entry.Meta.JSONURL)
}
