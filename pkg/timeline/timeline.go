// Package timeline fetches data-quality segment lists from the archive's
// Timeline service.
//
// Flags are named after a detector prefix plus a quality level, e.g.
// "H1_DATA" or "L1_CBC_CAT2":
//
//	segs, err := timeline.Segments(ctx, client, "H1_DATA", 1126051217, 1126151217)
//
// The result is a sorted list of disjoint [start, end) GPS segments.
package timeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/gwopen/gwosc/pkg/api"
	"github.com/gwopen/gwosc/pkg/datasets"
	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
	"github.com/gwopen/gwosc/pkg/segments"
)

// Segments returns the GPS segments of a Timeline flag over the window
// [start, end). The hosting run dataset is picked automatically as the
// run with the largest overlap with the window.
func Segments(ctx context.Context, c *api.Client, flag string, start, end int64) ([]segments.Segment, error) {
	dataset, err := hostDataset(ctx, c, flag, start, end)
	if err != nil {
		return nil, err
	}
	return c.TimelineSegments(ctx, dataset, flag, start, end)
}

// SegmentsClipped returns the flag segments clipped to the query window,
// so no returned segment extends past [start, end).
func SegmentsClipped(ctx context.Context, c *api.Client, flag string, start, end int64) ([]segments.Segment, error) {
	segs, err := Segments(ctx, c, flag, start, end)
	if err != nil {
		return nil, err
	}
	return segments.Clip(segs, segments.New(start, end)), nil
}

// URL returns the Timeline endpoint for a flag and GPS window, resolving
// the hosting run dataset first.
func URL(ctx context.Context, c *api.Client, flag string, start, end int64) (string, error) {
	dataset, err := hostDataset(ctx, c, flag, start, end)
	if err != nil {
		return "", err
	}
	return c.TimelineURL(dataset, flag, start, end), nil
}

// hostDataset picks the run dataset hosting a Timeline flag: the run
// with the most overlap with the window, ties broken by name.
func hostDataset(ctx context.Context, c *api.Client, flag string, start, end int64) (string, error) {
	detector, _, _ := strings.Cut(flag, "_")
	window := segments.New(start, end)

	runs, err := datasets.Find(ctx, c, datasets.FindOptions{
		Type:     datasets.TypeRun,
		Detector: detector,
		Window:   &window,
	})
	if err != nil {
		return "", err
	}

	best := ""
	var bestUncovered int64
	for _, run := range runs {
		seg, err := datasets.RunSegment(ctx, c, run)
		if err != nil {
			return "", err
		}
		overlap := min(end, seg.End) - max(start, seg.Start)
		uncovered := (end - start) - overlap
		if best == "" || uncovered < bestUncovered || (uncovered == bestUncovered && run < best) {
			best = run
			bestUncovered = uncovered
		}
	}
	if best == "" {
		return "", &gwoscerrors.NotFoundError{
			Resource: "run dataset",
			ID:       fmt.Sprintf("%s matching [%d, %d)", detector, start, end),
		}
	}
	return best, nil
}
