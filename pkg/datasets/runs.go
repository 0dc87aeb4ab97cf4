package datasets

import (
	"context"
	"fmt"

	"github.com/gwopen/gwosc/pkg/api"
	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
	"github.com/gwopen/gwosc/pkg/segments"
)

// RunSegment returns the GPS [start, end) interval covered by a named
// observing run.
func RunSegment(ctx context.Context, c *api.Client, run string) (segments.Segment, error) {
	index, err := c.DatasetIndex(ctx, 0, api.MaxGPS)
	if err != nil {
		return segments.Segment{}, err
	}
	meta, ok := index.Run(run)
	if !ok {
		return segments.Segment{}, &gwoscerrors.NotFoundError{Resource: "run dataset", ID: run}
	}
	return meta.Segment(), nil
}

// RunAtGPS returns the name of the first observing run containing a GPS
// time, in the order the archive lists its runs.
func RunAtGPS(ctx context.Context, c *api.Client, gps int64) (string, error) {
	index, err := c.DatasetIndex(ctx, 0, api.MaxGPS)
	if err != nil {
		return "", err
	}

	for _, run := range index.Runs {
		if _, skip := ignoredRuns[run.Name]; skip || run.Meta == nil {
			continue
		}
		if run.Meta.Segment().Contains(gps) {
			return run.Name, nil
		}
	}
	return "", &gwoscerrors.NotFoundError{
		Resource: "run dataset",
		ID:       fmt.Sprintf("run containing GPS %d", gps),
	}
}

// TypeOf classifies a dataset name as a run, catalog, or event, probing
// in that order. Unknown names are an error.
func TypeOf(ctx context.Context, c *api.Client, dataset string) (Type, error) {
	index, err := c.DatasetIndex(ctx, 0, api.MaxGPS)
	if err != nil {
		return TypeAny, err
	}
	if _, ok := index.Run(dataset); ok {
		return TypeRun, nil
	}

	catalogs, err := c.CatalogList(ctx)
	if err != nil {
		return TypeAny, err
	}
	if _, ok := catalogs[dataset]; ok {
		return TypeCatalog, nil
	}

	events, err := c.AllEvents(ctx, api.FullBrief)
	if err != nil {
		return TypeAny, err
	}
	for _, entry := range events.Entries {
		if entry.Meta == nil {
			continue
		}
		if entry.Key == dataset || entry.Meta.CommonName == dataset {
			return TypeEvent, nil
		}
	}

	return TypeAny, &gwoscerrors.NotFoundError{Resource: "dataset", ID: dataset}
}
