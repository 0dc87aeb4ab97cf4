// Package locate resolves detectors, GPS windows, and dataset names to
// the remote strain-file URLs that carry the data.
//
// The main entry point is URLs:
//
//	urls, err := locate.URLs(ctx, client, "L1", 968650000, 968660000, locate.Options{})
//
// which searches event datasets first, then observing runs, and returns
// the first file list that fully covers the requested window.
package locate

import (
	"context"
	"fmt"

	"github.com/gwopen/gwosc/pkg/api"
	"github.com/gwopen/gwosc/pkg/datasets"
	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
	"github.com/gwopen/gwosc/pkg/segments"
	"github.com/gwopen/gwosc/pkg/strain"
)

const (
	// DefaultFormat is the file format located when none is requested.
	DefaultFormat = "hdf5"
	// DefaultSampleRate is the sample rate (Hz) located when none is
	// requested.
	DefaultSampleRate = 4096
)

// Options restrict a URL search. Zero values pick the defaults.
type Options struct {
	// Dataset names the dataset to query. When empty every matching
	// event and run dataset is tried in turn.
	Dataset string

	// Version restricts event datasets to one data-release version
	// (0 = highest available).
	Version int

	// SampleRate is the sample rate (Hz) of files to find.
	SampleRate int

	// Format is the file format (extension) of files to find.
	Format string
}

func (o *Options) defaults() {
	if o.SampleRate == 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
}

// URLs returns the remote strain-file URLs with data for a detector over
// the GPS window [start, end). Candidate datasets are tried in order,
// events before runs, and the first file list that fully covers the
// window wins.
func URLs(ctx context.Context, c *api.Client, detector string, start, end int64, opts Options) ([]string, error) {
	opts.defaults()
	window := segments.New(start, end)

	types := []datasets.Type{datasets.TypeEvent, datasets.TypeRun}
	if opts.Dataset != "" {
		dstype, err := datasets.TypeOf(ctx, c, opts.Dataset)
		if err != nil {
			return nil, err
		}
		if dstype == datasets.TypeCatalog {
			return nil, &gwoscerrors.ValidationError{
				Field:   "dataset",
				Message: fmt.Sprintf("%q is a catalog, not a run or event dataset", opts.Dataset),
			}
		}
		types = []datasets.Type{dstype}
	}

	for _, dstype := range types {
		names := []string{opts.Dataset}
		if opts.Dataset == "" {
			var err error
			names, err = datasets.FindRanked(ctx, c, datasets.FindOptions{
				Type:     dstype,
				Detector: detector,
				Window:   &window,
				Version:  opts.Version,
			})
			if err != nil {
				return nil, err
			}
		}

		for _, name := range names {
			urls, err := datasetURLs(ctx, c, dstype, name, detector, window, opts)
			if err != nil {
				return nil, err
			}
			if strain.FullCoverage(urls, window) {
				return urls, nil
			}
		}
	}

	return nil, &gwoscerrors.NotFoundError{
		Resource: "dataset",
		ID:       fmt.Sprintf("%s covering [%d, %d)", detector, start, end),
	}
}

// datasetURLs fetches the URL list for one candidate dataset.
func datasetURLs(ctx context.Context, c *api.Client, dstype datasets.Type, name, detector string, window segments.Segment, opts Options) ([]string, error) {
	if dstype == datasets.TypeRun {
		return RunURLs(ctx, c, name, detector, window.Start, window.End, opts)
	}
	return EventURLs(ctx, c, name, EventOptions{
		Detector:   detector,
		Version:    opts.Version,
		Window:     &window,
		SampleRate: opts.SampleRate,
		Format:     opts.Format,
	})
}

// RunURLs returns the strain-file URLs of an observing run for a
// detector over the GPS window [start, end).
func RunURLs(ctx context.Context, c *api.Client, run, detector string, start, end int64, opts Options) ([]string, error) {
	opts.defaults()

	manifest, err := c.RunManifest(ctx, run, detector, start, end)
	if err != nil {
		return nil, err
	}

	files := strain.Sieve(manifest.Strain, strain.SieveOptions{
		SampleRate: opts.SampleRate,
		Format:     opts.Format,
	})
	return strain.URLs(files), nil
}

// EventOptions restrict an event URL search. Zero values pick the
// defaults.
type EventOptions struct {
	// Detector keeps files from one detector only.
	Detector string

	// Catalog restricts resolution to a catalog short name.
	Catalog string

	// Version restricts resolution to one data-release version
	// (0 = highest available).
	Version int

	// Window keeps only files overlapping the GPS interval.
	Window *segments.Segment

	// SampleRate is the sample rate (Hz) of files to find.
	SampleRate int

	// Format is the file format (extension) of files to find.
	Format string
}

// EventURLs returns the strain-file URLs of an event dataset.
func EventURLs(ctx context.Context, c *api.Client, event string, opts EventOptions) ([]string, error) {
	if opts.SampleRate == 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.Format == "" {
		opts.Format = DefaultFormat
	}

	entry, err := c.ResolveEvent(ctx, event, api.EventQuery{
		Catalog: opts.Catalog,
		Version: opts.Version,
		Mode:    api.FullAll,
	})
	if err != nil {
		return nil, err
	}

	files := strain.Sieve(entry.Meta.Strain, strain.SieveOptions{
		Detector:   opts.Detector,
		SampleRate: opts.SampleRate,
		Format:     opts.Format,
		Window:     opts.Window,
	})
	return strain.URLs(files), nil
}
