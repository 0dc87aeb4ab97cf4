// Package datasets queries the archive for available datasets: transient
// events, long observing runs, and event catalogs.
//
// Dataset names can be listed with Find:
//
//	names, err := datasets.Find(ctx, client, datasets.FindOptions{Detector: "V1"})
//
// and resolved to or from GPS times with EventGPS, EventAtGPS,
// RunSegment, and RunAtGPS.
package datasets

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/gwopen/gwosc/pkg/api"
	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
	"github.com/gwopen/gwosc/pkg/segments"
)

// Type restricts a dataset query to one dataset class.
type Type string

const (
	// TypeAny matches every dataset class.
	TypeAny Type = ""
	// TypeRun matches observing-run datasets.
	TypeRun Type = "run"
	// TypeCatalog matches event catalogs.
	TypeCatalog Type = "catalog"
	// TypeEvent matches transient-event datasets.
	TypeEvent Type = "event"
)

// ignoredRuns are archive bookkeeping entries that never surface as
// datasets.
var ignoredRuns = map[string]struct{}{
	"tenyear":    {},
	"history":    {},
	"oldhistory": {},
}

// FindOptions restrict a dataset search. Zero values match everything.
type FindOptions struct {
	// Detector keeps datasets with data from the given detector prefix.
	Detector string

	// Type restricts to one dataset class. An unknown type matches
	// nothing.
	Type Type

	// Window keeps datasets whose GPS extent overlaps it. Catalogs are
	// not time-bounded and ignore the window.
	Window *segments.Segment

	// Match is a regular expression filter on dataset names.
	Match string

	// Catalog restricts event datasets to one catalog short name.
	// Only meaningful with event queries.
	Catalog string

	// Version restricts event datasets to one data-release version
	// (0 = all). Only meaningful with event queries.
	Version int
}

// Find returns the names of all datasets matching the options, sorted.
// An empty result is not an error.
func Find(ctx context.Context, c *api.Client, opts FindOptions) ([]string, error) {
	names, err := FindRanked(ctx, c, opts)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// FindRanked is Find without the final sort: runs come back in server
// order and events ranked by relevance (GPS distance to the window,
// catalog confidence, then descending version). URL searches walk
// candidates in this order.
func FindRanked(ctx context.Context, c *api.Client, opts FindOptions) ([]string, error) {
	kind := strings.TrimSuffix(strings.ToLower(string(opts.Type)), "s")
	needRuns := kind == "" || kind == "run"
	needCatalogs := kind == "" || kind == "catalog"
	needEvents := kind == "" || kind == "event"

	// catalog/version only make sense for event queries
	if !needEvents {
		if opts.Catalog != "" {
			c.Logger().Warn("the catalog option is only relevant when querying for event datasets, it will be ignored")
		}
		if opts.Version != 0 {
			c.Logger().Warn("the version option is only relevant when querying for event datasets, it will be ignored")
		}
	}

	var matcher *regexp.Regexp
	if opts.Match != "" {
		var err error
		matcher, err = regexp.Compile(opts.Match)
		if err != nil {
			return nil, &gwoscerrors.ValidationError{
				Field:   "match",
				Message: err.Error(),
			}
		}
	}

	var names []string

	if needRuns {
		runs, err := runDatasets(ctx, c, opts.Detector, opts.Window)
		if err != nil {
			return nil, err
		}
		names = append(names, runs...)
	}

	if needCatalogs {
		catalogs, err := catalogDatasets(ctx, c)
		if err != nil {
			return nil, err
		}
		names = append(names, catalogs...)
	}

	if needEvents {
		events, err := eventDatasets(ctx, c, opts)
		if err != nil {
			return nil, err
		}
		names = append(names, events...)
	}

	out := names[:0]
	for _, name := range names {
		if matcher == nil || matcher.MatchString(name) {
			out = append(out, name)
		}
	}
	return out, nil
}

// runDatasets lists run datasets matching a detector and window.
func runDatasets(ctx context.Context, c *api.Client, detector string, window *segments.Segment) ([]string, error) {
	index, err := c.DatasetIndex(ctx, 0, api.MaxGPS)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, run := range index.Runs {
		if _, skip := ignoredRuns[run.Name]; skip || run.Meta == nil {
			continue
		}
		if detector != "" && !contains(run.Meta.Detectors, detector) {
			continue
		}
		if window != nil && !run.Meta.Segment().Overlaps(*window) {
			continue
		}
		out = append(out, run.Name)
	}
	return out, nil
}

// catalogDatasets lists the published event catalogs.
func catalogDatasets(ctx context.Context, c *api.Client) ([]string, error) {
	list, err := c.CatalogList(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(list))
	for name := range list {
		out = append(out, name)
	}
	return out, nil
}

// eventDatasets lists event dataset keys matching the options, ranked by
// GPS distance to the window, catalog confidence, then descending
// version.
func eventDatasets(ctx context.Context, c *api.Client, opts FindOptions) ([]string, error) {
	full := opts.Detector != "" || opts.Window != nil
	mode := api.FullBrief
	if full {
		mode = api.FullAll
	}

	list, err := c.AllEvents(ctx, mode)
	if err != nil {
		return nil, err
	}

	var matched []api.EventEntry
	for _, entry := range list.Entries {
		if matchEventDataset(entry.Meta, opts, full) {
			matched = append(matched, entry)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i].Meta, matched[j].Meta
		if da, db := gpsDistance(a, opts.Window), gpsDistance(b, opts.Window); da != db {
			return da < db
		}
		if ra, rb := catalogRank(a.Catalog), catalogRank(b.Catalog); ra != rb {
			return ra < rb
		}
		return a.Version > b.Version
	})

	out := make([]string, 0, len(matched))
	for _, entry := range matched {
		out = append(out, entry.Key)
	}
	return out, nil
}

// matchEventDataset applies the event filters to one dataset.
func matchEventDataset(meta *api.EventMetadata, opts FindOptions, full bool) bool {
	if meta == nil {
		return false
	}
	if opts.Catalog != "" && meta.Catalog != opts.Catalog {
		return false
	}
	if opts.Version != 0 && meta.Version != opts.Version {
		return false
	}
	if !full {
		return true
	}

	if len(meta.Strain) == 0 {
		// no strain manifest, cannot match detector or window
		return false
	}

	if opts.Detector != "" {
		found := false
		for _, f := range meta.Strain {
			if f.Detector == opts.Detector {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if opts.Window != nil {
		ext, ok := strainExtent(meta, opts.Detector)
		if !ok || !ext.Overlaps(*opts.Window) {
			return false
		}
	}

	return true
}

// gpsDistance ranks an event by distance from the window start.
func gpsDistance(meta *api.EventMetadata, window *segments.Segment) int64 {
	if window == nil {
		return 0
	}
	return int64(math.Abs(float64(window.Start) - meta.GPS))
}

// catalogRank ranks catalogs by confidence: confident releases first,
// marginal and preliminary ones last.
func catalogRank(catalog string) int {
	cat := strings.ToLower(catalog)
	if strings.Contains(cat, "confident") {
		return 1
	}
	if strings.Contains(cat, "marginal") || strings.Contains(cat, "preliminary") {
		return 10
	}
	return 5
}

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
