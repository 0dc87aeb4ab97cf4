package datasets

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/gwopen/gwosc/pkg/api"
	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
	"github.com/gwopen/gwosc/pkg/segments"
	"github.com/gwopen/gwosc/pkg/strain"
)

// strainExtent returns the GPS extent of an event's strain manifest,
// optionally restricted to one detector.
func strainExtent(meta *api.EventMetadata, detector string) (segments.Segment, bool) {
	files := strain.Sieve(meta.Strain, strain.SieveOptions{Detector: detector})
	ext, err := strain.Extent(files)
	if err != nil {
		return segments.Segment{}, false
	}
	return ext, true
}

// EventGPS returns the GPS time of a named event dataset.
func EventGPS(ctx context.Context, c *api.Client, event string) (float64, error) {
	entry, err := c.ResolveEvent(ctx, event, api.EventQuery{Mode: api.FullBrief})
	if err != nil {
		if gwoscerrors.IsNotFound(err) {
			return 0, &gwoscerrors.NotFoundError{Resource: "event dataset", ID: event}
		}
		return 0, err
	}
	return entry.Meta.GPS, nil
}

// EventSegment returns the GPS [start, end) interval covered by an event
// dataset's strain files, optionally restricted to one detector.
func EventSegment(ctx context.Context, c *api.Client, event, detector string) (segments.Segment, error) {
	entry, err := c.ResolveEvent(ctx, event, api.EventQuery{Mode: api.FullAll})
	if err != nil {
		if gwoscerrors.IsNotFound(err) {
			return segments.Segment{}, &gwoscerrors.NotFoundError{Resource: "event dataset", ID: event}
		}
		return segments.Segment{}, err
	}

	files := strain.Sieve(entry.Meta.Strain, strain.SieveOptions{Detector: detector})
	ext, extErr := strain.Extent(files)
	if extErr != nil {
		return segments.Segment{}, &gwoscerrors.NotFoundError{
			Resource: "strain data",
			ID:       event,
		}
	}
	return ext, nil
}

// EventAtGPS returns the common name of the event dataset within tol
// seconds of the given GPS time. With multiple candidates the archive's
// own ordering decides; the default tolerance is one second.
func EventAtGPS(ctx context.Context, c *api.Client, gps float64, tol float64) (string, error) {
	if tol == 0 {
		tol = 1
	}

	list, err := c.AllEvents(ctx, api.FullBrief)
	if err != nil {
		return "", err
	}

	for _, entry := range list.Entries {
		if entry.Meta == nil {
			continue
		}
		if math.Abs(entry.Meta.GPS-gps) <= tol {
			return entry.Meta.CommonName, nil
		}
	}
	return "", &gwoscerrors.NotFoundError{
		Resource: "event dataset",
		ID:       formatGPSWindow(gps, tol),
	}
}

// formatGPSWindow names a GPS tolerance window for error messages.
func formatGPSWindow(gps, tol float64) string {
	return fmt.Sprintf("event within %g seconds of GPS %g", tol, gps)
}

// EventDetectors returns the sorted detectors with strain data for an
// event dataset.
func EventDetectors(ctx context.Context, c *api.Client, event string) ([]string, error) {
	entry, err := c.ResolveEvent(ctx, event, api.EventQuery{Mode: api.FullAll})
	if err != nil {
		if gwoscerrors.IsNotFound(err) {
			return nil, &gwoscerrors.NotFoundError{Resource: "event dataset", ID: event}
		}
		return nil, err
	}

	set := strain.Detectors(entry.Meta.Strain)
	out := make([]string, 0, len(set))
	for det := range set {
		out = append(out, det)
	}
	sort.Strings(out)
	return out, nil
}
