// Package catalog lists the datasets and events of the legacy catalog
// filelist releases, which predate the event API.
package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/gwopen/gwosc/pkg/api"
	"github.com/gwopen/gwosc/pkg/segments"
	"github.com/gwopen/gwosc/pkg/strain"
)

// Options restrict a legacy catalog listing. Zero values match
// everything.
type Options struct {
	// Detector keeps events observed by the given detector.
	Detector string

	// Window keeps events whose file extent overlaps the GPS interval.
	Window *segments.Segment
}

// Datasets returns the dataset names of a legacy catalog, one per event
// and data revision ("GW150914_R1"), sorted.
func Datasets(ctx context.Context, c *api.Client, catalog string, opts Options) ([]string, error) {
	legacy, err := c.LegacyCatalogFilelist(ctx, catalog)
	if err != nil {
		return nil, err
	}

	var out []string
	for event, entry := range legacy.Data {
		files := entry.Files
		if opts.Detector != "" && !operatedBy(files.OperatingIFOs, opts.Detector) {
			continue
		}
		if opts.Window != nil {
			urls := operatingURLs(files)
			ext, err := strain.ListExtent(urls)
			if err != nil || !ext.Overlaps(*opts.Window) {
				continue
			}
		}
		out = append(out, event+"_"+files.Revision)
	}
	sort.Strings(out)
	return out, nil
}

// Events returns the event names of a legacy catalog, with the data
// revision suffix stripped.
func Events(ctx context.Context, c *api.Client, catalog string, opts Options) ([]string, error) {
	names, err := Datasets(ctx, c, catalog, opts)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		if i := strings.LastIndex(name, "_"); i >= 0 {
			name = name[:i]
		}
		out = append(out, name)
	}
	return out, nil
}

// operatingURLs flattens the file URLs of every operating detector.
func operatingURLs(files api.LegacyFileSet) []string {
	var urls []string
	for _, det := range files.OperatingIFOs {
		urls = append(urls, files.DetectorURLs(det)...)
	}
	return urls
}

func operatedBy(ifos []string, detector string) bool {
	for _, ifo := range ifos {
		if ifo == detector {
			return true
		}
	}
	return false
}
