package strain

import (
	"github.com/gwopen/gwosc/pkg/segments"
)

// SieveOptions restrict a strain manifest. Zero values match everything.
type SieveOptions struct {
	// Detector matches the manifest "detector" field exactly.
	Detector string

	// SampleRate matches the manifest "sampling_rate" field exactly (Hz).
	SampleRate int

	// Format matches the manifest "format" field exactly.
	Format string

	// Window keeps only files whose GPS interval overlaps it.
	Window *segments.Segment
}

// Sieve filters a strain manifest on exact metadata matches plus optional
// window overlap. Entries are returned in input order.
func Sieve(files []File, opts SieveOptions) []File {
	var out []File
	for _, f := range files {
		if opts.Detector != "" && f.Detector != opts.Detector {
			continue
		}
		if opts.SampleRate != 0 && f.SampleRate != opts.SampleRate {
			continue
		}
		if opts.Format != "" && f.Format != opts.Format {
			continue
		}
		if opts.Window != nil && !f.Segment().Overlaps(*opts.Window) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Detectors returns the set of detectors present in a manifest.
func Detectors(files []File) map[string]struct{} {
	out := make(map[string]struct{}, len(files))
	for _, f := range files {
		out[f.Detector] = struct{}{}
	}
	return out
}
