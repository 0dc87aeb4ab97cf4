package strain

import (
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
)

// MatchOptions restrict a raw URL list. Nil / zero values match everything.
type MatchOptions struct {
	Detector   string
	Tag        string
	SampleRate int

	// Version selects a single data-release version. Accepts "2", "V2"
	// or "R2". When empty the highest matched version wins.
	Version string

	Duration *int64
	Ext      string

	// Start / End bound the GPS interval of matched files: a file is kept
	// when [GPSstart, GPSstart+duration) overlaps [Start, End).
	Start *int64
	End   *int64
}

// Match filters a raw URL list against the requested parameters and
// returns the sub-list for the highest matched data-release version.
// Multiple distinct dataset tags without an explicit Tag request is an
// error, since mixing tags would silently interleave incompatible files.
func Match(urls []string, opts MatchOptions) ([]string, error) {
	// normalise a "V2"/"R2" style version request
	wantVersion := -1
	if opts.Version != "" {
		v := opts.Version
		if versionRegexp.MatchString(v) {
			v = v[1:]
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid version %q", opts.Version)
		}
		wantVersion = parsed
	}

	// sort by reversed basename fields (duration, then GPS start, ...)
	// so ties resolve deterministically
	sorted := append([]string(nil), urls...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return reversedFields(sorted[i]) < reversedFields(sorted[j])
	})

	matched := make(map[int][]string)
	tags := make(map[string]struct{})

	for _, u := range sorted {
		name, err := ParseName(u)
		if err != nil {
			continue
		}
		if opts.Detector != "" && name.Detector != opts.Detector {
			continue
		}
		if opts.Tag != "" && name.Tag != opts.Tag {
			continue
		}
		if opts.SampleRate != 0 && name.SampleRate != opts.SampleRate {
			continue
		}
		if wantVersion >= 0 && name.Version != wantVersion {
			continue
		}
		if opts.Duration != nil && name.Duration != *opts.Duration {
			continue
		}
		if opts.Ext != "" && name.Ext != opts.Ext {
			continue
		}
		if opts.End != nil && name.GPSStart >= *opts.End {
			continue // starts after the window
		}
		if opts.Start != nil && name.GPSStart+name.Duration <= *opts.Start {
			continue // ends before the window
		}

		tags[name.Tag] = struct{}{}
		matched[name.Version] = append(matched[name.Version], u)
	}

	if len(tags) > 1 {
		names := make([]string, 0, len(tags))
		for t := range tags {
			names = append(names, strconv.Quote(t))
		}
		sort.Strings(names)
		return nil, fmt.Errorf(
			"multiple file tags discovered in dataset, please select one of: %s",
			strings.Join(names, ", "),
		)
	}

	best := -1
	for v := range matched {
		if v > best {
			best = v
		}
	}
	if best < 0 {
		return []string{}, nil
	}
	return matched[best], nil
}

// reversedFields builds the sort key used by Match: the hyphen-separated
// basename fields in reverse order.
func reversedFields(url string) string {
	base := path.Base(url)
	base = strings.TrimSuffix(base, path.Ext(base))
	fields := strings.Split(base, "-")
	for i, j := 0, len(fields)-1; i < j; i, j = i+1, j-1 {
		fields[i], fields[j] = fields[j], fields[i]
	}
	return strings.Join(fields, "-")
}
