// Package strain handles the archive's strain-file naming convention
// and the filtering of strain-file manifests.
//
// File basenames follow LIGO-T050017: the final two hyphen-separated fields
// before the extension are the integer GPS start time and integer duration
// of the file, e.g. H-H1_LOSC_4_V2-1126257414-4096.hdf5.
package strain

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/gwopen/gwosc/pkg/segments"
)

// File is one entry of the "strain" manifest returned by the archive.
type File struct {
	URL        string `json:"url"`
	Detector   string `json:"detector"`
	GPSStart   int64  `json:"GPSstart"`
	Duration   int64  `json:"duration"`
	SampleRate int    `json:"sampling_rate"`
	Format     string `json:"format"`
}

// Segment returns the [GPSstart, GPSstart+duration) interval covered by
// the file.
func (f File) Segment() segments.Segment {
	return segments.New(f.GPSStart, f.GPSStart+f.Duration)
}

// nameRegexp matches archive strain file basenames, both the legacy LOSC
// and current GWOSC spellings, with an optional dataset tag and an
// optional KHZ suffix on the sample-rate field.
var nameRegexp = regexp.MustCompile(
	`^(?P<obs>[^/]+)-` +
		`(?P<ifo>[A-Z][0-9])_(L|GW)OSC_` +
		`((?P<tag>[^/]+)_)?` +
		`(?P<samp>\d+(KHZ)?)_` +
		`[RV](?P<version>\d+)-` +
		`(?P<start>[^/]+)-` +
		`(?P<dur>[^/.]+)\.` +
		`(?P<ext>[^/]+)$`,
)

var versionRegexp = regexp.MustCompile(`^[RV]\d+$`)

// Name holds the fields parsed from a strain file basename.
type Name struct {
	Observatory string
	Detector    string
	Tag         string
	SampleRate  int
	Version     int
	GPSStart    int64
	Duration    int64
	Ext         string
}

// ParseName parses the basename of a strain file URL.
func ParseName(url string) (*Name, error) {
	base := path.Base(url)
	m := nameRegexp.FindStringSubmatch(base)
	if m == nil {
		return nil, fmt.Errorf("cannot parse strain file name %q", base)
	}

	sub := func(name string) string {
		return m[nameRegexp.SubexpIndex(name)]
	}

	// sample-rate field is in kHz-ish units: "4" means 4096 Hz, "16KHZ"
	// means 16384 Hz
	rate, err := strconv.Atoi(strings.TrimSuffix(sub("samp"), "KHZ"))
	if err != nil {
		return nil, fmt.Errorf("cannot parse sample rate in %q: %w", base, err)
	}

	version, err := strconv.Atoi(sub("version"))
	if err != nil {
		return nil, fmt.Errorf("cannot parse version in %q: %w", base, err)
	}

	start, err := strconv.ParseInt(sub("start"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot parse GPS start in %q: %w", base, err)
	}

	dur, err := strconv.ParseInt(sub("dur"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot parse duration in %q: %w", base, err)
	}

	return &Name{
		Observatory: sub("obs"),
		Detector:    sub("ifo"),
		Tag:         sub("tag"),
		SampleRate:  rate * 1024,
		Version:     version,
		GPSStart:    start,
		Duration:    dur,
		Ext:         sub("ext"),
	}, nil
}

// URLSegment returns the GPS segment covered by a URL following T050017.
// Only the final two fields are inspected, so this works for names the
// full regexp does not cover.
func URLSegment(url string) (segments.Segment, error) {
	base := path.Base(url)
	fields := strings.Split(base, "-")
	if len(fields) < 4 {
		return segments.Segment{}, fmt.Errorf("cannot parse GPS interval from %q", base)
	}
	start, err := strconv.ParseInt(fields[len(fields)-2], 10, 64)
	if err != nil {
		return segments.Segment{}, fmt.Errorf("cannot parse GPS start from %q: %w", base, err)
	}
	durField, _, _ := strings.Cut(fields[len(fields)-1], ".")
	dur, err := strconv.ParseInt(durField, 10, 64)
	if err != nil {
		return segments.Segment{}, fmt.Errorf("cannot parse duration from %q: %w", base, err)
	}
	return segments.New(start, start+dur), nil
}

// ListExtent returns the GPS [start, end) interval covered by a URL list.
func ListExtent(urls []string) (segments.Segment, error) {
	if len(urls) == 0 {
		return segments.Segment{}, fmt.Errorf("empty URL list")
	}
	segs := make([]segments.Segment, 0, len(urls))
	for _, u := range urls {
		seg, err := URLSegment(u)
		if err != nil {
			return segments.Segment{}, err
		}
		segs = append(segs, seg)
	}
	ext, _ := segments.Extent(segs)
	return ext, nil
}

// FullCoverage reports whether a URL list completely covers a GPS window.
// The list is presumed contiguous, so only the extent is checked.
func FullCoverage(urls []string, window segments.Segment) bool {
	ext, err := ListExtent(urls)
	if err != nil {
		return false
	}
	return ext.Start <= window.Start && ext.End >= window.End
}

// Extent returns the GPS [start, end) interval covered by a manifest.
func Extent(files []File) (segments.Segment, error) {
	if len(files) == 0 {
		return segments.Segment{}, fmt.Errorf("empty strain manifest")
	}
	segs := make([]segments.Segment, 0, len(files))
	for _, f := range files {
		segs = append(segs, f.Segment())
	}
	ext, _ := segments.Extent(segs)
	return ext, nil
}

// URLs extracts the URL of every manifest entry, preserving order.
func URLs(files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.URL)
	}
	return out
}
