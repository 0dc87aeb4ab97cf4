// Package mockarchive serves a small canned copy of the archive API for
// tests. The data mirrors the public archive's shape: a few observing
// runs, a handful of catalogued events with strain manifests, and a
// Timeline flag.
package mockarchive

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Server is a fake archive host.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests map[string]int
}

// New starts a fake archive host. Callers own the returned server and
// must Close it.
func New() *Server {
	s := &Server{requests: make(map[string]int)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Requests returns how many times a path was fetched.
func (s *Server) Requests(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[path]
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests[r.URL.Path]++
	s.mu.Unlock()

	host := "http://" + r.Host
	body, status := s.respond(host, r.URL.Path)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

func (s *Server) respond(host, path string) (string, int) {
	parts := strings.Split(strings.Trim(path, "/"), "/")

	switch {
	case len(parts) == 4 && parts[0] == "archive" && parts[3] == "json":
		return archiveIndex, http.StatusOK

	case len(parts) == 7 && parts[0] == "archive" && parts[1] == "links" && parts[6] == "json":
		return runManifest(parts[2], parts[3])

	case path == "/eventapi/json/":
		return catalogList, http.StatusOK

	case path == "/eventapi/json/allevents/":
		return fmt.Sprintf(allEventsBrief, host, host, host, host), http.StatusOK

	case path == "/eventapi/jsonfull/allevents/":
		return fmt.Sprintf(allEventsFull, host, host, host, host), http.StatusOK

	case len(parts) == 3 && parts[0] == "eventapi" && parts[1] == "json":
		if parts[2] == "GWTC-1-confident" {
			return fmt.Sprintf(gwtc1Events, host, host, host), http.StatusOK
		}

	case len(parts) == 5 && parts[0] == "eventapi" && parts[1] == "json":
		if parts[3] == "GW150914" && parts[4] == "v1" {
			return fmt.Sprintf(gw150914v1Detail, host), http.StatusOK
		}

	case len(parts) == 3 && parts[0] == "catalog" && parts[2] == "filelist":
		if parts[1] == "GWTC-1-confident" {
			return legacyFilelist, http.StatusOK
		}

	case len(parts) == 7 && parts[0] == "timeline" && parts[1] == "segments":
		return timelineSegments(parts[3], parts[4])
	}

	return `{"detail": "not found"}`, http.StatusNotFound
}

func runManifest(run, detector string) (string, int) {
	if run == "S6" && detector == "L1" {
		return s6L1Manifest, http.StatusOK
	}
	if run == "O1" && detector == "H1" {
		return o1H1Manifest, http.StatusOK
	}
	return `{"detail": "not found"}`, http.StatusNotFound
}

func timelineSegments(dataset, flag string) (string, int) {
	if dataset == "S6" && flag == "L1_DATA" {
		return s6Timeline, http.StatusOK
	}
	if dataset == "O1" && flag == "H1_DATA" {
		return o1Timeline, http.StatusOK
	}
	return `{"detail": "not found"}`, http.StatusNotFound
}

const archiveIndex = `{
  "runs": {
    "tenyear": null,
    "history": null,
    "S6": {"GPSstart": 931035615, "GPSend": 971622015, "detectors": ["H1", "L1"]},
    "O1": {"GPSstart": 1126051217, "GPSend": 1137254417, "detectors": ["H1", "L1"]},
    "O1_16KHZ": {"GPSstart": 1126051217, "GPSend": 1137254417, "detectors": ["H1", "L1"]}
  },
  "events": {
    "GW150914": {"GPStime": 1126259462.4, "detectors": ["H1", "L1"]}
  }
}`

const catalogList = `{
  "GWTC-1-confident": {"description": "GWTC-1 confident events", "url": "https://example.org/GWTC-1/"},
  "GWTC-1-marginal": {"description": "GWTC-1 marginal triggers", "url": "https://example.org/GWTC-1m/"}
}`

const allEventsBrief = `{
  "events": {
    "GW150914-v1": {"commonName": "GW150914", "version": 1, "catalog.shortName": "GWTC-1-confident", "GPS": 1126259462.4, "jsonurl": "%s/eventapi/json/GWTC-1-confident/GW150914/v1/"},
    "GW150914-v3": {"commonName": "GW150914", "version": 3, "catalog.shortName": "GWTC-2", "GPS": 1126259462.4, "jsonurl": "%s/eventapi/json/GWTC-2/GW150914/v3/"},
    "GW170814-v2": {"commonName": "GW170814", "version": 2, "catalog.shortName": "GWTC-1-confident", "GPS": 1186741861.5, "jsonurl": "%s/eventapi/json/GWTC-1-confident/GW170814/v2/"},
    "GW170817-v3": {"commonName": "GW170817", "version": 3, "catalog.shortName": "GWTC-1-confident", "GPS": 1187008882.4, "jsonurl": "%s/eventapi/json/GWTC-1-confident/GW170817/v3/"}
  }
}`

const allEventsFull = `{
  "events": {
    "GW150914-v1": {"commonName": "GW150914", "version": 1, "catalog.shortName": "GWTC-1-confident", "GPS": 1126259462.4, "jsonurl": "%s/eventapi/json/GWTC-1-confident/GW150914/v1/",
      "strain": [
        {"url": "https://example.org/events/H-H1_LOSC_4_V1-1126257414-4096.hdf5", "detector": "H1", "GPSstart": 1126257414, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"},
        {"url": "https://example.org/events/L-L1_LOSC_4_V1-1126257414-4096.hdf5", "detector": "L1", "GPSstart": 1126257414, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"}
      ]},
    "GW150914-v3": {"commonName": "GW150914", "version": 3, "catalog.shortName": "GWTC-2", "GPS": 1126259462.4, "jsonurl": "%s/eventapi/json/GWTC-2/GW150914/v3/",
      "strain": [
        {"url": "https://example.org/events/H-H1_GWOSC_4KHZ_R3-1126257415-4096.hdf5", "detector": "H1", "GPSstart": 1126257415, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"},
        {"url": "https://example.org/events/H-H1_GWOSC_16KHZ_R3-1126257415-4096.hdf5", "detector": "H1", "GPSstart": 1126257415, "duration": 4096, "sampling_rate": 16384, "format": "hdf5"},
        {"url": "https://example.org/events/H-H1_GWOSC_4KHZ_R3-1126259447-32.hdf5", "detector": "H1", "GPSstart": 1126259447, "duration": 32, "sampling_rate": 4096, "format": "hdf5"},
        {"url": "https://example.org/events/L-L1_GWOSC_4KHZ_R3-1126257415-4096.hdf5", "detector": "L1", "GPSstart": 1126257415, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"}
      ]},
    "GW170814-v2": {"commonName": "GW170814", "version": 2, "catalog.shortName": "GWTC-1-confident", "GPS": 1186741861.5, "jsonurl": "%s/eventapi/json/GWTC-1-confident/GW170814/v2/",
      "strain": [
        {"url": "https://example.org/events/H-H1_GWOSC_4KHZ_R2-1186739814-4096.hdf5", "detector": "H1", "GPSstart": 1186739814, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"},
        {"url": "https://example.org/events/V-V1_GWOSC_4KHZ_R2-1186739814-4096.hdf5", "detector": "V1", "GPSstart": 1186739814, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"}
      ]},
    "GW170817-v3": {"commonName": "GW170817", "version": 3, "catalog.shortName": "GWTC-1-confident", "GPS": 1187008882.4, "jsonurl": "%s/eventapi/json/GWTC-1-confident/GW170817/v3/",
      "strain": [
        {"url": "https://example.org/events/H-H1_GWOSC_4KHZ_R3-1187006835-4096.hdf5", "detector": "H1", "GPSstart": 1187006835, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"},
        {"url": "https://example.org/events/L-L1_GWOSC_4KHZ_R3-1187006835-4096.hdf5", "detector": "L1", "GPSstart": 1187006835, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"},
        {"url": "https://example.org/events/V-V1_GWOSC_4KHZ_R3-1187006835-4096.hdf5", "detector": "V1", "GPSstart": 1187006835, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"}
      ]}
  }
}`

const gwtc1Events = `{
  "events": {
    "GW150914-v1": {"commonName": "GW150914", "version": 1, "catalog.shortName": "GWTC-1-confident", "GPS": 1126259462.4, "jsonurl": "%s/eventapi/json/GWTC-1-confident/GW150914/v1/"},
    "GW170814-v2": {"commonName": "GW170814", "version": 2, "catalog.shortName": "GWTC-1-confident", "GPS": 1186741861.5, "jsonurl": "%s/eventapi/json/GWTC-1-confident/GW170814/v2/"},
    "GW170817-v3": {"commonName": "GW170817", "version": 3, "catalog.shortName": "GWTC-1-confident", "GPS": 1187008882.4, "jsonurl": "%s/eventapi/json/GWTC-1-confident/GW170817/v3/"}
  }
}`

const gw150914v1Detail = `{
  "events": {
    "GW150914-v1": {"commonName": "GW150914", "version": 1, "catalog.shortName": "GWTC-1-confident", "GPS": 1126259462.4, "jsonurl": "%s/eventapi/json/GWTC-1-confident/GW150914/v1/",
      "strain": [
        {"url": "https://example.org/events/H-H1_LOSC_4_V1-1126257414-4096.hdf5", "detector": "H1", "GPSstart": 1126257414, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"}
      ]}
  }
}`

const s6L1Manifest = `{
  "dataset": "S6",
  "GPSstart": 931035615,
  "GPSend": 971622015,
  "strain": [
    {"url": "https://example.org/archive/S6/L-L1_LOSC_4_V1-968646656-4096.hdf5", "detector": "L1", "GPSstart": 968646656, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"},
    {"url": "https://example.org/archive/S6/L-L1_LOSC_4_V1-968650752-4096.hdf5", "detector": "L1", "GPSstart": 968650752, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"},
    {"url": "https://example.org/archive/S6/L-L1_LOSC_4_V1-968654848-4096.hdf5", "detector": "L1", "GPSstart": 968654848, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"},
    {"url": "https://example.org/archive/S6/L-L1_LOSC_4_V1-968658944-4096.hdf5", "detector": "L1", "GPSstart": 968658944, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"},
    {"url": "https://example.org/archive/S6/L-L1_LOSC_4_V1-968646656-4096.gwf", "detector": "L1", "GPSstart": 968646656, "duration": 4096, "sampling_rate": 4096, "format": "gwf"},
    {"url": "https://example.org/archive/S6/L-L1_LOSC_16_V1-968646656-4096.hdf5", "detector": "L1", "GPSstart": 968646656, "duration": 4096, "sampling_rate": 16384, "format": "hdf5"}
  ]
}`

const o1H1Manifest = `{
  "dataset": "O1",
  "GPSstart": 1126051217,
  "GPSend": 1137254417,
  "strain": [
    {"url": "https://example.org/archive/O1/H-H1_LOSC_4_V1-1126256640-4096.hdf5", "detector": "H1", "GPSstart": 1126256640, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"},
    {"url": "https://example.org/archive/O1/H-H1_LOSC_4_V1-1126260736-4096.hdf5", "detector": "H1", "GPSstart": 1126260736, "duration": 4096, "sampling_rate": 4096, "format": "hdf5"}
  ]
}`

const legacyFilelist = `{
  "data": {
    "GW150914": {
      "files": {
        "DataRevisionNum": "R1",
        "OperatingIFOs": "H1 L1",
        "H1": {"4KHZ": {"hdf5": "https://example.org/legacy/H-H1_LOSC_4_V1-1126257414-4096.hdf5"}},
        "L1": {"4KHZ": {"hdf5": "https://example.org/legacy/L-L1_LOSC_4_V1-1126257414-4096.hdf5"}},
        "V1": {}
      }
    },
    "GW170817": {
      "files": {
        "DataRevisionNum": "R2",
        "OperatingIFOs": "H1 L1 V1",
        "H1": {"4KHZ": {"hdf5": "https://example.org/legacy/H-H1_LOSC_4_V2-1187006835-4096.hdf5"}},
        "L1": {"4KHZ": {"hdf5": "https://example.org/legacy/L-L1_LOSC_4_V2-1187006835-4096.hdf5"}},
        "V1": {"4KHZ": {"hdf5": "https://example.org/legacy/V-V1_LOSC_4_V2-1187006835-4096.hdf5"}}
      }
    }
  }
}`

const s6Timeline = `{
  "segments": [[931040000, 931050000], [931060000, 931070000]]
}`

const o1Timeline = `{
  "segments": [[1126073529, 1126114861], [1126121462, 1126123267]]
}`
