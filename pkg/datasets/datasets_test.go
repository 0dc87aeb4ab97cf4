package datasets

import (
	"bytes"
	"context"
	"log/slog"
	"reflect"
	"testing"

	"github.com/gwopen/gwosc/internal/mockarchive"
	"github.com/gwopen/gwosc/pkg/api"
	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
	"github.com/gwopen/gwosc/pkg/segments"
)

func newFixture(t *testing.T, opts ...api.Option) *api.Client {
	t.Helper()

	server := mockarchive.New()
	t.Cleanup(server.Close)

	client, err := api.New(append([]api.Option{api.WithHost(server.URL)}, opts...)...)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestFind(t *testing.T) {
	client := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		opts FindOptions
		want []string
	}{
		{
			"everything",
			FindOptions{},
			[]string{
				"GW150914-v1", "GW150914-v3", "GW170814-v2", "GW170817-v3",
				"GWTC-1-confident", "GWTC-1-marginal",
				"O1", "O1_16KHZ", "S6",
			},
		},
		{
			"runs only",
			FindOptions{Type: TypeRun},
			[]string{"O1", "O1_16KHZ", "S6"},
		},
		{
			"plural type",
			FindOptions{Type: "runs"},
			[]string{"O1", "O1_16KHZ", "S6"},
		},
		{
			"catalogs only",
			FindOptions{Type: TypeCatalog},
			[]string{"GWTC-1-confident", "GWTC-1-marginal"},
		},
		{
			"events only",
			FindOptions{Type: TypeEvent},
			[]string{"GW150914-v1", "GW150914-v3", "GW170814-v2", "GW170817-v3"},
		},
		{
			"unknown type",
			FindOptions{Type: "telescope"},
			nil,
		},
		{
			"runs for a window",
			FindOptions{Type: TypeRun, Window: &segments.Segment{Start: 1126051217, End: 1126051218}},
			[]string{"O1", "O1_16KHZ"},
		},
		{
			"runs for a missing detector",
			FindOptions{Type: TypeRun, Detector: "V1"},
			nil,
		},
		{
			"events by catalog",
			FindOptions{Type: TypeEvent, Catalog: "GWTC-1-confident"},
			[]string{"GW150914-v1", "GW170814-v2", "GW170817-v3"},
		},
		{
			"events by version",
			FindOptions{Type: TypeEvent, Version: 3},
			[]string{"GW150914-v3", "GW170817-v3"},
		},
		{
			"events by detector",
			FindOptions{Type: TypeEvent, Detector: "V1"},
			[]string{"GW170814-v2", "GW170817-v3"},
		},
		{
			"match filter",
			FindOptions{Match: "^GW1708"},
			[]string{"GW170814-v2", "GW170817-v3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Find(ctx, client, tt.opts)
			if err != nil {
				t.Fatalf("Find failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Find = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFind_BadMatch(t *testing.T) {
	client := newFixture(t)

	_, err := Find(context.Background(), client, FindOptions{Match: "("})
	if !gwoscerrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestFind_WarnsOnIgnoredOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client := newFixture(t, api.WithLogger(logger))

	_, err := Find(context.Background(), client, FindOptions{
		Type:    TypeRun,
		Catalog: "GWTC-1-confident",
		Version: 2,
	})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("catalog")) || !bytes.Contains(buf.Bytes(), []byte("ignored")) {
		t.Errorf("expected warnings about ignored options, got: %s", buf.String())
	}
}

func TestFindRanked_EventOrdering(t *testing.T) {
	client := newFixture(t)

	// a window near GW170817 ranks it first, before the closer-named
	// alphabetical candidates
	window := segments.New(1187008880, 1187008890)
	got, err := FindRanked(context.Background(), client, FindOptions{
		Type:   TypeEvent,
		Window: &window,
	})
	if err != nil {
		t.Fatalf("FindRanked failed: %v", err)
	}
	if len(got) == 0 || got[0] != "GW170817-v3" {
		t.Errorf("expected GW170817-v3 first, got %v", got)
	}
}

func TestEventGPS(t *testing.T) {
	client := newFixture(t)

	gps, err := EventGPS(context.Background(), client, "GW170817")
	if err != nil {
		t.Fatalf("EventGPS failed: %v", err)
	}
	if gps != 1187008882.4 {
		t.Errorf("EventGPS = %v, want 1187008882.4", gps)
	}

	_, err = EventGPS(context.Background(), client, "GW000000")
	if !gwoscerrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestEventSegment(t *testing.T) {
	client := newFixture(t)

	seg, err := EventSegment(context.Background(), client, "GW150914", "")
	if err != nil {
		t.Fatalf("EventSegment failed: %v", err)
	}
	if seg != segments.New(1126257415, 1126261511) {
		t.Errorf("EventSegment = %v", seg)
	}

	// restricting to one detector narrows to its files
	seg, err = EventSegment(context.Background(), client, "GW170814", "V1")
	if err != nil {
		t.Fatalf("EventSegment failed: %v", err)
	}
	if seg != segments.New(1186739814, 1186743910) {
		t.Errorf("EventSegment = %v", seg)
	}

	// a detector with no files is an error
	if _, err := EventSegment(context.Background(), client, "GW150914", "V1"); !gwoscerrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestEventAtGPS(t *testing.T) {
	client := newFixture(t)
	ctx := context.Background()

	name, err := EventAtGPS(ctx, client, 1187008882, 0)
	if err != nil {
		t.Fatalf("EventAtGPS failed: %v", err)
	}
	if name != "GW170817" {
		t.Errorf("EventAtGPS = %s, want GW170817", name)
	}

	// wider tolerance matches the first entry in server order
	name, err = EventAtGPS(ctx, client, 1126259460, 5)
	if err != nil {
		t.Fatalf("EventAtGPS failed: %v", err)
	}
	if name != "GW150914" {
		t.Errorf("EventAtGPS = %s, want GW150914", name)
	}

	if _, err := EventAtGPS(ctx, client, 123456, 0); !gwoscerrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestEventDetectors(t *testing.T) {
	client := newFixture(t)

	dets, err := EventDetectors(context.Background(), client, "GW170817")
	if err != nil {
		t.Fatalf("EventDetectors failed: %v", err)
	}
	if !reflect.DeepEqual(dets, []string{"H1", "L1", "V1"}) {
		t.Errorf("EventDetectors = %v", dets)
	}
}

func TestRunSegment(t *testing.T) {
	client := newFixture(t)

	seg, err := RunSegment(context.Background(), client, "S6")
	if err != nil {
		t.Fatalf("RunSegment failed: %v", err)
	}
	if seg != segments.New(931035615, 971622015) {
		t.Errorf("RunSegment = %v", seg)
	}

	_, err = RunSegment(context.Background(), client, "S99")
	if !gwoscerrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRunAtGPS(t *testing.T) {
	client := newFixture(t)
	ctx := context.Background()

	name, err := RunAtGPS(ctx, client, 968650000)
	if err != nil {
		t.Fatalf("RunAtGPS failed: %v", err)
	}
	if name != "S6" {
		t.Errorf("RunAtGPS = %s, want S6", name)
	}

	// overlapping runs resolve to the first in server order
	name, err = RunAtGPS(ctx, client, 1126052000)
	if err != nil {
		t.Fatalf("RunAtGPS failed: %v", err)
	}
	if name != "O1" {
		t.Errorf("RunAtGPS = %s, want O1", name)
	}

	if _, err := RunAtGPS(ctx, client, 1); !gwoscerrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestTypeOf(t *testing.T) {
	client := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		dataset string
		want    Type
	}{
		{"S6", TypeRun},
		{"GWTC-1-confident", TypeCatalog},
		{"GW150914", TypeEvent},
		{"GW150914-v1", TypeEvent},
	}

	for _, tt := range tests {
		got, err := TypeOf(ctx, client, tt.dataset)
		if err != nil {
			t.Fatalf("TypeOf(%s) failed: %v", tt.dataset, err)
		}
		if got != tt.want {
			t.Errorf("TypeOf(%s) = %s, want %s", tt.dataset, got, tt.want)
		}
	}

	if _, err := TypeOf(ctx, client, "junk"); !gwoscerrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
