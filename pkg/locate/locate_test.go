package locate

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/gwopen/gwosc/internal/mockarchive"
	"github.com/gwopen/gwosc/pkg/api"
	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
)

func newFixture(t *testing.T) *api.Client {
	t.Helper()

	server := mockarchive.New()
	t.Cleanup(server.Close)

	client, err := api.New(api.WithHost(server.URL))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestURLs_EventDataset(t *testing.T) {
	client := newFixture(t)

	// a window around GW150914 resolves to event files, with the
	// confident catalog release ahead of later revisions
	urls, err := URLs(context.Background(), client, "H1", 1126259446, 1126259478, Options{})
	if err != nil {
		t.Fatalf("URLs failed: %v", err)
	}

	want := []string{"https://example.org/events/H-H1_LOSC_4_V1-1126257414-4096.hdf5"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("URLs = %v, want %v", urls, want)
	}
}

func TestURLs_RunFallback(t *testing.T) {
	client := newFixture(t)

	// no event covers S6 times, so the run archive serves the window
	urls, err := URLs(context.Background(), client, "L1", 968650000, 968660000, Options{})
	if err != nil {
		t.Fatalf("URLs failed: %v", err)
	}

	want := []string{
		"https://example.org/archive/S6/L-L1_LOSC_4_V1-968646656-4096.hdf5",
		"https://example.org/archive/S6/L-L1_LOSC_4_V1-968650752-4096.hdf5",
		"https://example.org/archive/S6/L-L1_LOSC_4_V1-968654848-4096.hdf5",
		"https://example.org/archive/S6/L-L1_LOSC_4_V1-968658944-4096.hdf5",
	}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("URLs = %v, want %v", urls, want)
	}
}

func TestURLs_ExplicitDataset(t *testing.T) {
	client := newFixture(t)
	ctx := context.Background()

	t.Run("run", func(t *testing.T) {
		urls, err := URLs(ctx, client, "L1", 968650000, 968660000, Options{Dataset: "S6"})
		if err != nil {
			t.Fatalf("URLs failed: %v", err)
		}
		if len(urls) != 4 {
			t.Errorf("expected 4 urls, got %d: %v", len(urls), urls)
		}
	})

	t.Run("event by common name", func(t *testing.T) {
		urls, err := URLs(ctx, client, "H1", 1126259446, 1126259478, Options{Dataset: "GW150914"})
		if err != nil {
			t.Fatalf("URLs failed: %v", err)
		}

		// the common name resolves to the highest version
		want := []string{
			"https://example.org/events/H-H1_GWOSC_4KHZ_R3-1126257415-4096.hdf5",
			"https://example.org/events/H-H1_GWOSC_4KHZ_R3-1126259447-32.hdf5",
		}
		if !reflect.DeepEqual(urls, want) {
			t.Errorf("URLs = %v, want %v", urls, want)
		}
	})

	t.Run("catalog is rejected", func(t *testing.T) {
		_, err := URLs(ctx, client, "H1", 0, 1, Options{Dataset: "GWTC-1-confident"})
		if !gwoscerrors.IsValidation(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestURLs_NoCoverage(t *testing.T) {
	client := newFixture(t)

	_, err := URLs(context.Background(), client, "H1", 0, 100, Options{})
	if !gwoscerrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if !strings.Contains(err.Error(), "covering [0, 100)") {
		t.Errorf("expected the window in the message, got: %v", err)
	}
}

func TestRunURLs_Sieve(t *testing.T) {
	client := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			"defaults drop other rates and formats",
			Options{},
			[]string{
				"https://example.org/archive/S6/L-L1_LOSC_4_V1-968646656-4096.hdf5",
				"https://example.org/archive/S6/L-L1_LOSC_4_V1-968650752-4096.hdf5",
				"https://example.org/archive/S6/L-L1_LOSC_4_V1-968654848-4096.hdf5",
				"https://example.org/archive/S6/L-L1_LOSC_4_V1-968658944-4096.hdf5",
			},
		},
		{
			"16 kHz",
			Options{SampleRate: 16384},
			[]string{"https://example.org/archive/S6/L-L1_LOSC_16_V1-968646656-4096.hdf5"},
		},
		{
			"gwf",
			Options{Format: "gwf"},
			[]string{"https://example.org/archive/S6/L-L1_LOSC_4_V1-968646656-4096.gwf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urls, err := RunURLs(ctx, client, "S6", "L1", 968646656, 968663040, tt.opts)
			if err != nil {
				t.Fatalf("RunURLs failed: %v", err)
			}
			if !reflect.DeepEqual(urls, tt.want) {
				t.Errorf("RunURLs = %v, want %v", urls, tt.want)
			}
		})
	}
}

func TestEventURLs(t *testing.T) {
	client := newFixture(t)
	ctx := context.Background()

	t.Run("detector filter", func(t *testing.T) {
		urls, err := EventURLs(ctx, client, "GW170817", EventOptions{Detector: "V1"})
		if err != nil {
			t.Fatalf("EventURLs failed: %v", err)
		}
		want := []string{"https://example.org/events/V-V1_GWOSC_4KHZ_R3-1187006835-4096.hdf5"}
		if !reflect.DeepEqual(urls, want) {
			t.Errorf("EventURLs = %v, want %v", urls, want)
		}
	})

	t.Run("all detectors", func(t *testing.T) {
		urls, err := EventURLs(ctx, client, "GW170817", EventOptions{})
		if err != nil {
			t.Fatalf("EventURLs failed: %v", err)
		}
		if len(urls) != 3 {
			t.Errorf("expected 3 urls, got %d: %v", len(urls), urls)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := EventURLs(ctx, client, "GW000000", EventOptions{})
		if !gwoscerrors.IsNotFound(err) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}
