package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gwopen/gwosc/internal/mockarchive"
	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
	"github.com/gwopen/gwosc/pkg/httpclient"
)

// newFixture starts a fake archive and a client pointed at it.
func newFixture(t *testing.T) (*mockarchive.Server, *Client) {
	t.Helper()

	server := mockarchive.New()
	t.Cleanup(server.Close)

	client, err := New(WithHost(server.URL))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return server, client
}

func TestNew_Defaults(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if client.Host() != DefaultHost {
		t.Errorf("unexpected default host: %s", client.Host())
	}
	if client.Logger() == nil {
		t.Error("expected a default logger")
	}
}

func TestNew_OptionErrors(t *testing.T) {
	if _, err := New(WithHost("")); err == nil {
		t.Error("expected error for empty host")
	}

	badHTTP := httpclient.DefaultConfig()
	badHTTP.Timeout = 0
	if _, err := New(WithHTTPConfig(badHTTP)); err == nil {
		t.Error("expected error for invalid http config")
	}
}

func TestFetchJSON_CachesByURL(t *testing.T) {
	server, client := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := client.DatasetIndex(ctx, 0, MaxGPS); err != nil {
			t.Fatalf("DatasetIndex failed: %v", err)
		}
	}

	if got := server.Requests("/archive/0/99999999999/json/"); got != 1 {
		t.Errorf("expected 1 request, got %d", got)
	}
}

func TestFetch_NotFound(t *testing.T) {
	_, client := newFixture(t)

	_, err := client.RunManifest(context.Background(), "NOPE", "H1", 0, 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if !gwoscerrors.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestFetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cfg := httpclient.DefaultConfig()
	cfg.RetryAttempts = 0

	client, err := New(WithHost(server.URL), WithHTTPConfig(cfg))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, fetchErr := client.DatasetIndex(context.Background(), 0, MaxGPS)
	if fetchErr == nil {
		t.Fatal("expected error")
	}
	if !gwoscerrors.IsServer(fetchErr) {
		t.Errorf("expected ServerError, got %T: %v", fetchErr, fetchErr)
	}
}

func TestDatasetIndex_PreservesOrderAndNulls(t *testing.T) {
	_, client := newFixture(t)

	index, err := client.DatasetIndex(context.Background(), 0, MaxGPS)
	if err != nil {
		t.Fatalf("DatasetIndex failed: %v", err)
	}

	wantRuns := []string{"tenyear", "history", "S6", "O1", "O1_16KHZ"}
	if len(index.Runs) != len(wantRuns) {
		t.Fatalf("expected %d runs, got %d", len(wantRuns), len(index.Runs))
	}
	for i, name := range wantRuns {
		if index.Runs[i].Name != name {
			t.Errorf("run %d = %s, want %s", i, index.Runs[i].Name, name)
		}
	}

	// null bodies stay nil
	if index.Runs[0].Meta != nil {
		t.Error("tenyear should carry no metadata")
	}

	meta, ok := index.Run("S6")
	if !ok {
		t.Fatal("S6 should resolve")
	}
	if meta.GPSStart != 931035615 || meta.GPSEnd != 971622015 {
		t.Errorf("unexpected S6 interval: %+v", meta)
	}

	if len(index.Events) != 1 || index.Events[0].Name != "GW150914" {
		t.Errorf("unexpected events: %+v", index.Events)
	}
	if index.Events[0].Meta.GPSTime != 1126259462.4 {
		t.Errorf("unexpected GPS time: %v", index.Events[0].Meta.GPSTime)
	}
}

func TestRunManifest(t *testing.T) {
	_, client := newFixture(t)

	manifest, err := client.RunManifest(context.Background(), "S6", "L1", 968650000, 968660000)
	if err != nil {
		t.Fatalf("RunManifest failed: %v", err)
	}
	if manifest.Dataset != "S6" {
		t.Errorf("unexpected dataset: %s", manifest.Dataset)
	}
	if len(manifest.Strain) != 6 {
		t.Errorf("expected 6 strain files, got %d", len(manifest.Strain))
	}
	if manifest.Strain[0].Detector != "L1" || manifest.Strain[0].SampleRate != 4096 {
		t.Errorf("unexpected first file: %+v", manifest.Strain[0])
	}
}

func TestTimelineSegments(t *testing.T) {
	_, client := newFixture(t)

	segs, err := client.TimelineSegments(context.Background(), "S6", "L1_DATA", 931035615, 931135615)
	if err != nil {
		t.Fatalf("TimelineSegments failed: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Start != 931040000 || segs[0].End != 931050000 {
		t.Errorf("unexpected first segment: %v", segs[0])
	}
}

func TestTimelineURL_UsesDuration(t *testing.T) {
	client, err := New(WithHost("https://archive.test"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := client.TimelineURL("O1", "H1_DATA", 1126051217, 1126151217)
	want := "https://archive.test/timeline/segments/json/O1/H1_DATA/1126051217/100000/"
	if got != want {
		t.Errorf("TimelineURL = %s, want %s", got, want)
	}
}
