package api

import (
	"context"
	"strings"
	"testing"

	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
)

func TestAllEvents_Brief(t *testing.T) {
	server, client := newFixture(t)

	list, err := client.AllEvents(context.Background(), FullBrief)
	if err != nil {
		t.Fatalf("AllEvents failed: %v", err)
	}

	wantKeys := []string{"GW150914-v1", "GW150914-v3", "GW170814-v2", "GW170817-v3"}
	if len(list.Entries) != len(wantKeys) {
		t.Fatalf("expected %d entries, got %d", len(wantKeys), len(list.Entries))
	}
	for i, key := range wantKeys {
		if list.Entries[i].Key != key {
			t.Errorf("entry %d = %s, want %s", i, list.Entries[i].Key, key)
		}
	}

	// brief view carries no strain
	if len(list.Entries[0].Meta.Strain) != 0 {
		t.Error("brief view should carry no strain manifests")
	}
	if server.Requests("/eventapi/jsonfull/allevents/") != 0 {
		t.Error("brief query should not touch the full view")
	}
}

func TestAllEvents_Full(t *testing.T) {
	_, client := newFixture(t)

	list, err := client.AllEvents(context.Background(), FullAll)
	if err != nil {
		t.Fatalf("AllEvents failed: %v", err)
	}

	meta, ok := list.Get("GW150914-v3")
	if !ok {
		t.Fatal("GW150914-v3 should resolve")
	}
	if len(meta.Strain) != 4 {
		t.Errorf("expected 4 strain files, got %d", len(meta.Strain))
	}
}

func TestAllEvents_AutoPrefersCachedFull(t *testing.T) {
	server, client := newFixture(t)
	ctx := context.Background()

	// auto before any fetch uses the brief view
	if _, err := client.AllEvents(ctx, FullAuto); err != nil {
		t.Fatalf("AllEvents failed: %v", err)
	}
	if server.Requests("/eventapi/json/allevents/") != 1 {
		t.Error("expected a brief fetch")
	}

	// once the full view is cached, auto reuses it without refetching
	if _, err := client.AllEvents(ctx, FullAll); err != nil {
		t.Fatalf("AllEvents failed: %v", err)
	}
	if _, err := client.AllEvents(ctx, FullAuto); err != nil {
		t.Fatalf("AllEvents failed: %v", err)
	}
	if got := server.Requests("/eventapi/jsonfull/allevents/"); got != 1 {
		t.Errorf("expected 1 full fetch, got %d", got)
	}
}

func TestResolveEvent(t *testing.T) {
	_, client := newFixture(t)
	ctx := context.Background()

	t.Run("common name picks highest version", func(t *testing.T) {
		entry, err := client.ResolveEvent(ctx, "GW150914", EventQuery{})
		if err != nil {
			t.Fatalf("ResolveEvent failed: %v", err)
		}
		if entry.Key != "GW150914-v3" {
			t.Errorf("expected GW150914-v3, got %s", entry.Key)
		}
	})

	t.Run("versioned key", func(t *testing.T) {
		entry, err := client.ResolveEvent(ctx, "GW150914-v1", EventQuery{})
		if err != nil {
			t.Fatalf("ResolveEvent failed: %v", err)
		}
		if entry.Meta.Version != 1 {
			t.Errorf("expected version 1, got %d", entry.Meta.Version)
		}
	})

	t.Run("version filter", func(t *testing.T) {
		entry, err := client.ResolveEvent(ctx, "GW150914", EventQuery{Version: 1})
		if err != nil {
			t.Fatalf("ResolveEvent failed: %v", err)
		}
		if entry.Key != "GW150914-v1" {
			t.Errorf("expected GW150914-v1, got %s", entry.Key)
		}
	})

	t.Run("catalog filter", func(t *testing.T) {
		entry, err := client.ResolveEvent(ctx, "GW150914", EventQuery{Catalog: "GWTC-1-confident"})
		if err != nil {
			t.Fatalf("ResolveEvent failed: %v", err)
		}
		if entry.Key != "GW150914-v1" {
			t.Errorf("expected GW150914-v1, got %s", entry.Key)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := client.ResolveEvent(ctx, "GW000000", EventQuery{})
		if !gwoscerrors.IsNotFound(err) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("catalog mismatch names the catalog", func(t *testing.T) {
		_, err := client.ResolveEvent(ctx, "GW170817", EventQuery{Catalog: "GWTC-2"})
		if !gwoscerrors.IsNotFound(err) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if !strings.Contains(err.Error(), `catalog "GWTC-2"`) {
			t.Errorf("expected catalog in message, got: %v", err)
		}
	})

	t.Run("version mismatch names the version", func(t *testing.T) {
		_, err := client.ResolveEvent(ctx, "GW170817", EventQuery{Version: 9})
		if !gwoscerrors.IsNotFound(err) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if !strings.Contains(err.Error(), "version 9") {
			t.Errorf("expected version in message, got: %v", err)
		}
	})
}

func TestEventJSON(t *testing.T) {
	_, client := newFixture(t)

	list, err := client.EventJSON(context.Background(), "GW150914", EventQuery{Version: 1})
	if err != nil {
		t.Fatalf("EventJSON failed: %v", err)
	}

	meta, ok := list.Get("GW150914-v1")
	if !ok {
		t.Fatal("expected GW150914-v1 in payload")
	}
	if len(meta.Strain) != 1 {
		t.Errorf("expected 1 strain file, got %d", len(meta.Strain))
	}
}

func TestCatalogList(t *testing.T) {
	_, client := newFixture(t)

	list, err := client.CatalogList(context.Background())
	if err != nil {
		t.Fatalf("CatalogList failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 catalogs, got %d", len(list))
	}
	if list["GWTC-1-confident"].Description == "" {
		t.Error("expected a description")
	}
}

func TestCatalog(t *testing.T) {
	_, client := newFixture(t)

	list, err := client.Catalog(context.Background(), "GWTC-1-confident")
	if err != nil {
		t.Fatalf("Catalog failed: %v", err)
	}

	wantKeys := []string{"GW150914-v1", "GW170814-v2", "GW170817-v3"}
	if len(list.Entries) != len(wantKeys) {
		t.Fatalf("expected %d entries, got %d", len(wantKeys), len(list.Entries))
	}
	for i, key := range wantKeys {
		if list.Entries[i].Key != key {
			t.Errorf("entry %d = %s, want %s", i, list.Entries[i].Key, key)
		}
	}
}
