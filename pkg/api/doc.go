// Package api provides the low-level client for the GWOSC archive REST
// API: typed fetchers for each endpoint, response caching, and event
// resolution across catalogs and data-release versions.
//
// Higher-level queries live in the datasets, locate, and timeline
// packages; they all share a single *api.Client:
//
//	client, err := api.New()
//	if err != nil {
//	    return err
//	}
//	index, err := client.DatasetIndex(ctx, 0, api.MaxGPS)
package api
