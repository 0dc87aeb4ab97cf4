package api

import (
	"context"
)

// CatalogList fetches the list of event catalogs published by the
// archive, keyed by catalog short name.
func (c *Client) CatalogList(ctx context.Context) (map[string]CatalogSummary, error) {
	var list map[string]CatalogSummary
	if err := c.FetchJSON(ctx, c.eventAPIURL(false), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Catalog fetches the event datasets of a single catalog, preserving
// server ordering.
func (c *Client) Catalog(ctx context.Context, catalog string) (*EventList, error) {
	url := c.catalogURL(catalog)
	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseEventList(body, url)
}
