package api

import (
	"fmt"
)

// archiveURL returns the dataset-index endpoint for a GPS window.
func (c *Client) archiveURL(start, end int64) string {
	return fmt.Sprintf("%s/archive/%d/%d/json/", c.host, start, end)
}

// runURL returns the strain-manifest endpoint for a run and detector.
func (c *Client) runURL(run, detector string, start, end int64) string {
	return fmt.Sprintf("%s/archive/links/%s/%s/%d/%d/json/", c.host, run, detector, start, end)
}

// eventAPIURL returns the event API root, full or brief.
func (c *Client) eventAPIURL(full bool) string {
	j := "json"
	if full {
		j = "jsonfull"
	}
	return fmt.Sprintf("%s/eventapi/%s/", c.host, j)
}

// catalogURL returns the endpoint for a single event catalog.
func (c *Client) catalogURL(catalog string) string {
	return c.eventAPIURL(false) + catalog + "/"
}

// allEventsURL returns the allevents endpoint, full or brief.
func (c *Client) allEventsURL(full bool) string {
	return c.eventAPIURL(full) + "allevents/"
}

// legacyCatalogURL returns the legacy filelist endpoint for a catalog.
func (c *Client) legacyCatalogURL(catalog string) string {
	return fmt.Sprintf("%s/catalog/%s/filelist/", c.host, catalog)
}

// TimelineURL returns the Timeline segment endpoint for a hosting dataset,
// flag name, and GPS window. The final path component is the window
// duration, not the end time.
func (c *Client) TimelineURL(dataset, flag string, start, end int64) string {
	return fmt.Sprintf("%s/timeline/segments/json/%s/%s/%d/%d/", c.host, dataset, flag, start, end-start)
}
