package api

import (
	"context"

	"github.com/gwopen/gwosc/pkg/segments"
)

// timelineResponse is the payload of the Timeline segment endpoint.
type timelineResponse struct {
	Segments []segments.Segment `json:"segments"`
}

// TimelineSegments fetches the [start, end) segments of a Timeline flag
// hosted by the given run dataset, over the GPS window [start, end).
// Segments come back as the server lists them: sorted and disjoint.
func (c *Client) TimelineSegments(ctx context.Context, dataset, flag string, start, end int64) ([]segments.Segment, error) {
	var resp timelineResponse
	if err := c.FetchJSON(ctx, c.TimelineURL(dataset, flag, start, end), &resp); err != nil {
		return nil, err
	}
	return resp.Segments, nil
}
