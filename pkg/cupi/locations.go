package cupi

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// GetOwnerLocationObjectID returns the ObjectId of the server's own
// connection location. Schedules and schedule sets are created against
// this location.
func (c *Client) GetOwnerLocationObjectID(ctx context.Context) (string, error) {
	locations, err := c.ListConnectionLocations(ctx)
	if err != nil {
		return "", err
	}

	if len(locations) == 0 {
		return "", fmt.Errorf("no connection locations found")
	}

	return locations[0].ObjectID, nil
}

// ListConnectionLocations returns the connection locations known to
// the server. A standalone node reports exactly one.
func (c *Client) ListConnectionLocations(ctx context.Context) ([]ConnectionLocation, error) {
	log.Debug().Msg("Listing connection locations")

	var coll connectionLocationCollection
	url := BuildConnectionLocationsURL(c.baseURL)
	if err := c.get(ctx, url, &coll, "list connection locations"); err != nil {
		return nil, err
	}

	return coll.Locations, nil
}
