package cupi

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ListSchedules returns all schedules on the server
func (c *Client) ListSchedules(ctx context.Context, opts *ListOptions) ([]Schedule, error) {
	log.Debug().Msg("Listing schedules")

	var coll scheduleCollection
	url := listQuery(BuildSchedulesURL(c.baseURL), opts)
	if err := c.get(ctx, url, &coll, "list schedules"); err != nil {
		return nil, err
	}

	return coll.Schedules, nil
}

// ListScheduleRefs returns name/ObjectId pairs for all schedules
func (c *Client) ListScheduleRefs(ctx context.Context) ([]Ref, error) {
	schedules, err := c.ListSchedules(ctx, nil)
	if err != nil {
		return nil, err
	}

	refs := make([]Ref, 0, len(schedules))
	for _, s := range schedules {
		refs = append(refs, s.Ref())
	}

	return refs, nil
}

// GetSchedule retrieves a single schedule by ObjectId
func (c *Client) GetSchedule(ctx context.Context, objectID string) (*Schedule, error) {
	var schedule Schedule
	url := BuildVMRestURL(c.baseURL, "/schedules/"+objectID)
	if err := c.get(ctx, url, &schedule, "get schedule"); err != nil {
		return nil, err
	}

	return &schedule, nil
}

// UpdateSchedule changes the display name of a schedule
func (c *Client) UpdateSchedule(ctx context.Context, objectID, displayName string) error {
	body := map[string]string{
		"DisplayName": displayName,
	}
	url := BuildVMRestURL(c.baseURL, "/schedules/"+objectID)
	return c.do(ctx, http.MethodPut, url, body, nil, "update schedule")
}

// ListScheduleSets returns all schedule sets on the server
func (c *Client) ListScheduleSets(ctx context.Context, opts *ListOptions) ([]ScheduleSet, error) {
	log.Debug().Msg("Listing schedule sets")

	var coll scheduleSetCollection
	url := listQuery(BuildScheduleSetsURL(c.baseURL), opts)
	if err := c.get(ctx, url, &coll, "list schedule sets"); err != nil {
		return nil, err
	}

	return coll.ScheduleSets, nil
}

// ListScheduleSetRefs returns name/ObjectId pairs for all schedule sets
func (c *Client) ListScheduleSetRefs(ctx context.Context) ([]Ref, error) {
	sets, err := c.ListScheduleSets(ctx, nil)
	if err != nil {
		return nil, err
	}

	refs := make([]Ref, 0, len(sets))
	for _, s := range sets {
		refs = append(refs, s.Ref())
	}

	return refs, nil
}

// GetScheduleSet retrieves a single schedule set by ObjectId
func (c *Client) GetScheduleSet(ctx context.Context, objectID string) (*ScheduleSet, error) {
	var set ScheduleSet
	url := BuildVMRestURL(c.baseURL, "/schedulesets/"+objectID)
	if err := c.get(ctx, url, &set, "get schedule set"); err != nil {
		return nil, err
	}

	return &set, nil
}

// AddSchedule creates a schedule via a new schedule set owned by the
// given location. CUPI creates schedules through schedule sets; the
// returned ObjectId identifies the new set.
func (c *Client) AddSchedule(ctx context.Context, displayName, ownerLocationObjectID string) (string, error) {
	log.Debug().Str("display_name", displayName).Msg("Adding schedule")

	body := map[string]string{
		"DisplayName":           displayName,
		"OwnerLocationObjectId": ownerLocationObjectID,
	}

	url := BuildScheduleSetsURL(c.baseURL)
	objectID, err := c.doForObjectID(ctx, http.MethodPost, url, body, "add schedule")
	if err != nil {
		return "", err
	}

	log.Debug().Str("object_id", objectID).Msg("Schedule added")
	return objectID, nil
}

// DeleteScheduleSet removes a schedule set by ObjectId
func (c *Client) DeleteScheduleSet(ctx context.Context, objectID string) error {
	log.Debug().Str("object_id", objectID).Msg("Deleting schedule set")

	url := BuildVMRestURL(c.baseURL, "/schedulesets/"+objectID)
	return c.do(ctx, http.MethodDelete, url, nil, nil, "delete schedule set")
}
