package cupi

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// GetCallHandlerTemplateObjectID returns the ObjectId of the first
// call handler template. Out of the box a server has exactly one.
func (c *Client) GetCallHandlerTemplateObjectID(ctx context.Context) (string, error) {
	templates, err := c.ListCallHandlerTemplates(ctx)
	if err != nil {
		return "", err
	}

	if len(templates) == 0 {
		return "", fmt.Errorf("no call handler templates found")
	}

	return templates[0].ObjectID, nil
}

// ListCallHandlerTemplates returns the call handler templates on the
// server.
func (c *Client) ListCallHandlerTemplates(ctx context.Context) ([]CallHandlerTemplate, error) {
	log.Debug().Msg("Listing call handler templates")

	var coll callHandlerTemplateCollection
	url := BuildCallHandlerTemplatesURL(c.baseURL)
	if err := c.get(ctx, url, &coll, "list call handler templates"); err != nil {
		return nil, err
	}

	return coll.Templates, nil
}
