package cupi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

// ListUsers returns all users on the server
func (c *Client) ListUsers(ctx context.Context, opts *ListOptions) ([]User, error) {
	log.Debug().Msg("Listing users")

	var coll userCollection
	reqURL := listQuery(BuildUsersURL(c.baseURL), opts)
	if err := c.get(ctx, reqURL, &coll, "list users"); err != nil {
		return nil, err
	}

	return coll.Users, nil
}

// GetUser retrieves a single user by ObjectId
func (c *Client) GetUser(ctx context.Context, objectID string) (*User, error) {
	var user User
	reqURL := BuildVMRestURL(c.baseURL, "/users/"+objectID)
	if err := c.get(ctx, reqURL, &user, "get user"); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserCallHandlerObjectID returns the ObjectId of the call handler
// assigned to a user.
func (c *Client) GetUserCallHandlerObjectID(ctx context.Context, userObjectID string) (string, error) {
	user, err := c.GetUser(ctx, userObjectID)
	if err != nil {
		return "", err
	}

	return user.CallHandlerObjectID, nil
}

// ListUserTemplates returns alias/ObjectId pairs for the user
// templates on the server. Templates are referenced when adding users.
func (c *Client) ListUserTemplates(ctx context.Context) ([]Ref, error) {
	log.Debug().Msg("Listing user templates")

	var coll userTemplateCollection
	reqURL := BuildUserTemplatesURL(c.baseURL)
	if err := c.get(ctx, reqURL, &coll, "list user templates"); err != nil {
		return nil, err
	}

	refs := make([]Ref, 0, len(coll.Templates))
	for _, t := range coll.Templates {
		refs = append(refs, t.Ref())
	}

	return refs, nil
}

// AddUser creates a user from a template. The extension becomes the
// user's DtmfAccessId. Returns the new user's ObjectId.
func (c *Client) AddUser(ctx context.Context, alias, extension, templateAlias string) (string, error) {
	log.Debug().Str("alias", alias).Str("template", templateAlias).Msg("Adding user")

	body := map[string]string{
		"Alias":        alias,
		"DtmfAccessId": extension,
	}

	reqURL := BuildUsersURL(c.baseURL) + "?" + url.Values{"templateAlias": {templateAlias}}.Encode()
	objectID, err := c.doForObjectID(ctx, http.MethodPost, reqURL, body, "add user")
	if err != nil {
		return "", err
	}

	log.Debug().Str("object_id", objectID).Msg("User added")
	return objectID, nil
}

// DeleteUser removes a user by ObjectId
func (c *Client) DeleteUser(ctx context.Context, objectID string) error {
	log.Debug().Str("object_id", objectID).Msg("Deleting user")

	reqURL := BuildVMRestURL(c.baseURL, "/users/"+objectID)
	return c.do(ctx, http.MethodDelete, reqURL, nil, nil, "delete user")
}
