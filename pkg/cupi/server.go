package cupi

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// GetServerInfo retrieves the voice messaging server record and the
// product version in one call.
func (c *Client) GetServerInfo(ctx context.Context) (*ServerInfo, error) {
	log.Debug().Msg("Getting server info")

	server, err := c.getVMSServer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get server record: %w", err)
	}

	version, err := c.GetProductVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get product version: %w", err)
	}

	return &ServerInfo{
		Server:  *server,
		Product: *version,
	}, nil
}

// GetProductVersion retrieves the installed product name and version
func (c *Client) GetProductVersion(ctx context.Context) (*ProductVersion, error) {
	var version ProductVersion
	url := BuildVersionURL(c.baseURL)
	if err := c.get(ctx, url, &version, "get product version"); err != nil {
		return nil, err
	}

	return &version, nil
}

// getVMSServer returns the first voice messaging server node
func (c *Client) getVMSServer(ctx context.Context) (*VMSServer, error) {
	var coll vmsServerCollection
	url := BuildVMSServersURL(c.baseURL)
	if err := c.get(ctx, url, &coll, "get vms servers"); err != nil {
		return nil, err
	}

	if len(coll.Servers) == 0 {
		return nil, fmt.Errorf("no voice messaging servers found")
	}

	return &coll.Servers[0], nil
}

// ListVMSServers returns all voice messaging server nodes, useful on
// clustered deployments.
func (c *Client) ListVMSServers(ctx context.Context) ([]VMSServer, error) {
	var coll vmsServerCollection
	url := BuildVMSServersURL(c.baseURL)
	if err := c.get(ctx, url, &coll, "list vms servers"); err != nil {
		return nil, err
	}

	return coll.Servers, nil
}
