// Package apps calls the ISteamApps interface.
package apps

import (
	"context"

	"github.com/escrow-tf/steamweb/api"
)

const Interface = "ISteamApps"

var UpToDateCheckEndpoint = api.Endpoint{Interface: Interface, Method: "UpToDateCheck", Version: 1}

type upToDateCheckParams struct {
	AppID   uint32 `schema:"appid"`
	Version uint32 `schema:"version"`
}

// UpToDateCheck reports whether a client version is current. RequiredVersion
// and Message are only set when it is not.
type UpToDateCheck struct {
	Success         bool   `json:"success"`
	UpToDate        bool   `json:"up_to_date"`
	VersionIsListed bool   `json:"version_is_listed"`
	RequiredVersion uint32 `json:"required_version"`
	Message         string `json:"message"`
}

type Client struct {
	Transport api.Transport
}

func NewClient(transport api.Transport) *Client {
	return &Client{Transport: transport}
}

func (c *Client) UpToDateCheck(ctx context.Context, appID, version uint32) (*UpToDateCheck, error) {
	return api.Call[UpToDateCheck](ctx, c.Transport, api.MethodRequest{
		Method: UpToDateCheckEndpoint,
		Input:  upToDateCheckParams{AppID: appID, Version: version},
	})
}
