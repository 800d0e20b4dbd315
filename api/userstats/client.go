// Package userstats calls the ISteamUserStats interface.
package userstats

import (
	"context"

	"github.com/escrow-tf/steamweb/api"
	"github.com/escrow-tf/steamweb/steamlang"
)

const Interface = "ISteamUserStats"

var GetNumberOfCurrentPlayersEndpoint = api.Endpoint{
	Interface: Interface,
	Method:    "GetNumberOfCurrentPlayers",
	Version:   1,
}

type getNumberOfCurrentPlayersParams struct {
	AppID uint32 `schema:"appid"`
}

type CurrentPlayers struct {
	PlayerCount uint32            `json:"player_count"`
	Result      steamlang.EResult `json:"result"`
}

type Client struct {
	Transport api.Transport
}

func NewClient(transport api.Transport) *Client {
	return &Client{Transport: transport}
}

// GetNumberOfCurrentPlayers returns how many players are in appID right now.
// Steam answers an unknown app with 404, reported as a transport error.
func (c *Client) GetNumberOfCurrentPlayers(ctx context.Context, appID uint32) (*CurrentPlayers, error) {
	return api.Call[CurrentPlayers](ctx, c.Transport, api.MethodRequest{
		Method: GetNumberOfCurrentPlayersEndpoint,
		Input:  getNumberOfCurrentPlayersParams{AppID: appID},
	})
}
