// Package storeservice calls the IStoreService interface.
package storeservice

import (
	"context"

	"github.com/escrow-tf/steamweb/api"
)

const Interface = "IStoreService"

var GetAppListEndpoint = api.Endpoint{Interface: Interface, Method: "GetAppList", Version: 1}

// GetAppListOptions filters the store app list. Nil fields are not sent.
type GetAppListOptions struct {
	// IfModifiedSince limits results to apps modified after this unix time.
	IfModifiedSince *uint32
	// HaveDescriptionLanguage limits results to apps described in this language.
	HaveDescriptionLanguage *string
	// IncludeGames is enabled by Steam when left unset.
	IncludeGames    *bool
	IncludeDLC      *bool
	IncludeSoftware *bool
	IncludeVideos   *bool
	IncludeHardware *bool
	// LastAppID continues a previous listing, see AppList.LastAppID.
	LastAppID *uint32
	// MaxResults defaults to 10,000 and is capped at 50,000 by Steam.
	MaxResults *uint32
}

type getAppListParams struct {
	IfModifiedSince         *uint32 `schema:"if_modified_since,omitempty" pb:"1"`
	HaveDescriptionLanguage *string `schema:"have_description_language,omitempty" pb:"2"`
	IncludeGames            *bool   `schema:"include_games,omitempty" pb:"3"`
	IncludeDLC              *bool   `schema:"include_dlc,omitempty" pb:"4"`
	IncludeSoftware         *bool   `schema:"include_software,omitempty" pb:"5"`
	IncludeVideos           *bool   `schema:"include_videos,omitempty" pb:"6"`
	IncludeHardware         *bool   `schema:"include_hardware,omitempty" pb:"7"`
	LastAppID               *uint32 `schema:"last_appid,omitempty" pb:"8"`
	MaxResults              *uint32 `schema:"max_results,omitempty" pb:"9"`
}

type App struct {
	AppID             uint32 `json:"appid"`
	Name              string `json:"name"`
	LastModified      uint32 `json:"last_modified"`
	PriceChangeNumber uint32 `json:"price_change_number"`
}

type AppList struct {
	Apps            []App `json:"apps"`
	HaveMoreResults bool  `json:"have_more_results"`
	// LastAppID is the continuation token for the next page.
	LastAppID uint32 `json:"last_appid"`
}

type Client struct {
	Transport api.Transport
}

func NewClient(transport api.Transport) *Client {
	return &Client{Transport: transport}
}

// GetAppList lists apps available on the Steam store. options may be nil.
func (c *Client) GetAppList(ctx context.Context, options *GetAppListOptions) (*AppList, error) {
	var params getAppListParams
	if options != nil {
		params = getAppListParams(*options)
	}

	return api.Call[AppList](ctx, c.Transport, api.MethodRequest{
		Method: GetAppListEndpoint,
		Input:  params,
	})
}
