// Package user calls the ISteamUser interface.
package user

import (
	"context"

	"github.com/escrow-tf/steamweb/api"
	"github.com/escrow-tf/steamweb/steamid"
	"github.com/escrow-tf/steamweb/steamlang"
)

const Interface = "ISteamUser"

var (
	GetPlayerSummariesEndpoint = api.Endpoint{Interface: Interface, Method: "GetPlayerSummaries", Version: 2}
	ResolveVanityURLEndpoint   = api.Endpoint{Interface: Interface, Method: "ResolveVanityURL", Version: 1}
)

type PersonaState int

//goland:noinspection GoUnusedConst
const (
	OfflinePersonaState PersonaState = iota
	OnlinePersonaState
	BusyPersonaState
	AwayPersonaState
	SnoozePersonaState
	LookingToTradePersonaState
	LookingToPlayPersonaState
)

type VisibilityState int

//goland:noinspection GoUnusedConst
const (
	PrivateVisibilityState     VisibilityState = 1
	FriendsOnlyVisibilityState VisibilityState = 2
	PublicVisibilityState      VisibilityState = 3
)

// PlayerSummary is a public profile. Fields after the avatars are only
// returned for public profiles or when Steam chooses to include them.
type PlayerSummary struct {
	SteamID                  steamid.SteamID `json:"steamid"`
	CommunityVisibilityState VisibilityState `json:"communityvisibilitystate"`
	ProfileState             int             `json:"profilestate"`
	PersonaName              string          `json:"personaname"`
	ProfileURL               string          `json:"profileurl"`
	Avatar                   string          `json:"avatar"`
	AvatarMedium             string          `json:"avatarmedium"`
	AvatarFull               string          `json:"avatarfull"`
	AvatarHash               string          `json:"avatarhash"`
	LastLogoff               int64           `json:"lastlogoff"`
	PersonaState             PersonaState    `json:"personastate"`
	CommentPermission        int             `json:"commentpermission"`
	RealName                 string          `json:"realname"`
	PrimaryClanID            string          `json:"primaryclanid"`
	TimeCreated              int64           `json:"timecreated"`
	PersonaStateFlags        int             `json:"personastateflags"`
	GameExtraInfo            string          `json:"gameextrainfo"`
	GameID                   string          `json:"gameid"`
	CountryCode              string          `json:"loccountrycode"`
	StateCode                string          `json:"locstatecode"`
	CityID                   int             `json:"loccityid"`
}

type PlayerSummaries struct {
	Players []PlayerSummary `json:"players"`
}

type getPlayerSummariesParams struct {
	SteamIDs steamid.Collection `schema:"steamids"`
}

type UrlType int

//goland:noinspection GoUnusedConst
const (
	IndividualUrlType UrlType = 1
	GroupUrlType      UrlType = 2
	GameGroupUrlType  UrlType = 3
)

type ResolveVanityURLOptions struct {
	// UrlType defaults to IndividualUrlType.
	UrlType *UrlType `schema:"url_type,omitempty"`
}

type resolveVanityURLParams struct {
	VanityURL string   `schema:"vanityurl"`
	UrlType   *UrlType `schema:"url_type,omitempty"`
}

// ResolvedVanityURL carries SteamID when Success is OK and a Message such as
// "No match" otherwise.
type ResolvedVanityURL struct {
	SteamID steamid.SteamID   `json:"steamid"`
	Success steamlang.EResult `json:"success"`
	Message string            `json:"message"`
}

func (r *ResolvedVanityURL) Found() bool {
	return r.Success == steamlang.OKResult
}

type Client struct {
	Transport api.Transport
}

func NewClient(transport api.Transport) *Client {
	return &Client{Transport: transport}
}

// GetPlayerSummaries returns the profiles of up to 100 accounts. Unknown
// accounts are left out of the result.
func (c *Client) GetPlayerSummaries(ctx context.Context, steamIDs ...steamid.SteamID) (*PlayerSummaries, error) {
	return api.Call[PlayerSummaries](ctx, c.Transport, api.MethodRequest{
		Method: GetPlayerSummariesEndpoint,
		Input:  getPlayerSummariesParams{SteamIDs: steamIDs},
	})
}

// ResolveVanityURL looks up the account behind a custom profile URL. A
// vanity name with no match is not an error; check Found.
func (c *Client) ResolveVanityURL(
	ctx context.Context,
	vanityURL string,
	options *ResolveVanityURLOptions,
) (*ResolvedVanityURL, error) {
	params := resolveVanityURLParams{VanityURL: vanityURL}
	if options != nil {
		params.UrlType = options.UrlType
	}

	return api.Call[ResolvedVanityURL](ctx, c.Transport, api.MethodRequest{
		Method: ResolveVanityURLEndpoint,
		Input:  params,
	})
}
