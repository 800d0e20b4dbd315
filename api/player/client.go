// Package player calls the IPlayerService interface.
package player

import (
	"context"

	"github.com/escrow-tf/steamweb/api"
	"github.com/escrow-tf/steamweb/steamid"
)

const Interface = "IPlayerService"

var (
	GetOwnedGamesEndpoint             = api.Endpoint{Interface: Interface, Method: "GetOwnedGames", Version: 1}
	GetRecentlyPlayedGamesEndpoint    = api.Endpoint{Interface: Interface, Method: "GetRecentlyPlayedGames", Version: 1}
	GetSteamLevelEndpoint             = api.Endpoint{Interface: Interface, Method: "GetSteamLevel", Version: 1}
	GetBadgesEndpoint                 = api.Endpoint{Interface: Interface, Method: "GetBadges", Version: 1}
	GetCommunityBadgeProgressEndpoint = api.Endpoint{Interface: Interface, Method: "GetCommunityBadgeProgress", Version: 1}
)

type Client struct {
	Transport api.Transport
}

func NewClient(transport api.Transport) *Client {
	return &Client{Transport: transport}
}

type GetOwnedGamesOptions struct {
	// IncludeAppInfo adds names and icons to each game.
	IncludeAppInfo         *bool
	IncludePlayedFreeGames *bool
	IncludeFreeSub         *bool
	SkipUnvettedApps       *bool
	Language               *string
	IncludeExtendedAppInfo *bool
}

type getOwnedGamesParams struct {
	SteamID                steamid.SteamID `schema:"steamid" pb:"1"`
	IncludeAppInfo         *bool           `schema:"include_appinfo,omitempty" pb:"2"`
	IncludePlayedFreeGames *bool           `schema:"include_played_free_games,omitempty" pb:"3"`
	IncludeFreeSub         *bool           `schema:"include_free_sub,omitempty" pb:"5"`
	SkipUnvettedApps       *bool           `schema:"skip_unvetted_apps,omitempty" pb:"6"`
	Language               *string         `schema:"language,omitempty" pb:"7"`
	IncludeExtendedAppInfo *bool           `schema:"include_extended_appinfo,omitempty" pb:"8"`
}

// OwnedGame has a name and icon only when IncludeAppInfo was set. Playtimes
// are in minutes.
type OwnedGame struct {
	AppID                    uint32 `json:"appid"`
	Name                     string `json:"name"`
	ImgIconURL               string `json:"img_icon_url"`
	HasCommunityVisibleStats bool   `json:"has_community_visible_stats"`
	PlaytimeForever          uint32 `json:"playtime_forever"`
	Playtime2Weeks           uint32 `json:"playtime_2weeks"`
	PlaytimeWindowsForever   uint32 `json:"playtime_windows_forever"`
	PlaytimeMacForever       uint32 `json:"playtime_mac_forever"`
	PlaytimeLinuxForever     uint32 `json:"playtime_linux_forever"`
	PlaytimeDeckForever      uint32 `json:"playtime_deck_forever"`
	PlaytimeDisconnected     uint32 `json:"playtime_disconnected"`
	RTimeLastPlayed          int64  `json:"rtime_last_played"`
}

// OwnedGames is empty when the profile's game details are private.
type OwnedGames struct {
	GameCount uint32      `json:"game_count"`
	Games     []OwnedGame `json:"games"`
}

func (c *Client) GetOwnedGames(
	ctx context.Context,
	steamID steamid.SteamID,
	options *GetOwnedGamesOptions,
) (*OwnedGames, error) {
	params := getOwnedGamesParams{SteamID: steamID}
	if options != nil {
		params.IncludeAppInfo = options.IncludeAppInfo
		params.IncludePlayedFreeGames = options.IncludePlayedFreeGames
		params.IncludeFreeSub = options.IncludeFreeSub
		params.SkipUnvettedApps = options.SkipUnvettedApps
		params.Language = options.Language
		params.IncludeExtendedAppInfo = options.IncludeExtendedAppInfo
	}

	return api.Call[OwnedGames](ctx, c.Transport, api.MethodRequest{
		Method: GetOwnedGamesEndpoint,
		Input:  params,
	})
}

type GetRecentlyPlayedGamesOptions struct {
	// Count limits the number of games, all recent games when unset.
	Count *uint32
}

type getRecentlyPlayedGamesParams struct {
	SteamID steamid.SteamID `schema:"steamid" pb:"1"`
	Count   *uint32         `schema:"count,omitempty" pb:"2"`
}

type RecentGame struct {
	AppID                  uint32 `json:"appid"`
	Name                   string `json:"name"`
	Playtime2Weeks         uint32 `json:"playtime_2weeks"`
	PlaytimeForever        uint32 `json:"playtime_forever"`
	ImgIconURL             string `json:"img_icon_url"`
	PlaytimeWindowsForever uint32 `json:"playtime_windows_forever"`
	PlaytimeMacForever     uint32 `json:"playtime_mac_forever"`
	PlaytimeLinuxForever   uint32 `json:"playtime_linux_forever"`
	PlaytimeDeckForever    uint32 `json:"playtime_deck_forever"`
}

type RecentlyPlayedGames struct {
	TotalCount uint32       `json:"total_count"`
	Games      []RecentGame `json:"games"`
}

// GetRecentlyPlayedGames lists games played in the last two weeks.
func (c *Client) GetRecentlyPlayedGames(
	ctx context.Context,
	steamID steamid.SteamID,
	options *GetRecentlyPlayedGamesOptions,
) (*RecentlyPlayedGames, error) {
	params := getRecentlyPlayedGamesParams{SteamID: steamID}
	if options != nil {
		params.Count = options.Count
	}

	return api.Call[RecentlyPlayedGames](ctx, c.Transport, api.MethodRequest{
		Method: GetRecentlyPlayedGamesEndpoint,
		Input:  params,
	})
}

type steamIDParams struct {
	SteamID steamid.SteamID `schema:"steamid" pb:"1"`
}

type SteamLevel struct {
	PlayerLevel uint32 `json:"player_level"`
}

func (c *Client) GetSteamLevel(ctx context.Context, steamID steamid.SteamID) (*SteamLevel, error) {
	return api.Call[SteamLevel](ctx, c.Transport, api.MethodRequest{
		Method: GetSteamLevelEndpoint,
		Input:  steamIDParams{SteamID: steamID},
	})
}

// Badge is either a game badge (AppID set) or a Steam badge.
type Badge struct {
	BadgeID         uint32 `json:"badgeid"`
	AppID           uint32 `json:"appid"`
	Level           uint32 `json:"level"`
	CompletionTime  int64  `json:"completion_time"`
	XP              uint32 `json:"xp"`
	Scarcity        uint32 `json:"scarcity"`
	CommunityItemID string `json:"communityitemid"`
	BorderColor     uint32 `json:"border_color"`
}

type Badges struct {
	Badges                     []Badge `json:"badges"`
	PlayerXP                   uint32  `json:"player_xp"`
	PlayerLevel                uint32  `json:"player_level"`
	PlayerXPNeededToLevelUp    uint32  `json:"player_xp_needed_to_level_up"`
	PlayerXPNeededCurrentLevel uint32  `json:"player_xp_needed_current_level"`
}

func (c *Client) GetBadges(ctx context.Context, steamID steamid.SteamID) (*Badges, error) {
	return api.Call[Badges](ctx, c.Transport, api.MethodRequest{
		Method: GetBadgesEndpoint,
		Input:  steamIDParams{SteamID: steamID},
	})
}

type GetCommunityBadgeProgressOptions struct {
	// BadgeID defaults to the Steam community badge.
	BadgeID *uint32
}

type getCommunityBadgeProgressParams struct {
	SteamID steamid.SteamID `schema:"steamid" pb:"1"`
	BadgeID *uint32         `schema:"badgeid,omitempty" pb:"2"`
}

type Quest struct {
	QuestID   uint32 `json:"questid"`
	Completed bool   `json:"completed"`
}

type BadgeProgress struct {
	Quests []Quest `json:"quests"`
}

func (c *Client) GetCommunityBadgeProgress(
	ctx context.Context,
	steamID steamid.SteamID,
	options *GetCommunityBadgeProgressOptions,
) (*BadgeProgress, error) {
	params := getCommunityBadgeProgressParams{SteamID: steamID}
	if options != nil {
		params.BadgeID = options.BadgeID
	}

	return api.Call[BadgeProgress](ctx, c.Transport, api.MethodRequest{
		Method: GetCommunityBadgeProgressEndpoint,
		Input:  params,
	})
}
