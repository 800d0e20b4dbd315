package main

import (
	"context"
	"fmt"

	"github.com/escrow-tf/steamweb"
	"github.com/escrow-tf/steamweb/api"
	"github.com/escrow-tf/steamweb/api/econ"
	"github.com/escrow-tf/steamweb/api/player"
	"github.com/escrow-tf/steamweb/api/storeservice"
	"github.com/escrow-tf/steamweb/api/user"
	"github.com/escrow-tf/steamweb/steamid"
	"golang.org/x/sync/errgroup"
)

// runContext is bound into every command's Run.
type runContext struct {
	ctx    context.Context
	client *steamweb.Client
	out    *printer
}

type AppsCmd struct {
	ModifiedSince uint32 `help:"Only apps modified after this unix time."`
	Language      string `help:"Only apps with a description in this language."`
	NoGames       bool   `help:"Leave out games."`
	DLC           bool   `help:"Include DLC." name:"dlc"`
	Software      bool   `help:"Include software."`
	Videos        bool   `help:"Include videos and series."`
	Hardware      bool   `help:"Include hardware."`
	LastAppID     uint32 `help:"Continue after this app id." name:"last-appid"`
	MaxResults    uint32 `help:"Number of apps to return." short:"n"`
}

func (c *AppsCmd) options() *storeservice.GetAppListOptions {
	options := &storeservice.GetAppListOptions{}
	if c.ModifiedSince != 0 {
		options.IfModifiedSince = api.Ptr(c.ModifiedSince)
	}
	if c.Language != "" {
		options.HaveDescriptionLanguage = api.Ptr(c.Language)
	}
	if c.NoGames {
		options.IncludeGames = api.Ptr(false)
	}
	if c.DLC {
		options.IncludeDLC = api.Ptr(true)
	}
	if c.Software {
		options.IncludeSoftware = api.Ptr(true)
	}
	if c.Videos {
		options.IncludeVideos = api.Ptr(true)
	}
	if c.Hardware {
		options.IncludeHardware = api.Ptr(true)
	}
	if c.LastAppID != 0 {
		options.LastAppID = api.Ptr(c.LastAppID)
	}
	if c.MaxResults != 0 {
		options.MaxResults = api.Ptr(c.MaxResults)
	}
	return options
}

func (c *AppsCmd) Run(rc *runContext) error {
	appList, err := rc.client.StoreService.GetAppList(rc.ctx, c.options())
	if err != nil {
		return err
	}
	return rc.out.Print(appList)
}

type PlayersCmd struct {
	AppID uint32 `arg:"" help:"App id, e.g. 440."`
}

func (c *PlayersCmd) Run(rc *runContext) error {
	players, err := rc.client.UserStats.GetNumberOfCurrentPlayers(rc.ctx, c.AppID)
	if err != nil {
		return err
	}
	return rc.out.Print(players)
}

type SummariesCmd struct {
	SteamIDs []string `arg:"" help:"SteamID64s to look up." name:"steamid"`
}

func (c *SummariesCmd) Run(rc *runContext) error {
	steamIDs := make([]steamid.SteamID, 0, len(c.SteamIDs))
	for _, raw := range c.SteamIDs {
		steamID, err := steamid.ParseSteamID64(raw)
		if err != nil {
			return err
		}
		steamIDs = append(steamIDs, steamID)
	}

	summaries, err := rc.client.User.GetPlayerSummaries(rc.ctx, steamIDs...)
	if err != nil {
		return err
	}
	return rc.out.Print(summaries)
}

type ResolveCmd struct {
	Vanity string `arg:"" help:"Custom profile URL name."`
	Group  bool   `help:"Resolve a group URL instead of a profile."`
}

func (c *ResolveCmd) Run(rc *runContext) error {
	var options *user.ResolveVanityURLOptions
	if c.Group {
		options = &user.ResolveVanityURLOptions{UrlType: api.Ptr(user.GroupUrlType)}
	}

	resolved, err := rc.client.User.ResolveVanityURL(rc.ctx, c.Vanity, options)
	if err != nil {
		return err
	}
	if !resolved.Found() {
		return fmt.Errorf("no match for %q: %s", c.Vanity, resolved.Message)
	}
	return rc.out.Print(resolved)
}

type OwnedCmd struct {
	SteamID   string `arg:"" help:"SteamID64 of the owner."`
	AppInfo   bool   `help:"Include names and icons."`
	FreeGames bool   `help:"Include played free games."`
	Language  string `help:"Language of app names."`
}

func (c *OwnedCmd) Run(rc *runContext) error {
	steamID, err := steamid.ParseSteamID64(c.SteamID)
	if err != nil {
		return err
	}

	options := &player.GetOwnedGamesOptions{}
	if c.AppInfo {
		options.IncludeAppInfo = api.Ptr(true)
	}
	if c.FreeGames {
		options.IncludePlayedFreeGames = api.Ptr(true)
	}
	if c.Language != "" {
		options.Language = api.Ptr(c.Language)
	}

	owned, err := rc.client.Player.GetOwnedGames(rc.ctx, steamID, options)
	if err != nil {
		return err
	}
	return rc.out.Print(owned)
}

type LevelCmd struct {
	SteamID string `arg:"" help:"SteamID64 to look up."`
}

func (c *LevelCmd) Run(rc *runContext) error {
	steamID, err := steamid.ParseSteamID64(c.SteamID)
	if err != nil {
		return err
	}

	level, err := rc.client.Player.GetSteamLevel(rc.ctx, steamID)
	if err != nil {
		return err
	}
	return rc.out.Print(level)
}

type ProfileCmd struct {
	SteamID string `arg:"" help:"SteamID64 to look up."`
	Recent  uint32 `help:"Number of recently played games." default:"5"`
}

type profile struct {
	Level  *player.SteamLevel          `json:"level"`
	Badges *player.Badges              `json:"badges"`
	Recent *player.RecentlyPlayedGames `json:"recent"`
}

func (c *ProfileCmd) Run(rc *runContext) error {
	steamID, err := steamid.ParseSteamID64(c.SteamID)
	if err != nil {
		return err
	}

	var result profile
	group, ctx := errgroup.WithContext(rc.ctx)

	group.Go(func() error {
		level, errLevel := rc.client.Player.GetSteamLevel(ctx, steamID)
		result.Level = level
		return errLevel
	})
	group.Go(func() error {
		badges, errBadges := rc.client.Player.GetBadges(ctx, steamID)
		result.Badges = badges
		return errBadges
	})
	group.Go(func() error {
		recent, errRecent := rc.client.Player.GetRecentlyPlayedGames(ctx, steamID,
			&player.GetRecentlyPlayedGamesOptions{Count: api.Ptr(c.Recent)})
		result.Recent = recent
		return errRecent
	})

	if errWait := group.Wait(); errWait != nil {
		return errWait
	}
	return rc.out.Print(result)
}

type UpToDateCmd struct {
	AppID   uint32 `arg:"" help:"App id."`
	Version uint32 `arg:"" help:"Version to check."`
}

func (c *UpToDateCmd) Run(rc *runContext) error {
	check, err := rc.client.Apps.UpToDateCheck(rc.ctx, c.AppID, c.Version)
	if err != nil {
		return err
	}
	return rc.out.Print(check)
}

type OffersSummaryCmd struct {
	LastVisit uint32 `help:"Unix time new and updated counts are relative to."`
}

func (c *OffersSummaryCmd) Run(rc *runContext) error {
	var options *econ.GetTradeOffersSummaryOptions
	if c.LastVisit != 0 {
		options = &econ.GetTradeOffersSummaryOptions{TimeLastVisit: api.Ptr(c.LastVisit)}
	}

	summary, err := rc.client.Econ.GetTradeOffersSummary(rc.ctx, options)
	if err != nil {
		return err
	}
	return rc.out.Print(summary)
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}
