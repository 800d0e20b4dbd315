package player

import (
	"context"

	"github.com/escrow-tf/steamweb/steamid"
)

type Api interface {
	GetOwnedGames(ctx context.Context, steamID steamid.SteamID, options *GetOwnedGamesOptions) (*OwnedGames, error)
	GetRecentlyPlayedGames(
		ctx context.Context,
		steamID steamid.SteamID,
		options *GetRecentlyPlayedGamesOptions,
	) (*RecentlyPlayedGames, error)
	GetSteamLevel(ctx context.Context, steamID steamid.SteamID) (*SteamLevel, error)
	GetBadges(ctx context.Context, steamID steamid.SteamID) (*Badges, error)
	GetCommunityBadgeProgress(
		ctx context.Context,
		steamID steamid.SteamID,
		options *GetCommunityBadgeProgressOptions,
	) (*BadgeProgress, error)
}
