package user

import (
	"context"

	"github.com/escrow-tf/steamweb/steamid"
)

type Api interface {
	GetPlayerSummaries(ctx context.Context, steamIDs ...steamid.SteamID) (*PlayerSummaries, error)
	ResolveVanityURL(ctx context.Context, vanityURL string, options *ResolveVanityURLOptions) (*ResolvedVanityURL, error)
}
