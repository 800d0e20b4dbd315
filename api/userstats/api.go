package userstats

import "context"

type Api interface {
	GetNumberOfCurrentPlayers(ctx context.Context, appID uint32) (*CurrentPlayers, error)
}
