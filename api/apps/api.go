package apps

import "context"

type Api interface {
	UpToDateCheck(ctx context.Context, appID, version uint32) (*UpToDateCheck, error)
}
