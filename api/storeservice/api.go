package storeservice

import "context"

type Api interface {
	GetAppList(ctx context.Context, options *GetAppListOptions) (*AppList, error)
}
