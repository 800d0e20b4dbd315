package econ

import "context"

type Api interface {
	GetTradeOffer(ctx context.Context, tradeOfferID uint64, options *GetTradeOfferOptions) (*TradeOfferDetails, error)
	GetTradeOffers(ctx context.Context, options *GetTradeOffersOptions) (*TradeOffers, error)
	GetTradeOffersSummary(ctx context.Context, options *GetTradeOffersSummaryOptions) (*TradeOffersSummary, error)
}
