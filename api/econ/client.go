// Package econ calls the IEconService interface for trade offers.
package econ

import (
	"context"

	"github.com/escrow-tf/steamweb/api"
	"github.com/escrow-tf/steamweb/steamid"
	"github.com/escrow-tf/steamweb/steamlang"
)

const Interface = "IEconService"

var (
	GetTradeOfferEndpoint         = api.Endpoint{Interface: Interface, Method: "GetTradeOffer", Version: 1}
	GetTradeOffersEndpoint        = api.Endpoint{Interface: Interface, Method: "GetTradeOffers", Version: 1}
	GetTradeOffersSummaryEndpoint = api.Endpoint{Interface: Interface, Method: "GetTradeOffersSummary", Version: 1}
)

type OfferState uint

//goland:noinspection GoUnusedConst
const (
	// InvalidOfferState - Invalid
	InvalidOfferState OfferState = 1
	// ActiveOfferState - This trade offer has been sent, neither party has acted on it yet.
	ActiveOfferState OfferState = 2
	// AcceptedOfferState - The trade offer was accepted by the recipient and items were exchanged.
	AcceptedOfferState OfferState = 3
	// CounteredOfferState - The recipient made a counter-offer
	CounteredOfferState OfferState = 4
	// ExpiredOfferState - The trade offer was not accepted before the expiration date
	ExpiredOfferState OfferState = 5
	// CanceledOfferState - The sender cancelled the offer
	CanceledOfferState OfferState = 6
	// DeclinedOfferState - The recipient declined the offer
	DeclinedOfferState OfferState = 7
	// InvalidItemsOfferState - Some of the items in the offer are no longer available (indicated by the
	// missing flag in the output)
	InvalidItemsOfferState OfferState = 8
	// CreatedNeedsConfirmationOfferState - The offer hasn't been sent yet and is awaiting email/mobile
	// confirmation. The offer is only visible to the sender.
	CreatedNeedsConfirmationOfferState OfferState = 9
	// CanceledBySecondFactorOfferState - Either party canceled the offer via email/mobile.
	CanceledBySecondFactorOfferState OfferState = 10
	// InEscrowOfferState - The trade has been placed on hold.
	InEscrowOfferState OfferState = 11
)

type OfferConfirmationMethod uint

//goland:noinspection GoUnusedConst
const (
	InvalidOfferConfirmationMethod   OfferConfirmationMethod = 0
	EmailOfferConfirmationMethod     OfferConfirmationMethod = 1
	MobileAppOfferConfirmationMethod OfferConfirmationMethod = 2
)

type TradeOffer struct {
	TradeOfferID       uint64                  `json:"tradeofferid,string"`
	TradeID            uint64                  `json:"tradeid,string"`
	OtherAccountID     uint32                  `json:"accountid_other"`
	Message            string                  `json:"message"`
	ExpirationTime     int64                   `json:"expiration_time"`
	State              OfferState              `json:"trade_offer_state"`
	ToGive             []Asset                 `json:"items_to_give"`
	ToReceive          []Asset                 `json:"items_to_receive"`
	IsOurOffer         bool                    `json:"is_our_offer"`
	TimeCreated        int64                   `json:"time_created"`
	TimeUpdated        int64                   `json:"time_updated"`
	FromRealTimeTrade  bool                    `json:"from_real_time_trade"`
	EscrowEndDate      int64                   `json:"escrow_end_date"`
	ConfirmationMethod OfferConfirmationMethod `json:"confirmation_method"`
	EResult            steamlang.EResult       `json:"eresult"`
}

// OtherSteamID is the individual account on the other side of the offer.
func (o TradeOffer) OtherSteamID() steamid.SteamID {
	return steamid.FromAccountID(o.OtherAccountID)
}

type Client struct {
	Transport api.Transport
}

func NewClient(transport api.Transport) *Client {
	return &Client{Transport: transport}
}

type GetTradeOfferOptions struct {
	// Language fills in item descriptions in this language.
	Language *string
}

type getTradeOfferParams struct {
	TradeOfferID uint64  `schema:"tradeofferid" pb:"1"`
	Language     *string `schema:"language,omitempty" pb:"2"`
}

type TradeOfferDetails struct {
	Offer        TradeOffer    `json:"offer"`
	Descriptions []Description `json:"descriptions"`
}

func (c *Client) GetTradeOffer(
	ctx context.Context,
	tradeOfferID uint64,
	options *GetTradeOfferOptions,
) (*TradeOfferDetails, error) {
	params := getTradeOfferParams{TradeOfferID: tradeOfferID}
	if options != nil {
		params.Language = options.Language
	}

	return api.Call[TradeOfferDetails](ctx, c.Transport, api.MethodRequest{
		Method: GetTradeOfferEndpoint,
		Input:  params,
	})
}

type GetTradeOffersOptions struct {
	GetSentOffers     *bool
	GetReceivedOffers *bool
	// GetDescriptions returns item descriptions alongside the offers.
	GetDescriptions *bool
	Language        *string
	ActiveOnly      *bool
	HistoricalOnly  *bool
	// TimeHistoricalCutoff adds inactive offers updated after this unix time
	// when ActiveOnly is set.
	TimeHistoricalCutoff *uint32
	// Cursor continues a previous listing, see TradeOffers.NextCursor.
	Cursor *uint32
}

type getTradeOffersParams struct {
	GetSentOffers        *bool   `schema:"get_sent_offers,omitempty" pb:"1"`
	GetReceivedOffers    *bool   `schema:"get_received_offers,omitempty" pb:"2"`
	GetDescriptions      *bool   `schema:"get_descriptions,omitempty" pb:"3"`
	Language             *string `schema:"language,omitempty" pb:"4"`
	ActiveOnly           *bool   `schema:"active_only,omitempty" pb:"5"`
	HistoricalOnly       *bool   `schema:"historical_only,omitempty" pb:"6"`
	TimeHistoricalCutoff *uint32 `schema:"time_historical_cutoff,omitempty" pb:"7"`
	Cursor               *uint32 `schema:"cursor,omitempty" pb:"8"`
}

type TradeOffers struct {
	Sent         []TradeOffer  `json:"trade_offers_sent"`
	Received     []TradeOffer  `json:"trade_offers_received"`
	Descriptions []Description `json:"descriptions"`
	// NextCursor is zero on the last page.
	NextCursor uint32 `json:"next_cursor"`
}

func (c *Client) GetTradeOffers(ctx context.Context, options *GetTradeOffersOptions) (*TradeOffers, error) {
	var params getTradeOffersParams
	if options != nil {
		params = getTradeOffersParams(*options)
	}

	return api.Call[TradeOffers](ctx, c.Transport, api.MethodRequest{
		Method: GetTradeOffersEndpoint,
		Input:  params,
	})
}

type GetTradeOffersSummaryOptions struct {
	// TimeLastVisit is the unix time "new" and "updated" counts are relative to.
	TimeLastVisit *uint32
}

type getTradeOffersSummaryParams struct {
	TimeLastVisit *uint32 `schema:"time_last_visit,omitempty" pb:"1"`
}

type TradeOffersSummary struct {
	PendingReceivedCount    uint32 `json:"pending_received_count"`
	NewReceivedCount        uint32 `json:"new_received_count"`
	UpdatedReceivedCount    uint32 `json:"updated_received_count"`
	HistoricalReceivedCount uint32 `json:"historical_received_count"`
	PendingSentCount        uint32 `json:"pending_sent_count"`
	NewlyAcceptedSentCount  uint32 `json:"newly_accepted_sent_count"`
	UpdatedSentCount        uint32 `json:"updated_sent_count"`
	HistoricalSentCount     uint32 `json:"historical_sent_count"`
	EscrowReceivedCount     uint32 `json:"escrow_received_count"`
	EscrowSentCount         uint32 `json:"escrow_sent_count"`
}

func (c *Client) GetTradeOffersSummary(
	ctx context.Context,
	options *GetTradeOffersSummaryOptions,
) (*TradeOffersSummary, error) {
	var params getTradeOffersSummaryParams
	if options != nil {
		params.TimeLastVisit = options.TimeLastVisit
	}

	return api.Call[TradeOffersSummary](ctx, c.Transport, api.MethodRequest{
		Method: GetTradeOffersSummaryEndpoint,
		Input:  params,
	})
}
