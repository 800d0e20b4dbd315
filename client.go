// Package steamweb is a typed client for the Steam Web API.
//
//	client, err := steamweb.New(os.Getenv("STEAM_API_KEY"))
//	players, err := client.UserStats.GetNumberOfCurrentPlayers(ctx, 440)
//
// Failures are *api.Error values tagged with the endpoint that failed; use
// errors.Is with api.ErrTransport or api.ErrDeserialization to tell them apart.
package steamweb

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/escrow-tf/steamweb/api"
	"github.com/escrow-tf/steamweb/api/apps"
	"github.com/escrow-tf/steamweb/api/econ"
	"github.com/escrow-tf/steamweb/api/player"
	"github.com/escrow-tf/steamweb/api/storeservice"
	"github.com/escrow-tf/steamweb/api/user"
	"github.com/escrow-tf/steamweb/api/userstats"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	ErrInvalidOption = errors.New("invalid client option")
	ErrConfigInvalid = errors.New("invalid client configuration")
)

var validate = validator.New()

type config struct {
	APIKey        string            `validate:"required"`
	BaseURL       string            `validate:"required,url"`
	Timeout       time.Duration     `validate:"gte=0"`
	HTTPClient    *http.Client      `validate:"-"`
	Logger        *zap.Logger       `validate:"-"`
	InputEncoding api.InputEncoding `validate:"-"`
}

type Option func(cfg *config) error

// WithBaseURL points the client at another Web API host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) error {
		cfg.BaseURL = baseURL
		return nil
	}
}

// WithHTTPClient sends requests through httpClient. The client is copied.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *config) error {
		if httpClient == nil {
			return fmt.Errorf("%w: http client must be non-nil", ErrInvalidOption)
		}
		cfg.HTTPClient = httpClient
		return nil
	}
}

// WithTimeout bounds every request, on top of any context deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) error {
		cfg.Timeout = timeout
		return nil
	}
}

// WithLogger receives debug traces of every request. Nothing is logged
// without it.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return fmt.Errorf("%w: logger must be non-nil", ErrInvalidOption)
		}
		cfg.Logger = logger
		return nil
	}
}

// WithProtobufInput sends the parameters of I*Service methods as a single
// input_protobuf_encoded value.
func WithProtobufInput() Option {
	return func(cfg *config) error {
		cfg.InputEncoding = api.ProtobufInput
		return nil
	}
}

// Client groups one binding per Web API interface over a shared transport.
// It is safe for concurrent use.
type Client struct {
	Transport api.Transport

	StoreService *storeservice.Client
	UserStats    *userstats.Client
	User         *user.Client
	Player       *player.Client
	Apps         *apps.Client
	Econ         *econ.Client
}

func New(apiKey string, options ...Option) (*Client, error) {
	cfg := config{
		APIKey:  apiKey,
		BaseURL: api.BaseURL,
	}
	for _, option := range options {
		if err := option(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Join(ErrConfigInvalid, err)
	}

	transport := api.NewTransport(api.HttpTransportOptions{
		WebApiKey:     cfg.APIKey,
		BaseURL:       cfg.BaseURL,
		HTTPClient:    cfg.HTTPClient,
		Timeout:       cfg.Timeout,
		InputEncoding: cfg.InputEncoding,
		Logger:        cfg.Logger,
	})

	return NewWithTransport(transport), nil
}

// NewWithTransport builds a Client over any api.Transport.
func NewWithTransport(transport api.Transport) *Client {
	return &Client{
		Transport:    transport,
		StoreService: storeservice.NewClient(transport),
		UserStats:    userstats.NewClient(transport),
		User:         user.NewClient(transport),
		Player:       player.NewClient(transport),
		Apps:         apps.NewClient(transport),
		Econ:         econ.NewClient(transport),
	}
}
