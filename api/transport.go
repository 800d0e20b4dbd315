package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/escrow-tf/steamweb/steamlang"
	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const BaseURL = "https://api.steampowered.com"

const (
	JsonContentType = "application/json"
	UserAgent       = "steamweb-go/1.0"
	apiKeyParam     = "key"
)

// InputEncoding selects how parameters reach service interface methods.
type InputEncoding int

const (
	// QueryInput sends every parameter as its own query value.
	QueryInput InputEncoding = iota
	// ProtobufInput sends parameters of I*Service methods as one
	// input_protobuf_encoded value. Other interfaces still use QueryInput.
	ProtobufInput
)

// Endpoint identifies one Web API method. All methods are called with GET.
type Endpoint struct {
	Interface string
	Method    string
	Version   int
}

func (e Endpoint) Path() string {
	return fmt.Sprintf("%s/%s/v%d/", e.Interface, e.Method, e.Version)
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s/%s/v%d", e.Interface, e.Method, e.Version)
}

// IsService reports whether the interface is a protobuf backed service
// interface such as IStoreService.
func (e Endpoint) IsService() bool {
	return strings.HasSuffix(e.Interface, "Service")
}

type Request interface {
	Endpoint() Endpoint
	RequiresApiKey() bool
	// Params returns the parameter struct, or nil when the method takes none.
	Params() any
}

type Transport interface {
	Send(ctx context.Context, request Request, response any) error
}

// MethodRequest is the Request every binding sends: an endpoint plus a
// parameter struct.
type MethodRequest struct {
	Method        Endpoint
	Input         any
	WithoutApiKey bool
}

func (r MethodRequest) Endpoint() Endpoint {
	return r.Method
}

func (r MethodRequest) RequiresApiKey() bool {
	return !r.WithoutApiKey
}

func (r MethodRequest) Params() any {
	return r.Input
}

type HttpTransport struct {
	webApiKey     string
	baseURL       string
	inputEncoding InputEncoding
	encoder       *ParamEncoder
	client        *retryablehttp.Client
	logger        *zap.Logger
}

type HttpTransportOptions struct {
	WebApiKey string
	// BaseURL defaults to BaseURL.
	BaseURL string
	// HTTPClient defaults to a pooled cleanhttp client. It is copied, never
	// modified.
	HTTPClient    *http.Client
	Timeout       time.Duration
	InputEncoding InputEncoding
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

func NewTransport(options HttpTransportOptions) *HttpTransport {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	baseURL := strings.TrimRight(options.BaseURL, "/")
	if baseURL == "" {
		baseURL = BaseURL
	}

	var httpClient *http.Client
	if options.HTTPClient != nil {
		clientCopy := *options.HTTPClient
		httpClient = &clientCopy
	} else {
		httpClient = &http.Client{Transport: cleanhttp.DefaultPooledTransport()}
	}
	if options.Timeout > 0 {
		httpClient.Timeout = options.Timeout
	}

	// a single attempt; failures are handed back untouched
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = httpClient
	retryClient.RetryMax = 0
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = newLeveledLogger(logger.Named("http"))

	return &HttpTransport{
		webApiKey:     options.WebApiKey,
		baseURL:       baseURL,
		inputEncoding: options.InputEncoding,
		encoder:       NewParamEncoder(),
		client:        retryClient,
		logger:        logger,
	}
}

// Query builds the full query for request, api key first.
func (c *HttpTransport) Query(request Request) (*Query, error) {
	query := &Query{}
	if request.RequiresApiKey() {
		query.Add(apiKeyParam, c.webApiKey)
	}

	if c.inputEncoding == ProtobufInput && request.Endpoint().IsService() {
		if err := EncodeProtobufInput(query, request.Params()); err != nil {
			return nil, err
		}
		return query, nil
	}

	params, err := c.encoder.Encode(request.Params())
	if err != nil {
		return nil, err
	}
	query.Append(params)

	return query, nil
}

// URL renders {base}/{interface}/{method}/v{version}/?{query}.
func (c *HttpTransport) URL(request Request) (string, error) {
	query, err := c.Query(request)
	if err != nil {
		return "", err
	}

	requestUrl := c.baseURL + "/" + request.Endpoint().Path()
	if query.Len() > 0 {
		requestUrl += "?" + query.Encode()
	}
	return requestUrl, nil
}

// Send performs one GET for request and decodes the body into response. It
// returns a *TransportError or a *DeserializationError.
func (c *HttpTransport) Send(ctx context.Context, request Request, response any) error {
	endpoint := request.Endpoint()
	logger := c.logger.With(
		zap.String("endpoint", endpoint.String()),
		zap.String("request_id", uuid.NewString()),
	)

	requestUrl, urlErr := c.URL(request)
	if urlErr != nil {
		return &TransportError{Err: urlErr}
	}

	httpRequest, httpRequestErr := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if httpRequestErr != nil {
		return &TransportError{Err: eris.Wrap(redactURLError(httpRequestErr), "couldn't create request")}
	}

	httpRequest.Header.Add("Accept", JsonContentType)
	httpRequest.Header.Add("User-Agent", UserAgent)

	start := time.Now()
	// the passthrough handler returns 5xx responses together with an error
	httpResponse, httpResponseErr := c.client.Do(httpRequest)
	httpResponseErr = redactURLError(httpResponseErr)
	if httpResponse == nil {
		logger.Debug("Request to steam failed",
			zap.Duration("duration", time.Since(start)), zap.Error(httpResponseErr))

		return &TransportError{Err: eris.Wrap(httpResponseErr, "request to steam failed")}
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logger.Debug("Error closing steam response body", zap.Error(err))
		}
	}(httpResponse.Body)

	logger.Debug("Request to steam completed",
		zap.Int("status", httpResponse.StatusCode), zap.Duration("duration", time.Since(start)))

	if err := ensureResponseSuccess(httpResponse); err != nil {
		return err
	}

	if httpResponseErr != nil {
		return &TransportError{
			StatusCode: httpResponse.StatusCode,
			Err:        eris.Wrap(httpResponseErr, "request to steam failed"),
		}
	}

	if response == nil {
		return nil
	}

	responseBody, readErr := io.ReadAll(httpResponse.Body)
	if readErr != nil {
		return &TransportError{
			StatusCode: httpResponse.StatusCode,
			Err:        eris.Wrap(readErr, "couldn't read response body"),
		}
	}

	if err := json.Unmarshal(responseBody, response); err != nil {
		return &DeserializationError{
			Message: err.Error(),
			Err:     eris.Wrap(err, "couldn't unmarshal response"),
		}
	}

	return nil
}

func ensureResponseSuccess(httpResponse *http.Response) error {
	result, hasResult := steamlang.ResponseResult(httpResponse)

	if !steamlang.IsSuccessStatus(httpResponse) || (hasResult && result != steamlang.OKResult) {
		return &TransportError{
			StatusCode: httpResponse.StatusCode,
			EResult:    result,
			Message:    steamlang.ResponseErrorMessage(httpResponse),
		}
	}

	return nil
}
