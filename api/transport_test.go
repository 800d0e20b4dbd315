package api_test

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/escrow-tf/steamweb/api"
	"github.com/escrow-tf/steamweb/api/apitest"
	"github.com/escrow-tf/steamweb/steamid"
	"github.com/escrow-tf/steamweb/steamlang"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/encoding/protowire"
)

type ownedParams struct {
	SteamID        steamid.SteamID `schema:"steamid" pb:"1"`
	IncludeAppInfo *bool           `schema:"include_appinfo,omitempty" pb:"2"`
	Language       *string         `schema:"language,omitempty" pb:"7"`
}

var userEndpoint = api.Endpoint{Interface: "ISteamUser", Method: "GetPlayerSummaries", Version: 2}

func TestEndpointPath(t *testing.T) {
	require.Equal(t, "ISteamUser/GetPlayerSummaries/v2/", userEndpoint.Path())
	require.Equal(t, "ISteamUser/GetPlayerSummaries/v2", userEndpoint.String())
	require.False(t, userEndpoint.IsService())
	require.True(t, testEndpoint.IsService())
}

func TestURL(t *testing.T) {
	transport := api.NewTransport(api.HttpTransportOptions{WebApiKey: "ABC"})

	requestUrl, err := transport.URL(api.MethodRequest{
		Method: userEndpoint,
		Input: &struct {
			SteamIDs steamid.Collection `schema:"steamids"`
		}{SteamIDs: steamid.Collection{steamid.New(76561197960435530)}},
	})
	require.NoError(t, err)
	require.Equal(t, "https://api.steampowered.com/ISteamUser/GetPlayerSummaries/v2/?key=ABC&steamids=76561197960435530", requestUrl)

	requestUrl, err = transport.URL(api.MethodRequest{Method: userEndpoint, WithoutApiKey: true})
	require.NoError(t, err)
	require.Equal(t, "https://api.steampowered.com/ISteamUser/GetPlayerSummaries/v2/", requestUrl)
}

func TestURLTrimsBaseSlash(t *testing.T) {
	transport := api.NewTransport(api.HttpTransportOptions{WebApiKey: "ABC", BaseURL: "http://localhost:8080/"})

	requestUrl, err := transport.URL(api.MethodRequest{Method: testEndpoint})
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/ITestService/List/v1/?key=ABC", requestUrl)
}

func TestSendRequestShape(t *testing.T) {
	received := make(chan *http.Request, 1)
	server := apitest.NewServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- r.Clone(context.Background())
		apitest.JSON(http.StatusOK, `{"response":{}}`)(w, r)
	}))

	_, err := api.Call[playerCount](context.Background(), server.Transport(), api.MethodRequest{
		Method: testEndpoint,
		Input:  &listParams{LastAppID: api.Ptr(uint32(10))},
	})
	require.NoError(t, err)

	request := server.LastRequest()
	require.NotNil(t, request)
	require.Equal(t, "/ITestService/List/v1/", request.Path)
	require.Equal(t, "key="+apitest.TestKey+"&last_appid=10", request.RawQuery)
	httpRequest := <-received
	require.Equal(t, http.MethodGet, httpRequest.Method)
	require.Equal(t, api.JsonContentType, httpRequest.Header.Get("Accept"))
	require.Equal(t, api.UserAgent, httpRequest.Header.Get("User-Agent"))
}

func TestSendHttpFailureIsTransportError(t *testing.T) {
	server := apitest.NewServer(t, apitest.Routes(nil))

	_, err := api.Call[playerCount](context.Background(), server.Transport(), api.MethodRequest{Method: testEndpoint})
	require.ErrorIs(t, err, api.ErrTransport)
	require.NotErrorIs(t, err, api.ErrDeserialization)

	var transportErr *api.TransportError
	require.True(t, errors.As(err, &transportErr))
	require.Equal(t, http.StatusNotFound, transportErr.StatusCode)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, testEndpoint, apiErr.Endpoint)
	require.Contains(t, err.Error(), "ITestService/List/v1")
}

func TestSendServerErrorKeepsStatus(t *testing.T) {
	server := apitest.NewServer(t, apitest.JSON(http.StatusServiceUnavailable, `oops`))

	_, err := api.Call[playerCount](context.Background(), server.Transport(), api.MethodRequest{Method: testEndpoint})

	var transportErr *api.TransportError
	require.True(t, errors.As(err, &transportErr))
	require.Equal(t, http.StatusServiceUnavailable, transportErr.StatusCode)
	require.Len(t, server.Requests(), 1)
}

func TestSendResultHeaderFailure(t *testing.T) {
	server := apitest.NewServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-eresult", "42")
		w.Header().Set("X-error_message", "no match")
		apitest.JSON(http.StatusOK, `{"response":{}}`)(w, r)
	}))

	_, err := api.Call[playerCount](context.Background(), server.Transport(), api.MethodRequest{Method: testEndpoint})

	var transportErr *api.TransportError
	require.True(t, errors.As(err, &transportErr))
	require.Equal(t, http.StatusOK, transportErr.StatusCode)
	require.Equal(t, steamlang.NoMatchResult, transportErr.EResult)
	require.Equal(t, "no match", transportErr.Message)
}

func TestSendResultHeaderOK(t *testing.T) {
	server := apitest.NewServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-eresult", "1")
		apitest.JSON(http.StatusOK, `{"response":{"player_count":1}}`)(w, r)
	}))

	got, err := api.Call[playerCount](context.Background(), server.Transport(), api.MethodRequest{Method: testEndpoint})
	require.NoError(t, err)
	require.Equal(t, 1, got.PlayerCount)
}

func TestSendMalformedBody(t *testing.T) {
	server := apitest.NewServer(t, apitest.JSON(http.StatusOK, `<html>not json</html>`))

	_, err := api.Call[playerCount](context.Background(), server.Transport(), api.MethodRequest{Method: testEndpoint})
	require.ErrorIs(t, err, api.ErrDeserialization)
	require.NotErrorIs(t, err, api.ErrMissingResponse)
}

func TestSendCanceledContext(t *testing.T) {
	server := apitest.NewServer(t, apitest.JSON(http.StatusOK, `{"response":{}}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := api.Call[playerCount](ctx, server.Transport(), api.MethodRequest{Method: testEndpoint})
	require.ErrorIs(t, err, api.ErrTransport)

	var transportErr *api.TransportError
	require.True(t, errors.As(err, &transportErr))
	require.Zero(t, transportErr.StatusCode)
}

func TestSendTimeout(t *testing.T) {
	release := make(chan struct{})
	server := apitest.NewServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() { close(release) })

	transport := server.Transport(func(options *api.HttpTransportOptions) {
		options.Timeout = 50 * time.Millisecond
	})

	_, err := api.Call[playerCount](context.Background(), transport, api.MethodRequest{Method: testEndpoint})
	require.ErrorIs(t, err, api.ErrTransport)
}

func TestSendUnreachableHost(t *testing.T) {
	transport := api.NewTransport(api.HttpTransportOptions{WebApiKey: "SECRETKEY", BaseURL: "http://127.0.0.1:1"})

	_, err := api.Call[playerCount](context.Background(), transport, api.MethodRequest{Method: testEndpoint})
	require.ErrorIs(t, err, api.ErrTransport)
	require.NotContains(t, err.Error(), "SECRETKEY")

	var urlErr *url.Error
	require.True(t, errors.As(err, &urlErr))
	require.Equal(t, "http://127.0.0.1:1/ITestService/List/v1/?key=REDACTED", urlErr.URL)
}

func TestSendProtobufInput(t *testing.T) {
	server := apitest.NewServer(t, apitest.JSON(http.StatusOK, `{"response":{}}`))
	transport := server.Transport(func(options *api.HttpTransportOptions) {
		options.InputEncoding = api.ProtobufInput
	})

	_, err := api.Call[playerCount](context.Background(), transport, api.MethodRequest{
		Method: testEndpoint,
		Input: &ownedParams{
			SteamID:        steamid.New(76561197960435530),
			IncludeAppInfo: api.Ptr(true),
			Language:       api.Ptr("english"),
		},
	})
	require.NoError(t, err)

	values, err := url.ParseQuery(server.LastRequest().RawQuery)
	require.NoError(t, err)
	require.Equal(t, apitest.TestKey, values.Get("key"))
	require.False(t, values.Has("steamid"))

	message, err := base64.StdEncoding.DecodeString(values.Get("input_protobuf_encoded"))
	require.NoError(t, err)

	number, wireType, n := protowire.ConsumeTag(message)
	require.Equal(t, protowire.Number(1), number)
	require.Equal(t, protowire.VarintType, wireType)
	message = message[n:]
	steamID, n := protowire.ConsumeVarint(message)
	require.Equal(t, uint64(76561197960435530), steamID)
	message = message[n:]

	number, _, n = protowire.ConsumeTag(message)
	require.Equal(t, protowire.Number(2), number)
	message = message[n:]
	includeAppInfo, n := protowire.ConsumeVarint(message)
	require.True(t, protowire.DecodeBool(includeAppInfo))
	message = message[n:]

	number, wireType, n = protowire.ConsumeTag(message)
	require.Equal(t, protowire.Number(7), number)
	require.Equal(t, protowire.BytesType, wireType)
	message = message[n:]
	language, n := protowire.ConsumeString(message)
	require.Equal(t, "english", language)
	require.Empty(t, message[n:])
}

func TestSendProtobufInputOnlyForServices(t *testing.T) {
	server := apitest.NewServer(t, apitest.JSON(http.StatusOK, `{"response":{}}`))
	transport := server.Transport(func(options *api.HttpTransportOptions) {
		options.InputEncoding = api.ProtobufInput
	})

	_, err := api.Call[playerCount](context.Background(), transport, api.MethodRequest{
		Method: userEndpoint,
		Input:  &ownedParams{SteamID: steamid.New(76561197960435530)},
	})
	require.NoError(t, err)
	require.Equal(t, "key="+apitest.TestKey+"&steamid=76561197960435530", server.LastRequest().RawQuery)
}

func TestSendProtobufInputAllAbsent(t *testing.T) {
	server := apitest.NewServer(t, apitest.JSON(http.StatusOK, `{"response":{}}`))
	transport := server.Transport(func(options *api.HttpTransportOptions) {
		options.InputEncoding = api.ProtobufInput
	})

	_, err := api.Call[playerCount](context.Background(), transport, api.MethodRequest{Method: testEndpoint, Input: &listParams{}})
	require.NoError(t, err)
	require.Equal(t, "key="+apitest.TestKey, server.LastRequest().RawQuery)
}

func TestSendConcurrentCalls(t *testing.T) {
	other := api.Endpoint{Interface: "ITestService", Method: "Other", Version: 2}
	server := apitest.NewServer(t, apitest.Routes(map[string]http.Handler{
		apitest.Path(testEndpoint): apitest.JSON(http.StatusOK, `{"response":{"player_count":1}}`),
		apitest.Path(other):        apitest.JSON(http.StatusOK, `{"response":{"player_count":2}}`),
	}))
	transport := server.Transport()

	results := make([]int, 20)
	var group errgroup.Group
	for i := range results {
		i := i
		endpoint := testEndpoint
		if i%2 == 1 {
			endpoint = other
		}
		group.Go(func() error {
			got, err := api.Call[playerCount](context.Background(), transport, api.MethodRequest{Method: endpoint})
			if err != nil {
				return err
			}
			results[i] = got.PlayerCount
			return nil
		})
	}
	require.NoError(t, group.Wait())

	for i, count := range results {
		require.Equal(t, i%2+1, count)
	}
	require.Len(t, server.Requests(), len(results))
}
