package apps_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/escrow-tf/steamweb/api/apitest"
	"github.com/escrow-tf/steamweb/api/apps"
	"github.com/stretchr/testify/require"
)

func TestUpToDateCheck(t *testing.T) {
	server := apitest.NewServer(t, apitest.Routes(map[string]http.Handler{
		apitest.Path(apps.UpToDateCheckEndpoint): http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("version") == "8000000" {
				apitest.JSON(http.StatusOK, `{"response":{"success":true,"up_to_date":true,"version_is_listed":true}}`)(w, r)
				return
			}
			apitest.JSON(http.StatusOK, `{"response":{"success":true,"up_to_date":false,"version_is_listed":false,
				"required_version":8000000,"message":"Your server is out of date, please upgrade"}}`)(w, r)
		}),
	}))
	client := apps.NewClient(server.Transport())

	check, err := client.UpToDateCheck(context.Background(), 440, 8000000)
	require.NoError(t, err)
	require.Equal(t, apps.UpToDateCheck{Success: true, UpToDate: true, VersionIsListed: true}, *check)
	require.Equal(t, "key="+apitest.TestKey+"&appid=440&version=8000000", server.LastRequest().RawQuery)

	check, err = client.UpToDateCheck(context.Background(), 440, 1)
	require.NoError(t, err)
	require.False(t, check.UpToDate)
	require.Equal(t, uint32(8000000), check.RequiredVersion)
	require.NotEmpty(t, check.Message)
}
