package player_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"testing"

	"github.com/escrow-tf/steamweb/api"
	"github.com/escrow-tf/steamweb/api/apitest"
	"github.com/escrow-tf/steamweb/api/player"
	"github.com/escrow-tf/steamweb/steamid"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

var robinWalker = steamid.New(76561197960435530)

func fakeSteam(t *testing.T) *apitest.Server {
	return apitest.NewServer(t, apitest.Routes(map[string]http.Handler{
		apitest.Path(player.GetOwnedGamesEndpoint): apitest.JSON(http.StatusOK, `{"response":{"game_count":2,"games":[
			{"appid":440,"name":"Team Fortress 2","playtime_forever":1234,"img_icon_url":"e3f5","has_community_visible_stats":true,"rtime_last_played":1700000000},
			{"appid":570,"playtime_forever":0}
		]}}`),
		apitest.Path(player.GetRecentlyPlayedGamesEndpoint): apitest.JSON(http.StatusOK, `{"response":{"total_count":1,"games":[
			{"appid":440,"name":"Team Fortress 2","playtime_2weeks":60,"playtime_forever":1234}
		]}}`),
		apitest.Path(player.GetSteamLevelEndpoint): apitest.JSON(http.StatusOK, `{"response":{"player_level":42}}`),
		apitest.Path(player.GetBadgesEndpoint):     apitest.JSON(http.StatusOK, `{"response":{"badges":[
			{"badgeid":13,"level":250,"completion_time":1600000000,"xp":500,"scarcity":1000},
			{"badgeid":1,"appid":440,"level":1,"communityitemid":"123","border_color":0}
		],"player_xp":9000,"player_level":42,"player_xp_needed_to_level_up":100,"player_xp_needed_current_level":8900}}`),
		apitest.Path(player.GetCommunityBadgeProgressEndpoint): apitest.JSON(http.StatusOK, `{"response":{"quests":[
			{"questid":115,"completed":true},{"questid":116,"completed":false}
		]}}`),
	}))
}

func TestGetOwnedGames(t *testing.T) {
	server := fakeSteam(t)
	client := player.NewClient(server.Transport())

	owned, err := client.GetOwnedGames(context.Background(), robinWalker, &player.GetOwnedGamesOptions{
		IncludeAppInfo:         api.Ptr(true),
		IncludePlayedFreeGames: api.Ptr(true),
		Language:               api.Ptr("english"),
	})
	require.NoError(t, err)
	require.Equal(t, uint32(2), owned.GameCount)
	require.Len(t, owned.Games, 2)
	require.Equal(t, "Team Fortress 2", owned.Games[0].Name)
	require.Equal(t, uint32(1234), owned.Games[0].PlaytimeForever)
	require.True(t, owned.Games[0].HasCommunityVisibleStats)
	require.Empty(t, owned.Games[1].Name)

	require.Equal(t,
		"key="+apitest.TestKey+"&steamid=76561197960435530&include_appinfo=true&include_played_free_games=true&language=english",
		server.LastRequest().RawQuery)
}

func TestGetOwnedGamesNoOptions(t *testing.T) {
	server := fakeSteam(t)
	client := player.NewClient(server.Transport())

	_, err := client.GetOwnedGames(context.Background(), robinWalker, nil)
	require.NoError(t, err)
	require.Equal(t, "key="+apitest.TestKey+"&steamid=76561197960435530", server.LastRequest().RawQuery)
}

func TestGetOwnedGamesProtobufInput(t *testing.T) {
	server := fakeSteam(t)
	client := player.NewClient(server.Transport(func(options *api.HttpTransportOptions) {
		options.InputEncoding = api.ProtobufInput
	}))

	_, err := client.GetOwnedGames(context.Background(), robinWalker, &player.GetOwnedGamesOptions{
		SkipUnvettedApps: api.Ptr(false),
	})
	require.NoError(t, err)

	values, err := url.ParseQuery(server.LastRequest().RawQuery)
	require.NoError(t, err)
	message, err := base64.StdEncoding.DecodeString(values.Get("input_protobuf_encoded"))
	require.NoError(t, err)

	fields := make(map[protowire.Number]uint64)
	for len(message) > 0 {
		number, wireType, n := protowire.ConsumeTag(message)
		require.Greater(t, n, 0)
		require.Equal(t, protowire.VarintType, wireType)
		message = message[n:]

		value, n := protowire.ConsumeVarint(message)
		require.Greater(t, n, 0)
		message = message[n:]
		fields[number] = value
	}

	require.Equal(t, map[protowire.Number]uint64{
		1: robinWalker.Uint64(),
		6: 0,
	}, fields)
}

func TestGetRecentlyPlayedGames(t *testing.T) {
	server := fakeSteam(t)
	client := player.NewClient(server.Transport())

	recent, err := client.GetRecentlyPlayedGames(context.Background(), robinWalker, &player.GetRecentlyPlayedGamesOptions{
		Count: api.Ptr(uint32(1)),
	})
	require.NoError(t, err)
	require.Equal(t, uint32(1), recent.TotalCount)
	require.Equal(t, uint32(60), recent.Games[0].Playtime2Weeks)
	require.Equal(t, "key="+apitest.TestKey+"&steamid=76561197960435530&count=1", server.LastRequest().RawQuery)
}

func TestGetSteamLevel(t *testing.T) {
	server := fakeSteam(t)
	client := player.NewClient(server.Transport())

	level, err := client.GetSteamLevel(context.Background(), robinWalker)
	require.NoError(t, err)
	require.Equal(t, uint32(42), level.PlayerLevel)
	require.Equal(t, "/IPlayerService/GetSteamLevel/v1/", server.LastRequest().Path)
}

func TestGetBadges(t *testing.T) {
	server := fakeSteam(t)
	client := player.NewClient(server.Transport())

	badges, err := client.GetBadges(context.Background(), robinWalker)
	require.NoError(t, err)
	require.Len(t, badges.Badges, 2)
	require.Equal(t, uint32(250), badges.Badges[0].Level)
	require.Equal(t, uint32(440), badges.Badges[1].AppID)
	require.Equal(t, uint32(9000), badges.PlayerXP)
	require.Equal(t, uint32(100), badges.PlayerXPNeededToLevelUp)
}

func TestGetCommunityBadgeProgress(t *testing.T) {
	server := fakeSteam(t)
	client := player.NewClient(server.Transport())

	progress, err := client.GetCommunityBadgeProgress(context.Background(), robinWalker, &player.GetCommunityBadgeProgressOptions{
		BadgeID: api.Ptr(uint32(2)),
	})
	require.NoError(t, err)
	require.Equal(t, []player.Quest{{QuestID: 115, Completed: true}, {QuestID: 116}}, progress.Quests)
	require.Equal(t, "key="+apitest.TestKey+"&steamid=76561197960435530&badgeid=2", server.LastRequest().RawQuery)
}

func TestPrivateProfile(t *testing.T) {
	server := apitest.NewServer(t, apitest.JSON(http.StatusOK, `{"response":{}}`))
	client := player.NewClient(server.Transport())

	owned, err := client.GetOwnedGames(context.Background(), robinWalker, nil)
	require.NoError(t, err)
	require.Zero(t, owned.GameCount)
	require.Empty(t, owned.Games)
}
