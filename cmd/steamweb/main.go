package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/escrow-tf/steamweb"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type CLI struct {
	NoColor bool `help:"Print plain JSON." name:"no-color"`

	Apps          AppsCmd          `cmd:"" help:"List apps on the Steam store."`
	Players       PlayersCmd       `cmd:"" help:"Show the current player count of an app."`
	Summaries     SummariesCmd     `cmd:"" help:"Show profile summaries."`
	Resolve       ResolveCmd       `cmd:"" help:"Resolve a vanity URL to a SteamID."`
	Owned         OwnedCmd         `cmd:"" help:"List games owned by an account."`
	Level         LevelCmd         `cmd:"" help:"Show the Steam level of an account."`
	Profile       ProfileCmd       `cmd:"" help:"Show level, badges and recent games of an account."`
	UpToDate      UpToDateCmd      `cmd:"" name:"uptodate" help:"Check whether an app version is current."`
	OffersSummary OffersSummaryCmd `cmd:"" name:"offers-summary" help:"Summarize trade offers of the key's account."`
	Version       VersionCmd       `cmd:"" help:"Print version information."`
}

func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, errLevel := zap.ParseAtomicLevel(level)
	if errLevel != nil {
		return nil, errLevel
	}

	logCfg := zap.NewProductionConfig()
	logCfg.DisableStacktrace = true
	logCfg.Level = atomicLevel

	return logCfg.Build()
}

func newClient(config appConfig, logger *zap.Logger) (*steamweb.Client, error) {
	options := []steamweb.Option{
		steamweb.WithBaseURL(config.BaseURL),
		steamweb.WithTimeout(config.Timeout),
		steamweb.WithLogger(logger),
	}
	if config.ProtobufInput {
		options = append(options, steamweb.WithProtobufInput())
	}

	return steamweb.New(config.SteamAPIKey, options...)
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("steamweb"),
		kong.Description("Query the Steam Web API."),
		kong.UsageOnError(),
	)

	if kctx.Command() == "version" {
		kctx.FatalIfErrorf(kctx.Run())
		return
	}

	var config appConfig
	if errConfig := readConfig(viper.New(), configPaths(), &config); errConfig != nil {
		kctx.FatalIfErrorf(errConfig)
	}

	logger, errLogger := newLogger(config.LogLevel)
	if errLogger != nil {
		kctx.FatalIfErrorf(errLogger)
	}

	defer func() {
		// syncing stderr fails on some platforms, nothing to do about it
		_ = logger.Sync()
	}()

	client, errClient := newClient(config, logger)
	if errClient != nil {
		kctx.FatalIfErrorf(errClient)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errRun := kctx.Run(&runContext{
		ctx:    ctx,
		client: client,
		out:    newPrinter(os.Stdout, !cli.NoColor),
	})
	if errRun != nil {
		logger.Debug("Command failed", zap.Error(errRun))
		stop()
		_ = logger.Sync()
		kctx.FatalIfErrorf(errRun)
	}
}
