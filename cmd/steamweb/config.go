package main

import (
	"errors"
	"time"

	"github.com/escrow-tf/steamweb/api"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var (
	ErrConfigRead    = errors.New("failed to read config file")
	ErrConfigDecode  = errors.New("failed to decode config")
	ErrConfigInvalid = errors.New("invalid config")
)

var validate = validator.New()

type appConfig struct {
	SteamAPIKey   string        `mapstructure:"steam_api_key" validate:"required"`
	BaseURL       string        `mapstructure:"base_url" validate:"required,url"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gte=0"`
	LogLevel      string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	ProtobufInput bool          `mapstructure:"protobuf_input"`
}

// configPaths lists the directories searched for steamweb.yml.
func configPaths() []string {
	var paths []string
	if home, errHomeDir := homedir.Dir(); errHomeDir == nil {
		paths = append(paths, home)
	}
	return append(paths, ".")
}

// readConfig loads steamweb.yml from paths, then STEAMWEB_* environment
// variables. A missing file is not an error.
func readConfig(v *viper.Viper, paths []string, config *appConfig) error {
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	v.SetConfigName("steamweb")
	v.SetConfigType("yml")
	v.SetEnvPrefix("steamweb")
	v.AutomaticEnv()

	// defaults also register the keys AutomaticEnv looks up on Unmarshal
	v.SetDefault("steam_api_key", "")
	v.SetDefault("base_url", api.BaseURL)
	v.SetDefault("timeout", "30s")
	v.SetDefault("log_level", "warn")
	v.SetDefault("protobuf_input", false)

	if errReadConfig := v.ReadInConfig(); errReadConfig != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(errReadConfig, &notFound) {
			return errors.Join(errReadConfig, ErrConfigRead)
		}
	}

	if errUnmarshal := v.Unmarshal(config); errUnmarshal != nil {
		return errors.Join(errUnmarshal, ErrConfigDecode)
	}

	if errValidate := validate.Struct(config); errValidate != nil {
		return errors.Join(errValidate, ErrConfigInvalid)
	}

	return nil
}
