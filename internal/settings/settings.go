// Package settings loads CLI settings from an optional file, BRANDKIT_*
// environment variables and defaults, using Viper.
package settings

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/brandkit/internal/fontloader"
	"github.com/alexisbeaulieu97/brandkit/internal/fonts"
)

const (
	envPrefix      = "BRANDKIT"
	configName     = "brandkit"
	defaultFontDir = "fonts"
)

// Settings is the resolved CLI configuration.
type Settings struct {
	Log   LogSettings  `mapstructure:"log"`
	Fonts FontSettings `mapstructure:"fonts"`
}

// LogSettings controls the zerolog output.
type LogSettings struct {
	Level string `mapstructure:"level"`
	Human bool   `mapstructure:"human"`
}

// FontSettings controls the native font fetch.
type FontSettings struct {
	ServiceURL string        `mapstructure:"service_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	UserAgent  string        `mapstructure:"user_agent"`
	Dir        string        `mapstructure:"dir"`
}

// Load reads settings from path, or from brandkit.yaml in the working
// directory and $HOME/.config/brandkit when path is empty. A missing file is
// not an error. Environment variables override the file, with nesting
// mapped to underscores (BRANDKIT_FONTS_TIMEOUT=2s).
func Load(path string) (*Settings, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/brandkit")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}
	return &s, nil
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.human", true)

	v.SetDefault("fonts.service_url", fonts.DefaultServiceURL)
	v.SetDefault("fonts.timeout", fontloader.DefaultTimeout)
	v.SetDefault("fonts.user_agent", fontloader.DefaultUserAgent)
	v.SetDefault("fonts.dir", defaultFontDir)
}

// Validate checks the settings for errors.
func (s *Settings) Validate() error {
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(s.Log.Level)] {
		return fmt.Errorf("log.level must be one of: trace, debug, info, warn, error")
	}

	parsed, err := url.Parse(s.Fonts.ServiceURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("fonts.service_url must be an absolute http(s) URL")
	}
	if s.Fonts.Timeout <= 0 {
		return fmt.Errorf("fonts.timeout must be positive")
	}
	if strings.TrimSpace(s.Fonts.UserAgent) == "" {
		return fmt.Errorf("fonts.user_agent is required")
	}
	if s.Fonts.Dir == "" {
		return fmt.Errorf("fonts.dir is required")
	}
	return nil
}
