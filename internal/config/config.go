package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/philipparndt/arruler/internal/tracking"
)

// FileName is the config file name searched for, without extension
const FileName = "arruler"

// Config is the resolved application configuration
type Config struct {
	LogLevel string

	WindowWidth  int
	WindowHeight int

	Tracking          tracking.Configuration
	ShowFeaturePoints bool

	WatchEnabled  bool
	WatchDebounce time.Duration
}

// setDefaults registers a default for every key
func setDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("window.width", 1200)
	viper.SetDefault("window.height", 800)

	viper.SetDefault("tracking.hitTest", "featurePoint")
	viper.SetDefault("tracking.selectionFactor", 3.0)
	viper.SetDefault("tracking.showFeaturePoints", true)

	viper.SetDefault("watch.enabled", true)
	viper.SetDefault("watch.debounce", "200ms")
}

// Load reads arruler.yaml from configDir when present and applies defaults
// and ARRULER_* environment overrides. A missing file is not an error.
func Load(configDir string) (Config, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.SetConfigType("yaml")
	if configDir != "" {
		viper.AddConfigPath(configDir)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("ARRULER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return current()
}

// current resolves the loaded viper state into a Config
func current() (Config, error) {
	hitTest, err := tracking.ParseHitTestType(viper.GetString("tracking.hitTest"))
	if err != nil {
		return Config{}, fmt.Errorf("tracking.hitTest: %w", err)
	}

	return Config{
		LogLevel:     viper.GetString("logLevel"),
		WindowWidth:  viper.GetInt("window.width"),
		WindowHeight: viper.GetInt("window.height"),
		Tracking: tracking.Configuration{
			HitTest:         hitTest,
			SelectionFactor: viper.GetFloat64("tracking.selectionFactor"),
		},
		ShowFeaturePoints: viper.GetBool("tracking.showFeaturePoints"),
		WatchEnabled:      viper.GetBool("watch.enabled"),
		WatchDebounce:     viper.GetDuration("watch.debounce"),
	}, nil
}

// ConfigFileUsed returns the path of the file that was read, if any
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
