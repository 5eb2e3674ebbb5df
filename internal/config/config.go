package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"kingscorner/internal/app"
	"kingscorner/internal/domain"
)

const (
	EnvPrefix     = "KINGSCORNER"
	EnvConfigPath = "KINGSCORNER_CONFIG"
	DefaultFile   = "config.yaml"
	DotEnvFile    = ".env"

	DefaultPlayers = app.MinPlayersToStartGame
)

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"

	OutputText = "text"
	OutputJSON = "json"

	// AllAutomatic as game.human_seat lets the heuristic play every seat.
	AllAutomatic = -1
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Game   GameConfig   `mapstructure:"game"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

type GameConfig struct {
	Players   int   `mapstructure:"players"`
	HumanSeat int   `mapstructure:"human_seat"`
	Seed      int64 `mapstructure:"seed"` // 0 seeds from the clock
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.players", DefaultPlayers)
	v.SetDefault("game.human_seat", 0)
	v.SetDefault("game.seed", 0)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", LogFormatConsole)
	v.SetDefault("output.format", OutputText)
}

// Load reads configuration from defaults, an optional YAML file, the
// environment (after loading .env if present) and the command-line args,
// in increasing order of precedence. The result is validated.
func Load(args []string) (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	fs := pflag.NewFlagSet("kingscorner", pflag.ContinueOnError)
	fs.IntP("players", "n", DefaultPlayers, "number of players")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("game.players", fs.Lookup("players")); err != nil {
		return nil, err
	}

	if path := configPath(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Validate checks the config against the standard deck.
func (c *Config) Validate() error {
	maxPlayers := app.MaxPlayers(len(domain.DefaultDeck()))
	if c.Game.Players < app.MinPlayersToStartGame || c.Game.Players > maxPlayers {
		return fmt.Errorf("%w: players must be between %d and %d, got %d",
			ErrInvalidConfig, app.MinPlayersToStartGame, maxPlayers, c.Game.Players)
	}
	if c.Game.HumanSeat < AllAutomatic || c.Game.HumanSeat >= c.Game.Players {
		return fmt.Errorf("%w: human_seat %d outside [-1, %d)", ErrInvalidConfig, c.Game.HumanSeat, c.Game.Players)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	switch c.Output.Format {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalidConfig, c.Output.Format)
	}
	return nil
}

// Automatic reports whether no seat takes interactive input.
func (c *Config) Automatic() bool {
	return c.Game.HumanSeat == AllAutomatic
}
