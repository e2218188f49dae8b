// Package config loads command-line configuration. Values come from the
// flag defaults, then an optional JSON file named by --conf.file, then the
// flags given on the command line, each layer overriding the last.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	flag "github.com/spf13/pflag"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/output"
)

// Config holds all program configuration.
type Config struct {
	Conf          ConfConfig        `koanf:"conf"`
	LogLevel      string            `koanf:"log-level"`
	LogType       string            `koanf:"log-type"`
	FileLogging   FileLoggingConfig `koanf:"file-logging"`
	MoveCacheSize int               `koanf:"move-cache-size"`
	Promotion     string            `koanf:"promotion"`
	Color         string            `koanf:"color"`
	Perft         PerftConfig       `koanf:"perft"`
}

// ConfConfig locates an optional configuration file.
type ConfConfig struct {
	File string `koanf:"file"`
}

// ConfigDefault is the configuration when no file or flag overrides it.
var ConfigDefault = Config{
	LogLevel:      "info",
	LogType:       "text",
	FileLogging:   DefaultFileLoggingConfig,
	MoveCacheSize: 32,
	Promotion:     "queen",
	Color:         string(output.ColorAuto),
	Perft:         PerftConfigDefault,
}

// AddOptions registers every configuration flag on f.
func AddOptions(f *flag.FlagSet) {
	f.String("conf.file", ConfigDefault.Conf.File, "JSON configuration file")
	f.String("log-level", ConfigDefault.LogLevel, "log level: debug, info, warn or error")
	f.String("log-type", ConfigDefault.LogType, "log format: text or json")
	FileLoggingConfigAddOptions("file-logging", f)
	f.Int("move-cache-size", ConfigDefault.MoveCacheSize, "legal move grids cached per match (0 disables the cache)")
	f.String("promotion", ConfigDefault.Promotion, "piece a pawn promotes to when none is given: queen, rook, bishop or knight")
	f.String("color", ConfigDefault.Color, "board colours: auto, always or never")
	PerftConfigAddOptions("perft", f)
}

// Parse loads the configuration from args and returns it with the
// remaining positional arguments. pflag.ErrHelp is returned unwrapped when
// help is requested.
func Parse(args []string) (*Config, []string, error) {
	f := flag.NewFlagSet("chessmatch", flag.ContinueOnError)
	AddOptions(f)
	if err := f.Parse(args); err != nil {
		return nil, nil, err
	}

	k := koanf.New(".")
	path, err := f.GetString("conf.file")
	if err != nil {
		return nil, nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, nil, errors.Wrapf(err, "loading config file %s", path)
		}
	}
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, nil, errors.Wrap(err, "loading flags")
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return &cfg, f.Args(), nil
}

// Validate checks every value and wraps failures in ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return invalid("log-level", c.LogLevel)
	}
	switch c.LogType {
	case "text", "json":
	default:
		return invalid("log-type", c.LogType)
	}
	if err := c.FileLogging.Validate(); err != nil {
		return err
	}
	if c.MoveCacheSize < 0 {
		return invalid("move-cache-size", c.MoveCacheSize)
	}
	if c.PromotionKind() == chess.NoKind {
		return invalid("promotion", c.Promotion)
	}
	if _, err := output.ParseColorMode(c.Color); err != nil {
		return invalid("color", c.Color)
	}
	return c.Perft.Validate()
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

// PromotionKind maps Promotion to a piece kind, accepting full names and
// FEN letters. It returns NoKind for anything that is not a legal choice.
func (c *Config) PromotionKind() chess.Kind {
	name := strings.ToLower(strings.TrimSpace(c.Promotion))
	var kind chess.Kind
	if len(name) == 1 {
		kind = chess.KindFromLetter(name[0])
	} else {
		for _, k := range engine.PromotionKinds {
			if strings.EqualFold(k.String(), name) {
				kind = k
			}
		}
	}
	if !kind.IsPromotionChoice() {
		return chess.NoKind
	}
	return kind
}

// ColorMode returns the parsed colour mode. Call after Validate.
func (c *Config) ColorMode() output.ColorMode {
	mode, err := output.ParseColorMode(c.Color)
	if err != nil {
		return output.ColorAuto
	}
	return mode
}

func invalid(key string, value any) error {
	return fmt.Errorf("%s %v: %w", key, value, errors.ErrInvalidConfig)
}
