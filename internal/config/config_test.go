package config

import (
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/output"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chessmatch.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestParse_Defaults(t *testing.T) {
	cfg, args, err := Parse(nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *cfg, ConfigDefault)
	testutil.AssertEqual(t, len(args), 0)
}

func TestParse_Flags(t *testing.T) {
	cfg, args, err := Parse([]string{
		"--log-level", "debug",
		"--log-type=json",
		"--file-logging.enable",
		"--file-logging.max-size", "10",
		"--move-cache-size", "0",
		"--promotion", "n",
		"--color", "never",
		"--perft.depth", "2",
		"perft", "extra",
	})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, cfg.LogLevel, "debug")
	testutil.AssertEqual(t, cfg.LogType, "json")
	testutil.AssertTrue(t, cfg.FileLogging.Enable)
	testutil.AssertEqual(t, cfg.FileLogging.MaxSize, 10)
	testutil.AssertEqual(t, cfg.FileLogging.File, DefaultFileLoggingConfig.File)
	testutil.AssertEqual(t, cfg.MoveCacheSize, 0)
	testutil.AssertEqual(t, cfg.PromotionKind(), chess.Knight)
	testutil.AssertEqual(t, cfg.ColorMode(), output.ColorNever)
	testutil.AssertEqual(t, cfg.Perft, PerftConfig{Depth: 2, Workers: PerftConfigDefault.Workers, TableSize: PerftConfigDefault.TableSize})
	testutil.AssertEqual(t, args, []string{"perft", "extra"})
}

func TestParse_FileThenFlags(t *testing.T) {
	path := writeConfigFile(t, `{
		"log-level": "warn",
		"promotion": "rook",
		"file-logging": {"enable": true, "file": "games.log", "max-backups": 3},
		"perft": {"depth": 4, "workers": 2, "table-size": 0}
	}`)

	cfg, _, err := Parse([]string{"--conf.file", path, "--perft.workers", "8"})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, cfg.Conf.File, path)
	testutil.AssertEqual(t, cfg.LogLevel, "warn")
	testutil.AssertEqual(t, cfg.PromotionKind(), chess.Rook)
	testutil.AssertEqual(t, cfg.FileLogging.File, "games.log")
	testutil.AssertEqual(t, cfg.FileLogging.MaxBackups, 3)
	testutil.AssertEqual(t, cfg.FileLogging.MaxSize, DefaultFileLoggingConfig.MaxSize)
	testutil.AssertEqual(t, cfg.Perft, PerftConfig{Depth: 4, Workers: 8, TableSize: 0}, "flags override the file")
}

func TestParse_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, _, err := Parse([]string{"--conf.file", filepath.Join(t.TempDir(), "absent.json")})
		if err == nil {
			t.Fatal("expected error for missing config file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		_, _, err := Parse([]string{"--conf.file", writeConfigFile(t, "{not json")})
		if err == nil {
			t.Fatal("expected error for malformed config file")
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, _, err := Parse([]string{"--no-such-flag"})
		if err == nil {
			t.Fatal("expected error for unknown flag")
		}
	})

	t.Run("help", func(t *testing.T) {
		_, _, err := Parse([]string{"--help"})
		testutil.AssertErrorIs(t, err, flag.ErrHelp)
	})

	t.Run("invalid value from file", func(t *testing.T) {
		_, _, err := Parse([]string{"--conf.file", writeConfigFile(t, `{"color": "sometimes"}`)})
		testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"log type", func(c *Config) { c.LogType = "xml" }},
		{"file logging without file", func(c *Config) { c.FileLogging.Enable = true; c.FileLogging.File = "" }},
		{"negative max size", func(c *Config) { c.FileLogging.MaxSize = -1 }},
		{"negative max backups", func(c *Config) { c.FileLogging.MaxBackups = -1 }},
		{"negative max age", func(c *Config) { c.FileLogging.MaxAge = -1 }},
		{"negative cache", func(c *Config) { c.MoveCacheSize = -1 }},
		{"promotion to king", func(c *Config) { c.Promotion = "king" }},
		{"promotion to pawn letter", func(c *Config) { c.Promotion = "p" }},
		{"color", func(c *Config) { c.Color = "rainbow" }},
		{"perft depth", func(c *Config) { c.Perft.Depth = 0 }},
		{"perft workers", func(c *Config) { c.Perft.Workers = 0 }},
		{"perft table size", func(c *Config) { c.Perft.TableSize = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ConfigDefault
			tt.modify(&cfg)
			testutil.AssertErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig)
		})
	}

	cfg := ConfigDefault
	testutil.AssertNoError(t, cfg.Validate())
}

func TestPromotionKind(t *testing.T) {
	tests := []struct {
		input string
		want  chess.Kind
	}{
		{"queen", chess.Queen},
		{"Queen", chess.Queen},
		{"q", chess.Queen},
		{"R", chess.Rook},
		{"bishop", chess.Bishop},
		{" knight ", chess.Knight},
		{"king", chess.NoKind},
		{"k", chess.NoKind},
		{"", chess.NoKind},
		{"dragon", chess.NoKind},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cfg := Config{Promotion: tt.input}
			testutil.AssertEqual(t, cfg.PromotionKind(), tt.want)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	for _, name := range []string{"debug", "INFO", "warn", "error"} {
		cfg := Config{LogLevel: name}
		_, err := cfg.SlogLevel()
		testutil.AssertNoError(t, err, "level %q", name)
	}
}
