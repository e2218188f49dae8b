// chessmatch plays a chess match on the terminal and counts legal move
// trees with perft.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	flag "github.com/spf13/pflag"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/logging"
	"github.com/lgbarn/chessmatch-go/internal/match"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, rest, err := config.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		usage(stderr)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "chessmatch: %v\n", err)
		return 2
	}

	logger, closer, err := logging.New(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "chessmatch: %v\n", err)
		return 2
	}
	defer closer.Close()
	slog.SetDefault(logger)

	command := "play"
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}

	switch command {
	case "play":
		err = runPlay(cfg, logger, strings.Join(rest, " "), stdin, stdout)
	case "perft":
		err = runPerft(cfg, logger, rest, stdout)
	case "version":
		fmt.Fprintf(stdout, "chessmatch version %s\n", programVersion)
	default:
		fmt.Fprintf(stderr, "chessmatch: unknown command %q\n", command)
		usage(stderr)
		return 2
	}
	if err != nil {
		logger.Error("command failed", "command", command, "err", err)
		fmt.Fprintf(stderr, "chessmatch: %v\n", err)
		return 1
	}
	return 0
}

// newMatch builds a match from fen, or the standard start when fen is
// empty, with the configured options and a generated name for the logs.
func newMatch(cfg *config.Config, logger *slog.Logger, fen string) (*match.Match, error) {
	opts := []match.Option{
		match.WithLogger(logger.With("package", "match")),
		match.WithMoveCacheSize(cfg.MoveCacheSize),
		match.WithDefaultPromotion(cfg.PromotionKind()),
		match.WithName(petname.Generate(2, "-")),
	}
	if fen == "" {
		return match.New(opts...)
	}
	return match.NewFromFEN(fen, opts...)
}

func usage(w io.Writer) {
	f := flag.NewFlagSet("chessmatch", flag.ContinueOnError)
	config.AddOptions(f)

	fmt.Fprintf(w, "Usage: chessmatch [options] [command] [args...]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  play [fen]          play a match read from standard input (default)\n")
	fmt.Fprintf(w, "  perft [depth] [fen] count leaf nodes below each root move\n")
	fmt.Fprintf(w, "  version             print the version\n\n")
	fmt.Fprintf(w, "Options:\n")
	fmt.Fprint(w, f.FlagUsages())
}
