package config

import (
	flag "github.com/spf13/pflag"
)

// PerftConfig controls the perft command.
type PerftConfig struct {
	Depth     int `koanf:"depth"`
	Workers   int `koanf:"workers"`
	TableSize int `koanf:"table-size"`
}

var PerftConfigDefault = PerftConfig{
	Depth:     3,
	Workers:   4,
	TableSize: 1 << 20,
}

func PerftConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.Int(prefix+".depth", PerftConfigDefault.Depth, "perft search depth in plies")
	f.Int(prefix+".workers", PerftConfigDefault.Workers, "root moves searched in parallel")
	f.Int(prefix+".table-size", PerftConfigDefault.TableSize, "transposition table entries (0 disables the table)")
}

// Validate checks the perft settings.
func (c *PerftConfig) Validate() error {
	if c.Depth < 1 {
		return invalid("perft.depth", c.Depth)
	}
	if c.Workers < 1 {
		return invalid("perft.workers", c.Workers)
	}
	if c.TableSize < 0 {
		return invalid("perft.table-size", c.TableSize)
	}
	return nil
}
