package config

import (
	flag "github.com/spf13/pflag"
)

// FileLoggingConfig controls the rotated log file.
type FileLoggingConfig struct {
	Enable     bool   `koanf:"enable"`
	File       string `koanf:"file"`
	MaxSize    int    `koanf:"max-size"`
	MaxBackups int    `koanf:"max-backups"`
	MaxAge     int    `koanf:"max-age"`
	Compress   bool   `koanf:"compress"`
}

var DefaultFileLoggingConfig = FileLoggingConfig{
	Enable:     false,
	File:       "chessmatch.log",
	MaxSize:    5,  // 5Mb
	MaxBackups: 10, // keep 10 files
	MaxAge:     0,  // don't remove old files based on age
	Compress:   true,
}

func FileLoggingConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.Bool(prefix+".enable", DefaultFileLoggingConfig.Enable, "enable logging to file")
	f.String(prefix+".file", DefaultFileLoggingConfig.File, "path to log file")
	f.Int(prefix+".max-size", DefaultFileLoggingConfig.MaxSize, "log file size in Mb that will trigger log file rotation (0 = trigger disabled)")
	f.Int(prefix+".max-backups", DefaultFileLoggingConfig.MaxBackups, "maximum number of old log files to retain (0 = no limit)")
	f.Int(prefix+".max-age", DefaultFileLoggingConfig.MaxAge, "maximum number of days to retain old log files based on the timestamp encoded in their filename (0 = no limit)")
	f.Bool(prefix+".compress", DefaultFileLoggingConfig.Compress, "enable compression of old log files")
}

// Validate checks the file logging settings.
func (c *FileLoggingConfig) Validate() error {
	if c.Enable && c.File == "" {
		return invalid("file-logging.file", `""`)
	}
	if c.MaxSize < 0 {
		return invalid("file-logging.max-size", c.MaxSize)
	}
	if c.MaxBackups < 0 {
		return invalid("file-logging.max-backups", c.MaxBackups)
	}
	if c.MaxAge < 0 {
		return invalid("file-logging.max-age", c.MaxAge)
	}
	return nil
}
