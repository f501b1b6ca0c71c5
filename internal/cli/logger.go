package cli

import (
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/piwi3910/tcocompare/internal/logging"
)

type loggerConfig struct {
	level  string
	format string
}

func (l *loggerConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Aliases:     []string{"l"},
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     envVars("LOG_LEVEL"),
			Destination: &l.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json)",
			Value:       string(logging.FormatConsole),
			Sources:     envVars("LOG_FORMAT"),
			Destination: &l.format,
		},
	}
}

func (l loggerConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.level),
		slog.String("format", l.format),
	)
}

// Configure builds the logger described by the flags.
func (l loggerConfig) Configure(w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(l.level)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid --log-level")
	}
	format, err := logging.ParseFormat(l.format)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid --log-format")
	}
	return logging.New(w, format, level), nil
}
