package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var tableFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "limit",
		Usage:   "only load the first N names from the table (0 for all)",
		EnvVars: []string{"NAMELOOKUP_LIMIT"},
	},
}

func run(args []string) error {

	app := cli.App{
		Name:    "namelookup",
		Usage:   "look up names in census frequency tables, backed by a persistent binary search tree",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				EnvVars: []string{"NAMELOOKUP_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, os.Stderr)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		&cli.Command{
			Name:      "lookup",
			Usage:     "load a name table and look up names",
			ArgsUsage: "<path> <name>...",
			Flags:     tableFlags,
			Action:    runLookup,
		},
		&cli.Command{
			Name:      "remove",
			Usage:     "load a name table, remove names, and report which were present",
			ArgsUsage: "<path> <name>...",
			Flags: append([]cli.Flag{
				&cli.BoolFlag{
					Name:  "draw",
					Usage: "render the tree before and after removal",
				},
			}, tableFlags...),
			Action: runRemove,
		},
		&cli.Command{
			Name:      "draw",
			Usage:     "load a name table and render the binary search tree",
			ArgsUsage: "<path>",
			Flags: append([]cli.Flag{
				&cli.IntFlag{
					Name:  "max-depth",
					Usage: "stop rendering below this depth (0 for unlimited)",
				},
				&cli.BoolFlag{
					Name:  "values",
					Usage: "include frequency and rank in node labels",
				},
			}, tableFlags...),
			Action: runDraw,
		},
		&cli.Command{
			Name:      "verify",
			Usage:     "load a name table and check the binary search tree invariants",
			ArgsUsage: "<path>",
			Flags:     tableFlags,
			Action:    runVerify,
		},
		cmdStress,
	}
	return app.Run(args)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
