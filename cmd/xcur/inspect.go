package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/xcursor/internal/cursorfile"
	"github.com/samcharles93/xcursor/internal/inspect"
	"github.com/samcharles93/xcursor/internal/logger"
)

func inspectCmd() *cli.Command {
	var format string

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Summarize the chunks of one or more cursor files",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "output format (text, json, yaml, cbor)",
				Value:       "text",
				Destination: &format,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyOutputConfig(cmd, cfg, &format)
			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				return cli.Exit("error: at least one cursor file is required", 1)
			}
			f, err := inspect.ParseFormat(format)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			failed, err := inspectFiles(ctx, cmd.Root().Writer, f, paths)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: write summary: %v", err), 1)
			}
			if failed > 0 {
				return cli.Exit(fmt.Sprintf("error: %d of %d file(s) failed to decode", failed, len(paths)), 1)
			}
			return nil
		},
	}
}

// inspectFiles decodes every path and writes all summaries at once. Files
// that fail to decode are reported in place and counted.
func inspectFiles(ctx context.Context, w io.Writer, format inspect.Format, paths []string) (int, error) {
	log := logger.FromContext(ctx)
	summaries := make([]inspect.Summary, 0, len(paths))
	failed := 0
	for _, path := range paths {
		s, err := inspectFile(path)
		if err != nil {
			log.Debug("decode failed", "file", path, "error", err)
			summaries = append(summaries, inspect.Failure(displayName(path), err))
			failed++
			continue
		}
		summaries = append(summaries, s)
	}
	return failed, inspect.Encode(w, format, summaries...)
}

func inspectFile(path string) (inspect.Summary, error) {
	cf, err := cursorfile.Open(path)
	if err != nil {
		return inspect.Summary{}, err
	}
	defer func() { _ = cf.Close() }()
	return inspect.Summarize(displayName(path), cf.Data, cf.Compressed, cf.Document), nil
}

// displayName is the file name without its directory, .zst suffix or extension.
func displayName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".zst")
	return strings.TrimSuffix(name, filepath.Ext(name))
}
