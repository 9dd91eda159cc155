package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/xcursor/internal/cursorfile"
	"github.com/samcharles93/xcursor/internal/logger"
	"github.com/samcharles93/xcursor/pkg/xcursor"
)

func exportCmd() *cli.Command {
	var (
		outDir string
		size   int
	)

	return &cli.Command{
		Name:      "export",
		Usage:     "Write cursor frames as PNG files",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output directory",
				Required:    true,
				Destination: &outDir,
			},
			&cli.IntFlag{
				Name:        "size",
				Aliases:     []string{"s"},
				Usage:       "export only the nominal size closest to this (0 = all sizes)",
				Destination: &size,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			if cmd.NArg() != 1 {
				return cli.Exit("error: exactly one cursor file is required", 1)
			}
			if size < 0 {
				return cli.Exit("error: --size must not be negative", 1)
			}
			path := cmd.Args().First()

			cf, err := cursorfile.Open(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: decode %s [%s]: %v", path, xcursor.Kind(err), err), 1)
			}
			defer func() { _ = cf.Close() }()

			written, err := exportFrames(cf.Document, outDir, displayName(path), uint32(size))
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: export: %v", err), 1)
			}
			for _, p := range written {
				log.Info("wrote frame", "path", p)
			}
			if len(written) == 0 {
				log.Warn("cursor has no images", "file", path)
			}
			return nil
		},
	}
}

// exportFrames writes the selected frames of doc into dir as
// <base>_<size>_<n>.png, n counting frames within one nominal size.
// A zero size selects every image.
func exportFrames(doc *xcursor.Document, dir, base string, size uint32) ([]string, error) {
	images := doc.Images
	if size != 0 {
		images = doc.Frames(doc.BestSize(size))
	}
	if len(images) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	seen := make(map[uint32]int)
	written := make([]string, 0, len(images))
	for i := range images {
		img := &images[i]
		n := seen[img.NominalSize()]
		seen[img.NominalSize()] = n + 1

		path := filepath.Join(dir, frameName(base, img.NominalSize(), n))
		if err := writePNG(path, img); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func frameName(base string, size uint32, n int) string {
	return fmt.Sprintf("%s_%d_%d.png", base, size, n)
}

func writePNG(path string, img *xcursor.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img.RGBA()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
