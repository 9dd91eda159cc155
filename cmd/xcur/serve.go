package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/xcursor/internal/api"
	"github.com/samcharles93/xcursor/internal/logger"
)

func serveCmd() *cli.Command {
	var (
		addr           string
		headerTimeout  time.Duration
		maxUploadBytes int64
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the cursor decode API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "read-header-timeout",
				Usage:       "time allowed to read request headers",
				Value:       30 * time.Second,
				Destination: &headerTimeout,
			},
			&cli.Int64Flag{
				Name:        "max-upload-bytes",
				Usage:       "largest accepted upload",
				Value:       api.DefaultMaxBytes,
				Destination: &maxUploadBytes,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyServeConfig(cmd, cfg, &addr, &maxUploadBytes)
			log := logger.FromContext(ctx)

			server := api.NewServer(api.NewCursorStore(), maxUploadBytes, log.With("component", "api"))
			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			e.Use(api.ServerHeader())
			server.Register(e)
			log.Info("starting server", "address", addr, "max_upload_bytes", maxUploadBytes)
			sc := echo.StartConfig{
				Address:         addr,
				BeforeServeFunc: headerTimeoutFunc(headerTimeout),
			}
			return sc.Start(ctx, e)
		},
	}
}

func headerTimeoutFunc(d time.Duration) func(*http.Server) error {
	return func(srv *http.Server) error {
		srv.ReadHeaderTimeout = d
		return nil
	}
}
