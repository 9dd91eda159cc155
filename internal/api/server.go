// Package api serves the cursor decoder over HTTP. Uploaded cursors are
// decoded once and kept in memory so their frames can be fetched as PNG.
package api

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/xcursor/internal/cursorfile"
	"github.com/samcharles93/xcursor/internal/inspect"
	"github.com/samcharles93/xcursor/internal/logger"
	"github.com/samcharles93/xcursor/internal/version"
	"github.com/samcharles93/xcursor/internal/webui"
)

// DefaultMaxBytes caps an upload when the server is built with no limit.
const DefaultMaxBytes = 16 << 20

type Server struct {
	store    *CursorStore
	maxBytes int64
	log      logger.Logger
	clock    func() time.Time
}

func NewServer(store *CursorStore, maxBytes int64, log logger.Logger) *Server {
	if store == nil {
		store = NewCursorStore()
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Server{
		store:    store,
		maxBytes: maxBytes,
		log:      log,
		clock:    time.Now,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/", s.handleIndex)
	e.GET("/healthz", s.handleHealth)

	e.POST("/v1/cursors", s.handleCreateCursor)
	e.GET("/v1/cursors", s.handleListCursors)
	e.GET("/v1/cursors/:id", s.handleGetCursor)
	e.DELETE("/v1/cursors/:id", s.handleDeleteCursor)
	e.GET("/v1/cursors/:id/images/:index", s.handleGetImage)
}

func (s *Server) handleIndex(c *echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMETextHTMLCharsetUTF8, webui.Index())
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.String(),
	})
}

func (s *Server) handleCreateCursor(c *echo.Context) error {
	format, err := requestFormat(c)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	data, err := io.ReadAll(io.LimitReader(c.Request().Body, s.maxBytes+1))
	if err != nil {
		return writeBadRequest(c, fmt.Sprintf("read body: %v", err))
	}
	if int64(len(data)) > s.maxBytes {
		return writeDecodeError(c, fmt.Errorf("%w: body exceeds %d bytes", ErrBodyTooLarge, s.maxBytes))
	}
	if len(data) == 0 {
		return writeBadRequest(c, "request body is empty")
	}

	cf, err := cursorfile.Load(data)
	if err != nil {
		s.log.Debug("decode failed", "bytes", len(data), "error", err)
		return writeDecodeError(c, err)
	}

	summary := inspect.Summarize(c.QueryParam("name"), cf.Data, cf.Compressed, cf.Document)
	summary = s.store.Create(summary, cf.Document, s.clock())
	s.log.Info("cursor decoded",
		"id", summary.ID,
		"images", len(summary.Images),
		"comments", len(summary.Comments),
	)
	return writeSummary(c, http.StatusCreated, format, summary)
}

func (s *Server) handleListCursors(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"object": "list",
		"data":   s.store.List(),
	})
}

func (s *Server) handleGetCursor(c *echo.Context) error {
	format, err := requestFormat(c)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	id := c.Param("id")
	rec, ok := s.store.Get(id)
	if !ok {
		return writeNotFound(c, fmt.Sprintf("cursor %q not found", id))
	}
	return writeSummary(c, http.StatusOK, format, rec.Summary)
}

func (s *Server) handleDeleteCursor(c *echo.Context) error {
	id := c.Param("id")
	if !s.store.Delete(id) {
		return writeNotFound(c, fmt.Sprintf("cursor %q not found", id))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"id":      id,
		"object":  "cursor.deleted",
		"deleted": true,
	})
}

func (s *Server) handleGetImage(c *echo.Context) error {
	id := c.Param("id")
	rec, ok := s.store.Get(id)
	if !ok {
		return writeNotFound(c, fmt.Sprintf("cursor %q not found", id))
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(rec.Document.Images) {
		return writeNotFound(c, fmt.Sprintf("cursor %q has no image %q", id, c.Param("index")))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rec.Document.Images[index].RGBA()); err != nil {
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error(), "")
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// requestFormat reads the format query parameter. Summaries default to JSON.
func requestFormat(c *echo.Context) (inspect.Format, error) {
	q := c.QueryParam("format")
	if q == "" {
		return inspect.FormatJSON, nil
	}
	return inspect.ParseFormat(q)
}

func writeSummary(c *echo.Context, status int, format inspect.Format, summary inspect.Summary) error {
	var buf bytes.Buffer
	if err := inspect.Encode(&buf, format, summary); err != nil {
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error(), "")
	}
	return c.Blob(status, contentType(format), buf.Bytes())
}

func contentType(f inspect.Format) string {
	switch f {
	case inspect.FormatJSON:
		return echo.MIMEApplicationJSON
	case inspect.FormatYAML:
		return "application/yaml"
	case inspect.FormatCBOR:
		return "application/cbor"
	default:
		return echo.MIMETextPlainCharsetUTF8
	}
}

// ServerHeader stamps every response with the xcur user agent.
func ServerHeader() echo.MiddlewareFunc {
	ua := version.UserAgent()
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			c.Response().Header().Set("Server", ua)
			return next(c)
		}
	}
}
