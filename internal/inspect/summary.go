// Package inspect builds printable summaries of decoded cursor files.
package inspect

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/samcharles93/xcursor/pkg/xcursor"
)

type Summary struct {
	ID         string           `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string           `json:"name" yaml:"name"`
	Bytes      int              `json:"bytes" yaml:"bytes"`
	Compressed bool             `json:"compressed,omitempty" yaml:"compressed,omitempty"`
	Digest     string           `json:"blake3,omitempty" yaml:"blake3,omitempty"`
	Version    uint32           `json:"version" yaml:"version"`
	Entries    uint32           `json:"toc_entries" yaml:"toc_entries"`
	Comments   []CommentSummary `json:"comments" yaml:"comments"`
	Images     []ImageSummary   `json:"images" yaml:"images"`
	Sizes      []SizeSummary    `json:"sizes" yaml:"sizes"`
	Error      *ErrorSummary    `json:"error,omitempty" yaml:"error,omitempty"`
}

type CommentSummary struct {
	Kind   string `json:"kind" yaml:"kind"`
	Length uint32 `json:"length" yaml:"length"`
	Text   string `json:"text" yaml:"text"`
}

type ImageSummary struct {
	Index       int    `json:"index" yaml:"index"`
	NominalSize uint32 `json:"nominal_size" yaml:"nominal_size"`
	Width       uint32 `json:"width" yaml:"width"`
	Height      uint32 `json:"height" yaml:"height"`
	XHot        uint32 `json:"xhot" yaml:"xhot"`
	YHot        uint32 `json:"yhot" yaml:"yhot"`
	Delay       uint32 `json:"delay_ms" yaml:"delay_ms"`
}

// SizeSummary groups the frames authored for one nominal size.
type SizeSummary struct {
	NominalSize uint32 `json:"nominal_size" yaml:"nominal_size"`
	Frames      int    `json:"frames" yaml:"frames"`
	DurationMS  uint64 `json:"duration_ms" yaml:"duration_ms"`
}

type ErrorSummary struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// Summarize describes doc, which must have been decoded from data. When
// compressed is set, data is the inflated payload.
func Summarize(name string, data []byte, compressed bool, doc *xcursor.Document) Summary {
	s := Summary{
		Name:       name,
		Bytes:      len(data),
		Compressed: compressed,
		Digest:     Digest(data),
		Comments:   make([]CommentSummary, 0, len(doc.Comments)),
		Images:     make([]ImageSummary, 0, len(doc.Images)),
	}
	if h, err := xcursor.ParseHeader(data); err == nil {
		s.Version = h.Version
		s.Entries = h.NTOC
	}

	for _, c := range doc.Comments {
		s.Comments = append(s.Comments, CommentSummary{
			Kind:   c.Kind().String(),
			Length: c.Length,
			Text:   c.String,
		})
	}
	for i, img := range doc.Images {
		s.Images = append(s.Images, ImageSummary{
			Index:       i,
			NominalSize: img.NominalSize(),
			Width:       img.Width,
			Height:      img.Height,
			XHot:        img.XHot,
			YHot:        img.YHot,
			Delay:       img.Delay,
		})
	}

	sizes := doc.NominalSizes()
	s.Sizes = make([]SizeSummary, 0, len(sizes))
	for _, size := range sizes {
		frames := doc.Frames(size)
		var total uint64
		for _, f := range frames {
			total += uint64(f.Delay)
		}
		s.Sizes = append(s.Sizes, SizeSummary{NominalSize: size, Frames: len(frames), DurationMS: total})
	}
	return s
}

// Failure describes a file that could not be decoded.
func Failure(name string, err error) Summary {
	return Summary{
		Name:  name,
		Error: &ErrorSummary{Kind: xcursor.Kind(err), Message: err.Error()},
	}
}

// Digest returns the hex BLAKE3-256 of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
