package inspect

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func writeText(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "XCursor Inspect: %s\n", s.Name)
	if s.Error != nil {
		row(bw, "error", s.Error.Kind)
		row(bw, "message", s.Error.Message)
		return bw.Flush()
	}

	size := FormatBytes(uint64(s.Bytes))
	if s.Compressed {
		size += " (zstd)"
	}
	row(bw, "size", size)
	row(bw, "blake3", s.Digest)
	row(bw, "version", fmt.Sprintf("0x%x", s.Version))
	row(bw, "toc_entries", fmt.Sprintf("%d", s.Entries))

	section(bw, "Sizes")
	if len(s.Sizes) == 0 {
		fmt.Fprintln(bw, "(no images)")
	}
	for _, sz := range s.Sizes {
		line := fmt.Sprintf("%d frame(s)", sz.Frames)
		if sz.Frames > 1 {
			line += fmt.Sprintf(", %d ms cycle", sz.DurationMS)
		}
		row(bw, fmt.Sprintf("%dpx", sz.NominalSize), line)
	}

	if len(s.Images) > 0 {
		section(bw, "Images")
		for _, img := range s.Images {
			fmt.Fprintf(bw, "#%-3d size=%-4d %dx%d hot=(%d,%d) delay=%dms\n",
				img.Index, img.NominalSize, img.Width, img.Height, img.XHot, img.YHot, img.Delay)
		}
	}

	if len(s.Comments) > 0 {
		section(bw, "Comments")
		for _, c := range s.Comments {
			text := c.Text
			if text == "" && c.Length > 0 {
				text = fmt.Sprintf("(%d bytes, not UTF-8)", c.Length)
			}
			row(bw, c.Kind, text)
		}
	}
	return bw.Flush()
}

func section(w io.Writer, title string) {
	line := strings.Repeat("-", len(title)+8)
	fmt.Fprintf(w, "\n%s\n--- %s ---\n%s\n", line, title, line)
}

func row(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "%-24s %s\n", label+":", value)
}

func FormatBytes(b uint64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.2f GiB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.2f MiB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.2f KiB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
