package xcursor

import "slices"

// NominalSizes returns the distinct image nominal sizes in ascending order.
func (d *Document) NominalSizes() []uint32 {
	sizes := make([]uint32, 0, len(d.Images))
	for i := range d.Images {
		sizes = append(sizes, d.Images[i].NominalSize())
	}
	slices.Sort(sizes)
	return slices.Compact(sizes)
}

// BestSize returns the nominal size closest to target, preferring the
// smaller size on a tie. It returns 0 when the document has no images.
func (d *Document) BestSize(target uint32) uint32 {
	var best uint32
	bestDist := ^uint64(0)
	for _, s := range d.NominalSizes() {
		dist := absDiff(s, target)
		if dist < bestDist {
			best, bestDist = s, dist
		}
	}
	return best
}

// Frames returns the images of the given nominal size in table of contents
// order, which is the animation order.
func (d *Document) Frames(size uint32) []Image {
	var out []Image
	for _, img := range d.Images {
		if img.NominalSize() == size {
			out = append(out, img)
		}
	}
	return out
}

// CommentsOf returns the comments of the given subtype.
func (d *Document) CommentsOf(kind CommentSubtype) []Comment {
	var out []Comment
	for _, c := range d.Comments {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

func absDiff(a, b uint32) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}
