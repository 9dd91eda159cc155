package xcursor

import (
	"fmt"
	"image"
	"math"
)

func parseImage(data []byte, off uint64) (Image, error) {
	ch, err := decodeChunkHeader(data, off)
	if err != nil {
		return Image{}, err
	}
	var fields [5]uint32
	b, err := span(data, off+chunkHeaderSize, uint64(len(fields))*4)
	if err != nil {
		return Image{}, err
	}
	card32s(fields[:], b)

	img := Image{
		ChunkHeader: ch,
		Width:       fields[0],
		Height:      fields[1],
		XHot:        fields[2],
		YHot:        fields[3],
		Delay:       fields[4],
	}

	// Both factors fit in 32 bits, so count cannot overflow 64. The byte size
	// can, so it saturates and span rejects it before anything is allocated.
	count := uint64(img.Width) * uint64(img.Height)
	size := uint64(math.MaxUint64)
	if count <= math.MaxUint64/pixelSize {
		size = count * pixelSize
	}
	raw, err := span(data, off+imagePrologue, size)
	if err != nil {
		return Image{}, err
	}
	img.Pixels = make([]uint32, count)
	card32s(img.Pixels, raw)
	return img, nil
}

func (img *Image) validate() error {
	switch {
	case img.Version != ImageVersion:
		return fmt.Errorf("%w: got %d want %d", ErrInvalidImageVersion, img.Version, ImageVersion)
	case img.Width >= ImageMaxSize:
		return fmt.Errorf("%w: %d exceeds limit %d", ErrInvalidImageWidth, img.Width, ImageMaxSize-1)
	case img.Height >= ImageMaxSize:
		return fmt.Errorf("%w: %d exceeds limit %d", ErrInvalidImageHeight, img.Height, ImageMaxSize-1)
	case img.XHot >= img.Width:
		return fmt.Errorf("%w: %d not below width %d", ErrInvalidImageXHot, img.XHot, img.Width)
	case img.YHot >= img.Height:
		return fmt.Errorf("%w: %d not below height %d", ErrInvalidImageYHot, img.YHot, img.Height)
	}
	return nil
}

// NominalSize is the size class the image was authored for, as stored in the
// chunk subtype.
func (img *Image) NominalSize() uint32 {
	return img.Subtype
}

// At returns the packed ARGB pixel at (x, y). It returns 0 outside the image.
func (img *Image) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= int(img.Width) || y >= int(img.Height) {
		return 0
	}
	return img.Pixels[y*int(img.Width)+x]
}

// RGBA converts the frame to an image.RGBA. XCursor pixels are already
// alpha-premultiplied, which is what image.RGBA stores.
func (img *Image) RGBA() *image.RGBA {
	w, h := int(img.Width), int(img.Height)
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, p := range img.Pixels {
		o := i * 4
		out.Pix[o+0] = uint8(p >> 16)
		out.Pix[o+1] = uint8(p >> 8)
		out.Pix[o+2] = uint8(p)
		out.Pix[o+3] = uint8(p >> 24)
	}
	return out
}
