package processor

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/photomini/internal/entity"

	_ "golang.org/x/image/webp" // imaging registers bmp and tiff itself
)

const (
	JPEGQuality = 85
	MiniSuffix  = "_mini"
)

// ImageProcessor turns one encoded source image into its preview copy.
type ImageProcessor interface {
	Process(src *entity.SourceImage, r io.Reader, w io.Writer, minDimension int) (entity.TargetDimensions, error)
}

type imageProcessor struct{}

func NewImageProcessor() ImageProcessor {
	return &imageProcessor{}
}

// Process decodes r, records the source size on src, and writes the resized
// image to w in the format implied by src.Ext.
func (p *imageProcessor) Process(src *entity.SourceImage, r io.Reader, w io.Writer, minDimension int) (entity.TargetDimensions, error) {
	img, err := Decode(r)
	if err != nil {
		return entity.TargetDimensions{}, fmt.Errorf("failed to decode image: %w", err)
	}

	img = Flatten(img)

	bounds := img.Bounds()
	src.Width, src.Height = bounds.Dx(), bounds.Dy()

	dims, err := TargetSize(src.Width, src.Height, minDimension)
	if err != nil {
		return entity.TargetDimensions{}, err
	}

	resized := Resize(img, dims)

	if err := Encode(w, resized, src.Ext); err != nil {
		return entity.TargetDimensions{}, fmt.Errorf("failed to encode image: %w", err)
	}
	return dims, nil
}

func Decode(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

// TargetSize maps the shorter side to minDimension and scales the other side by
// the same ratio, rounded to the nearest pixel. Squares take the landscape branch.
func TargetSize(width, height, minDimension int) (entity.TargetDimensions, error) {
	if minDimension <= 0 {
		return entity.TargetDimensions{}, entity.ErrInvalidMinDimension
	}
	if width <= 0 || height <= 0 {
		return entity.TargetDimensions{}, fmt.Errorf("%w: %dx%d", entity.ErrInvalidDimensions, width, height)
	}

	if width < height {
		return entity.TargetDimensions{
			Width:  minDimension,
			Height: scale(height, minDimension, width),
		}, nil
	}
	return entity.TargetDimensions{
		Width:  scale(width, minDimension, height),
		Height: minDimension,
	}, nil
}

func scale(side, target, shorter int) int {
	return int(math.Round(float64(side) * float64(target) / float64(shorter)))
}

type opaquer interface {
	Opaque() bool
}

// NeedsFlatten reports whether img is palette-indexed or has any non-opaque pixel.
func NeedsFlatten(img image.Image) bool {
	if _, ok := img.(*image.Paletted); ok {
		return true
	}
	if o, ok := img.(opaquer); ok {
		return !o.Opaque()
	}
	return false
}

// Flatten composites img onto an opaque white background when NeedsFlatten says so.
func Flatten(img image.Image) image.Image {
	if !NeedsFlatten(img) {
		return img
	}
	b := img.Bounds()
	background := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(background, img, image.Pt(0, 0), 1.0)
}

func Resize(img image.Image, dims entity.TargetDimensions) *image.NRGBA {
	return imaging.Resize(img, dims.Width, dims.Height, imaging.Lanczos)
}

// Encode writes img to w using the encoder implied by ext (case-insensitive).
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality))
	case ".png":
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	case ".webp":
		return nativewebp.Encode(w, img, nil)
	}

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return fmt.Errorf("%w: %q", entity.ErrUnsupportedFormat, ext)
	}
	return imaging.Encode(w, img, format)
}

// OutputName returns "{stem}_mini{ext}" keeping the extension's case.
func OutputName(src entity.SourceImage) string {
	return src.Stem + MiniSuffix + src.Ext
}
