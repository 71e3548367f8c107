package images

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

var ErrNoExif = errors.New("no EXIF data")

// Dimensions returns the pixel size of the image at path.
func Dimensions(path string) (width, height int, err error) {
	img, err := imaging.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open image: %w", err)
	}

	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}

// ResizeCopy writes the image at src to dst, scaled down to width pixels
// wide. Images that are already narrow enough are written unscaled. The
// output format follows the extension of dst.
func ResizeCopy(src, dst string, width, quality int) error {
	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}

	if width > 0 && img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	if err := imaging.Save(img, dst, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("saving image failed: %w", err)
	}

	return nil
}

// Description reads the EXIF ImageDescription tag of the image at path.
func Description(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return "", ErrNoExif
	}

	tag, err := x.Get(exif.ImageDescription)
	if err != nil {
		return "", ErrNoExif
	}

	desc, err := tag.StringVal()
	if err != nil {
		return "", fmt.Errorf("image description: %w", err)
	}

	desc = strings.TrimSpace(strings.TrimRight(desc, "\x00"))
	if desc == "" {
		return "", ErrNoExif
	}

	return desc, nil
}

// AltText suggests alt text for the image at path: the EXIF description if
// there is one, the file name otherwise.
func AltText(path string) string {
	if desc, err := Description(path); err == nil {
		return desc
	}

	return AltTextFromName(path)
}

// AltTextFromName turns "harbour-cats_01.jpg" into "harbour cats 01".
func AltTextFromName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	return strings.NewReplacer("-", " ", "_", " ").Replace(name)
}

// DestinationExtension normalises image extensions for copied files.
func DestinationExtension(ext string) string {
	ext = strings.ToLower(ext)
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	return ext
}

// SquarePreview writes a size×size crop of the centre of src to dst.
func SquarePreview(src, dst string, size, quality int) error {
	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("image decode failed: %w", err)
	}

	preview := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)

	if err := imaging.Save(preview, dst, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("saving preview image failed: %w", err)
	}

	return nil
}
