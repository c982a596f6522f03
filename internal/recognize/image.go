package recognize

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Normalization parameters. The service rejects uploads over 1 MiB, so
// encoding aims below a slightly smaller target before giving up.
const (
	maxDimension     = 1024
	targetBytes      = 950_000
	maxUploadBytes   = 1 << 20
	startQuality     = 0.70
	startQualityStep = 0.10
	minQuality       = 0.20
)

// NormalizeImage prepares a photo for upload: downscale so the longest
// side is at most 1024 pixels and re-encode as JPEG, lowering quality
// until the result fits the target size. The quality step starts at 0.10
// and halves each round, with a hard floor of 0.20. Returns
// ErrImageTooLarge when the smallest encoding still exceeds 1 MiB.
func NormalizeImage(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	img = downscale(img)

	quality := startQuality
	step := startQualityStep
	encoded, err := encodeJPEG(img, quality)
	if err != nil {
		return nil, err
	}

	// The halving step converges, so bound the rounds as well as the floor.
	for round := 0; round < 8 && len(encoded) > targetBytes && quality > minQuality; round++ {
		quality -= step
		step /= 2
		if quality < minQuality {
			quality = minQuality
		}
		encoded, err = encodeJPEG(img, quality)
		if err != nil {
			return nil, err
		}
	}

	if len(encoded) > maxUploadBytes {
		return nil, ErrImageTooLarge
	}
	return encoded, nil
}

func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxDimension && bounds.Dy() <= maxDimension {
		return img
	}
	return imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
}

func encodeJPEG(img image.Image, quality float64) ([]byte, error) {
	var buf bytes.Buffer
	err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(int(quality*100+0.5)))
	if err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
