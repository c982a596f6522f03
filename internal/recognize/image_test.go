package recognize

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makePhoto encodes a flat-color JPEG of the given size.
func makePhoto(t *testing.T, width, height int) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 120, G: 180, B: 90, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func TestNormalizeImage(t *testing.T) {
	t.Run("small image passes through under budget", func(t *testing.T) {
		out, err := NormalizeImage(makePhoto(t, 320, 240))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(out), maxUploadBytes)

		w, h := decodeSize(t, out)
		assert.Equal(t, 320, w)
		assert.Equal(t, 240, h)
	})

	t.Run("oversized image is downscaled to 1024 on the long side", func(t *testing.T) {
		out, err := NormalizeImage(makePhoto(t, 4000, 3000))
		require.NoError(t, err)

		w, h := decodeSize(t, out)
		assert.Equal(t, 1024, w)
		assert.LessOrEqual(t, h, 1024)
	})

	t.Run("portrait orientation", func(t *testing.T) {
		out, err := NormalizeImage(makePhoto(t, 900, 2400))
		require.NoError(t, err)

		w, h := decodeSize(t, out)
		assert.Equal(t, 1024, h)
		assert.LessOrEqual(t, w, 1024)
	})

	t.Run("unreadable data", func(t *testing.T) {
		_, err := NormalizeImage([]byte("definitely not an image"))
		assert.ErrorIs(t, err, ErrUnreadableImage)
	})

	t.Run("empty data", func(t *testing.T) {
		_, err := NormalizeImage(nil)
		assert.ErrorIs(t, err, ErrUnreadableImage)
	})
}

func TestDownscale(t *testing.T) {
	t.Run("within bounds is untouched", func(t *testing.T) {
		img := imaging.New(1024, 768, color.NRGBA{A: 255})
		got := downscale(img)
		assert.Equal(t, image.Rect(0, 0, 1024, 768), got.Bounds())
	})

	t.Run("aspect ratio is preserved", func(t *testing.T) {
		img := imaging.New(2048, 1024, color.NRGBA{A: 255})
		got := downscale(img)
		assert.Equal(t, 1024, got.Bounds().Dx())
		assert.Equal(t, 512, got.Bounds().Dy())
	})
}
