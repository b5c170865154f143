package marionette

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next drawn frame. The PNG is
// written to Config.ScreenshotDir by the Renderer.
func (e *Editor) Screenshot(label string) {
	e.screenshots = append(e.screenshots, label)
}

// takeScreenshots returns and clears the queued labels.
func (e *Editor) takeScreenshots() []string {
	labels := e.screenshots
	e.screenshots = nil
	return labels
}

// flushScreenshots writes screen once per label.
func (r *Renderer) flushScreenshots(screen *ebiten.Image, labels []string) {
	if len(labels) == 0 {
		return
	}
	if err := os.MkdirAll(r.screenshotDir, 0o755); err != nil {
		logger().Error().Err(err).Str("dir", r.screenshotDir).Msg("screenshot directory")
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := &image.NRGBA{
		Pix:    unpremultiply(pixels),
		Stride: 4 * b.Dx(),
		Rect:   image.Rect(0, 0, b.Dx(), b.Dy()),
	}

	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		path := filepath.Join(r.screenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			logger().Error().Err(err).Msg("screenshot failed")
			continue
		}
		logger().Info().Str("path", path).Msg("screenshot saved")
	}
}

// unpremultiply converts premultiplied RGBA pixels to straight alpha in place.
func unpremultiply(pix []byte) []byte {
	for i := 0; i+3 < len(pix); i += 4 {
		a := int(pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for j := 0; j < 3; j++ {
			pix[i+j] = uint8(min(int(pix[i+j])*255/a, 255))
		}
	}
	return pix
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing anything else
// with '_'. An empty label becomes "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
