package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes raw bytes in any registered image format
func DecodeImage(data []byte) (image.Image, string, error) {
	return image.Decode(bytes.NewReader(data))
}

// Thumbnail renders img as half-block cells at most width columns wide.
// Each cell shows two pixel rows: the upper as foreground, the lower as background.
func Thumbnail(img image.Image, width int) string {
	if img == nil || width <= 0 {
		return ""
	}
	src := img.Bounds()
	if src.Dx() == 0 || src.Dy() == 0 {
		return ""
	}

	w := min(width, src.Dx())
	h := src.Dy() * w / src.Dx()
	if h < 2 {
		h = 2
	}
	if h%2 != 0 {
		h++
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)

	var b strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := 0; x < w; x++ {
			cell := lipgloss.NewStyle().
				Foreground(hexColor(dst.RGBAAt(x, y))).
				Background(hexColor(dst.RGBAAt(x, y+1)))
			b.WriteString(cell.Render("▀"))
		}
	}
	return b.String()
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
