package preview

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	headerHeight   = 120
	badgeRadius    = 40
	ribbonHeight   = 60
	ribbonBottom   = 40
	ribbonPaddingX = 28
)

type Branding struct {
	SiteName        string
	Tagline         string
	Initials        string
	Color           string
	DefaultCategory string
}

type fonts struct {
	bold    *opentype.Font
	regular *opentype.Font
}

var (
	loadFontsOnce sync.Once
	loadedFonts   fonts
	loadFontsErr  error
)

func goFonts() (fonts, error) {
	loadFontsOnce.Do(func() {
		bold, err := opentype.Parse(gobold.TTF)
		if err != nil {
			loadFontsErr = fmt.Errorf("parse bold font: %w", err)
			return
		}
		regular, err := opentype.Parse(goregular.TTF)
		if err != nil {
			loadFontsErr = fmt.Errorf("parse regular font: %w", err)
			return
		}
		loadedFonts = fonts{bold: bold, regular: regular}
	})
	return loadedFonts, loadFontsErr
}

// faces are not safe for concurrent use, so every render builds its own.
func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// drawOverlay paints the header band, logo badge and category ribbon onto img.
func drawOverlay(img *image.RGBA, brand Branding, category, categoryColor string) error {
	fs, err := goFonts()
	if err != nil {
		return err
	}

	dc := gg.NewContextForRGBA(img)
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	dc.SetRGBA(0, 0, 0, 0.55)
	dc.DrawRectangle(0, 0, w, headerHeight)
	dc.Fill()

	badgeX, badgeY := 30.0+badgeRadius, float64(headerHeight)/2
	dc.SetHexColor(brand.Color)
	dc.DrawCircle(badgeX, badgeY, badgeRadius)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(3)
	dc.DrawCircle(badgeX, badgeY, badgeRadius)
	dc.Stroke()

	initialsFace, err := newFace(fs.bold, 30)
	if err != nil {
		return err
	}
	defer initialsFace.Close()
	dc.SetFontFace(initialsFace)
	dc.DrawStringAnchored(brand.Initials, badgeX, badgeY, 0.5, 0.4)

	textX := badgeX + badgeRadius + 24
	titleFace, err := newFace(fs.bold, 36)
	if err != nil {
		return err
	}
	defer titleFace.Close()
	dc.SetFontFace(titleFace)
	dc.DrawStringAnchored(brand.SiteName, textX, badgeY-18, 0, 0.4)

	taglineFace, err := newFace(fs.regular, 22)
	if err != nil {
		return err
	}
	defer taglineFace.Close()
	dc.SetRGBA(1, 1, 1, 0.85)
	dc.SetFontFace(taglineFace)
	dc.DrawStringAnchored(brand.Tagline, textX, badgeY+22, 0, 0.4)

	label := strings.ToUpper(strings.TrimSpace(category))
	if label == "" {
		label = brand.DefaultCategory
	}
	labelFace, err := newFace(fs.bold, 30)
	if err != nil {
		return err
	}
	defer labelFace.Close()
	dc.SetFontFace(labelFace)
	labelW, _ := dc.MeasureString(label)

	ribbonY := h - ribbonBottom - ribbonHeight
	dc.SetHexColor(categoryColor)
	dc.DrawRectangle(0, ribbonY, labelW+2*ribbonPaddingX, ribbonHeight)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(label, ribbonPaddingX, ribbonY+ribbonHeight/2, 0, 0.4)

	return nil
}

// initials takes the first letter of up to two words of name.
func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		out = append(out, r[0])
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}
