package main

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/math/fixed"
)

// GlyphInfo contains rendering information for a glyph
type GlyphInfo struct {
	X       int // X position in atlas
	Y       int // Y position in atlas
	Width   int // Glyph width
	Height  int // Glyph height
	Advance int // Advance width for next glyph
}

// FontAtlas contains the rasterized glyphs of one font size and their
// positions in the atlas image.
type FontAtlas struct {
	Image   *image.RGBA
	Glyphs  map[rune]GlyphInfo
	Height  int // Font height in pixels (ascent + descent)
	Ascent  int
	Descent int
	Size    int

	measureCache map[string]measureResult
}

type measureResult struct {
	width, height int
}

// atlasRowWidth caps atlas width so large time-face sizes wrap into rows
// instead of exceeding the GL texture size limit.
const atlasRowWidth = 2048

// FontCache rasterizes atlases on demand, one per pixel size. The clock face
// requests exact scaled sizes, so sizes come and go as the slider moves.
type FontCache struct {
	data    []byte
	atlases map[int]*FontAtlas
}

// NewFontCache wraps raw TTF data for size-keyed atlas creation.
func NewFontCache(fontData []byte) *FontCache {
	return &FontCache{
		data:    fontData,
		atlases: make(map[int]*FontAtlas),
	}
}

// Atlas returns the atlas for a pixel size, rasterizing it on first use.
func (fc *FontCache) Atlas(sizePx int) (*FontAtlas, error) {
	if sizePx < 1 {
		sizePx = 1
	}
	if atlas, ok := fc.atlases[sizePx]; ok {
		return atlas, nil
	}
	atlas, err := CreateFontAtlas(fc.data, sizePx)
	if err != nil {
		return nil, err
	}
	fc.atlases[sizePx] = atlas
	return atlas, nil
}

// Sizes returns the pixel sizes rasterized so far.
func (fc *FontCache) Sizes() []int {
	sizes := make([]int, 0, len(fc.atlases))
	for s := range fc.atlases {
		sizes = append(sizes, s)
	}
	return sizes
}

// CreateFontAtlas creates a font atlas from raw font data
func CreateFontAtlas(fontData []byte, fontSize int) (*FontAtlas, error) {
	ttf, err := freetype.ParseFont(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	c := freetype.NewContext()
	c.SetFont(ttf)
	c.SetFontSize(float64(fontSize))
	c.SetDPI(72)

	// At 72 DPI one point is one pixel, so the 26.6 scale is size*64.
	scale := fixed.Int26_6(fontSize * 64)
	bounds := ttf.Bounds(scale)
	ascent := int(bounds.Max.Y >> 6)
	descent := int(-bounds.Min.Y >> 6)
	totalHeight := ascent + descent

	atlas := &FontAtlas{
		Glyphs:       make(map[rune]GlyphInfo),
		Height:       totalHeight,
		Ascent:       ascent,
		Descent:      descent,
		Size:         fontSize,
		measureCache: make(map[string]measureResult),
	}

	chars := characterSet()
	padding := 2

	// First pass: advance widths decide the row layout.
	advances := make(map[rune]int, len(chars))
	rowWidth := 0
	x := 0
	rows := 1
	for _, ch := range chars {
		idx := ttf.Index(ch)
		if idx == 0 {
			continue
		}
		hm := ttf.HMetric(scale, idx)
		adv := int(hm.AdvanceWidth >> 6)
		advances[ch] = adv

		if x+adv+padding > atlasRowWidth && x > 0 {
			x = 0
			rows++
		}
		x += adv + padding
		if x > rowWidth {
			rowWidth = x
		}
	}

	// Both passes must wrap at the same width or the row count drifts.
	atlasW := rowWidth
	if rows > 1 {
		atlasW = atlasRowWidth
	}
	atlasH := rows*(totalHeight+padding) + padding

	atlas.Image = image.NewRGBA(image.Rect(0, 0, atlasW, atlasH))

	c.SetDst(atlas.Image)
	c.SetSrc(image.White)
	c.SetClip(atlas.Image.Bounds())

	// Second pass: render glyphs into atlas rows.
	x = 0
	y := ascent + padding

	for _, ch := range chars {
		adv, ok := advances[ch]
		if !ok {
			continue
		}

		if x+adv+padding > atlasW && x > 0 {
			x = 0
			y += totalHeight + padding
		}

		pt := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
		if _, err := c.DrawString(string(ch), pt); err == nil {
			atlas.Glyphs[ch] = GlyphInfo{
				X:       x,
				Y:       y - ascent,
				Width:   adv,
				Height:  totalHeight,
				Advance: adv,
			}
		}

		x += adv + padding
	}

	return atlas, nil
}

// MeasureText returns the width and height of text (cached)
func (fa *FontAtlas) MeasureText(text string) (width int, height int) {
	if cached, ok := fa.measureCache[text]; ok {
		return cached.width, cached.height
	}

	w, h := fa.MeasureTextUncached(text)
	fa.measureCache[text] = measureResult{w, h}
	return w, h
}

// MeasureTextUncached returns the width and height without caching (for
// strings that change every second)
func (fa *FontAtlas) MeasureTextUncached(text string) (width int, height int) {
	w := 0
	h := fa.Height

	for _, ch := range text {
		if glyph, ok := fa.Glyphs[ch]; ok {
			w += glyph.Advance
			if glyph.Height > h {
				h = glyph.Height
			}
		}
	}

	return w, h
}

// characterSet returns the glyphs worth rasterizing: the clock strings and
// panel labels are plain ASCII.
func characterSet() []rune {
	chars := []rune{' '}
	for ch := rune(33); ch <= 126; ch++ {
		chars = append(chars, ch)
	}
	return chars
}

// LoadDefaultFont loads a usable system font, probing the usual locations.
func LoadDefaultFont() ([]byte, error) {
	fontPaths := []string{
		"/System/Library/Fonts/Supplemental/Arial.ttf",    // macOS
		"/Library/Fonts/Arial.ttf",                        // macOS
		"/System/Library/Fonts/Helvetica.ttc",             // macOS
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf", // Linux
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		"C:\\Windows\\Fonts\\arial.ttf", // Windows
	}

	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if _, err := freetype.ParseFont(data); err != nil {
			log.Debug().Str("path", path).Err(err).Msg("skipping font")
			continue
		}
		log.Info().Str("path", path).Msg("using font")
		return data, nil
	}

	return nil, fmt.Errorf("no suitable font found in system")
}
