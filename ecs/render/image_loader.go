package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/minigame/assets"
	"golang.org/x/image/colornames"
)

// LoadImage returns the image for one frame of a texture, building and
// caching it on first use. Frames of a sheet get progressively darker so
// animations are visible without art.
func LoadImage(texture string, frame int) (*ebiten.Image, error) {
	if texture == "" {
		return nil, fmt.Errorf("render: empty texture id")
	}
	tex, ok := assets.ByID(texture)
	if !ok {
		return nil, fmt.Errorf("render: %w: %s", assets.ErrUnknownTexture, texture)
	}
	if tex.Frames > 0 {
		frame %= tex.Frames
	}
	if img := GetImage(texture, frame); img != nil {
		return img, nil
	}
	img := ebiten.NewImage(max(tex.Width, 1), max(tex.Height, 1))
	img.Fill(shade(Color(tex.Color), frame, tex.Frames))
	RegisterImage(texture, frame, img)
	return img, nil
}

// Color resolves a colornames entry, falling back to magenta.
func Color(name string) color.RGBA {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.Magenta
}

func shade(c color.RGBA, frame, frames int) color.RGBA {
	if frames <= 1 {
		return c
	}
	f := 1 - 0.35*float64(frame)/float64(frames-1)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
