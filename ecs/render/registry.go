package render

import "github.com/hajimehoshi/ebiten/v2"

type frameKey struct {
	texture string
	frame   int
}

var images = map[frameKey]*ebiten.Image{}

// RegisterImage stores a frame image by texture id and frame index.
func RegisterImage(texture string, frame int, img *ebiten.Image) {
	if texture == "" || img == nil {
		return
	}
	images[frameKey{texture, frame}] = img
}

// GetImage returns a cached frame image.
func GetImage(texture string, frame int) *ebiten.Image {
	if texture == "" {
		return nil
	}
	return images[frameKey{texture, frame}]
}
