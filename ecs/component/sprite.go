package component

// Sprite is the visual part of an entity. Texture is an asset id resolved by
// the renderer; Frame indexes into the texture's sheet. A zero Alpha draws
// opaque.
type Sprite struct {
	Texture    string
	Frame      int
	Width      float64
	Height     float64
	OriginX    float64
	OriginY    float64
	Visible    bool
	FacingLeft bool
	Alpha      float64
}

var SpriteComponent = NewComponent[Sprite]()
