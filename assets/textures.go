// Package assets maps enemy kinds and variants to texture ids. The minigame
// ships no image files; ecs/render draws every texture as a tinted block
// sized from this table.
package assets

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind    = errors.New("assets: unknown kind")
	ErrUnknownTexture = errors.New("assets: unknown texture")
)

type Kind int

const (
	Player Kind = iota + 1
	GiantSkeleton
	SniperSkeleton
)

func (k Kind) String() string {
	switch k {
	case Player:
		return "player"
	case GiantSkeleton:
		return "giant_skeleton"
	case SniperSkeleton:
		return "sniper_skeleton"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, error) {
	for _, k := range []Kind{Player, GiantSkeleton, SniperSkeleton} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Texture describes one sheet. Color names an entry of
// golang.org/x/image/colornames.
type Texture struct {
	ID     string
	Frames int
	Width  int
	Height int
	Color  string
}

type key struct {
	kind    Kind
	variant string
}

var textures = map[key]Texture{
	{Player, "idle"}: {ID: "player_idle", Frames: 1, Width: 12, Height: 20, Color: "cornflowerblue"},

	{GiantSkeleton, "idle"}:   {ID: "giant_skeleton_idle", Frames: 4, Width: 32, Height: 48, Color: "ivory"},
	{GiantSkeleton, "barrel"}: {ID: "giant_skeleton_barrel", Frames: 1, Width: 16, Height: 16, Color: "saddlebrown"},

	{SniperSkeleton, "idle"}:         {ID: "sniper_skeleton_idle", Frames: 4, Width: 16, Height: 24, Color: "lightgray"},
	{SniperSkeleton, "tomato"}:       {ID: "sniper_skeleton_tomato", Frames: 1, Width: 8, Height: 8, Color: "tomato"},
	{SniperSkeleton, "tomato_splat"}: {ID: "sniper_skeleton_tomato_splat", Frames: 5, Width: 12, Height: 8, Color: "crimson"},
	{SniperSkeleton, "carrot"}:       {ID: "sniper_skeleton_carrot", Frames: 1, Width: 6, Height: 10, Color: "orange"},
	{SniperSkeleton, "carrot_splat"}: {ID: "sniper_skeleton_carrot_splat", Frames: 5, Width: 12, Height: 8, Color: "darkorange"},
}

var byID = func() map[string]Texture {
	m := make(map[string]Texture, len(textures))
	for _, t := range textures {
		m[t.ID] = t
	}
	return m
}()

// Lookup returns the texture registered for kind and variant.
func Lookup(kind Kind, variant string) (Texture, error) {
	t, ok := textures[key{kind, variant}]
	if !ok {
		return Texture{}, fmt.Errorf("%w: %s/%s", ErrUnknownTexture, kind, variant)
	}
	return t, nil
}

// ByID returns a texture by its asset id.
func ByID(id string) (Texture, bool) {
	t, ok := byID[id]
	return t, ok
}
