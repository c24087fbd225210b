package component

import "time"

// AnimationDef describes a frame range on one texture. Repeat follows the
// registry convention: -1 loops forever, 0 plays once, n plays n+1 times.
type AnimationDef struct {
	Name       string
	Texture    string
	StartFrame int
	EndFrame   int
	FPS        float64
	Repeat     int
}

// FrameCount returns the number of frames in the range.
func (d AnimationDef) FrameCount() int {
	if d.EndFrame < d.StartFrame {
		return 1
	}
	return d.EndFrame - d.StartFrame + 1
}

type Animation struct {
	Defs    map[string]AnimationDef
	Current string
	Frame   int
	Elapsed time.Duration
	Plays   int
	Playing bool
}

var AnimationComponent = NewComponent[Animation]()
