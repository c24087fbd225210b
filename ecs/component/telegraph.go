package component

import "time"

// Telegraph tracks the pre-attack glitch of an entity. Steps counts jitter
// legs played, Flickers counts random frame swaps.
type Telegraph struct {
	Steps     int
	Flickers  int
	Complete  bool
	Firings   int
	AnchorX   float64
	StartedAt time.Duration
}

var TelegraphComponent = NewComponent[Telegraph]()
