package prefabs

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Millis is a duration written in YAML as whole milliseconds.
type Millis int

func (m Millis) Duration() time.Duration {
	return time.Duration(m) * time.Millisecond
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r IntRange) valid() bool {
	return r.Min <= r.Max
}

type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AnimationSpec struct {
	Variant string  `yaml:"variant"`
	Frames  int     `yaml:"frames"`
	FPS     float64 `yaml:"fps"`
	Repeat  int     `yaml:"repeat"`
}

type SpawnSpec struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// GameSpec is the arena layout read from game.yaml.
type GameSpec struct {
	Name    string      `yaml:"name"`
	Width   int         `yaml:"width"`
	Height  int         `yaml:"height"`
	Bounds  BoundsSpec  `yaml:"bounds"`
	Player  string      `yaml:"player"`
	Spawn   SpawnSpec   `yaml:"player_spawn"`
	Enemies []SpawnSpec `yaml:"enemies"`
}

type BoundsSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("%w: game.yaml: screen size %dx%d", ErrInvalidSpec, spec.Width, spec.Height)
	}
	return &spec, nil
}

type PatrolSpec struct {
	Left          float64 `yaml:"left"`
	Right         float64 `yaml:"right"`
	Duration      Millis  `yaml:"duration_ms"`
	FollowOffsetY float64 `yaml:"follow_offset_y"`
}

type ThrowSpec struct {
	Delay        IntRange `yaml:"delay_ms"`
	Distance     float64  `yaml:"distance"`
	Duration     Millis   `yaml:"duration_ms"`
	Drop         IntRange `yaml:"drop"`
	DropDuration Millis   `yaml:"drop_duration_ms"`
	Reset        Millis   `yaml:"reset_ms"`
}

// GiantSpec is read from giant_skeleton.yaml.
type GiantSpec struct {
	Name      string        `yaml:"name"`
	Depth     int           `yaml:"depth"`
	Body      SizeSpec      `yaml:"body"`
	Barrel    SizeSpec      `yaml:"barrel"`
	Animation AnimationSpec `yaml:"animation"`
	Patrol    PatrolSpec    `yaml:"patrol"`
	Throw     ThrowSpec     `yaml:"throw"`
	Script    string        `yaml:"script"`
}

func LoadGiantSpec() (*GiantSpec, error) {
	spec, err := LoadSpec[GiantSpec]("giant_skeleton.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s GiantSpec) Validate() error {
	switch {
	case !s.Throw.Delay.valid():
		return fmt.Errorf("%w: %s: throw delay %d > %d", ErrInvalidSpec, s.Name, s.Throw.Delay.Min, s.Throw.Delay.Max)
	case !s.Throw.Drop.valid():
		return fmt.Errorf("%w: %s: drop %d > %d", ErrInvalidSpec, s.Name, s.Throw.Drop.Min, s.Throw.Drop.Max)
	case s.Patrol.Duration <= 0:
		return fmt.Errorf("%w: %s: patrol duration must be positive", ErrInvalidSpec, s.Name)
	case s.Patrol.Left > s.Patrol.Right:
		return fmt.Errorf("%w: %s: patrol left %v > right %v", ErrInvalidSpec, s.Name, s.Patrol.Left, s.Patrol.Right)
	}
	return nil
}

type TelegraphSpec struct {
	Interval    Millis      `yaml:"interval_ms"`
	Duration    Millis      `yaml:"duration_ms"`
	Step        Millis      `yaml:"step_ms"`
	JitterPx    int         `yaml:"jitter_px"`
	JitterScale float64     `yaml:"jitter_scale"`
	Alpha       FloatRange  `yaml:"alpha"`
	Flicker     FlickerSpec `yaml:"flicker"`
}

type FlickerSpec struct {
	Count    int    `yaml:"count"`
	Interval Millis `yaml:"interval_ms"`
	MaxFrame int    `yaml:"max_frame"`
}

type AttackSpec struct {
	FoodOffset    float64 `yaml:"food_offset"`
	TargetOffset  float64 `yaml:"target_offset"`
	ThrowDelay    Millis  `yaml:"throw_delay_ms"`
	ThrowDuration Millis  `yaml:"throw_duration_ms"`
	Cleanup       Millis  `yaml:"cleanup_ms"`
}

// SniperSpec is read from sniper_skeleton.yaml.
type SniperSpec struct {
	Name      string        `yaml:"name"`
	Depth     int           `yaml:"depth"`
	Body      SizeSpec      `yaml:"body"`
	Food      SizeSpec      `yaml:"food"`
	Foods     []string      `yaml:"foods"`
	Animation AnimationSpec `yaml:"animation"`
	Splat     AnimationSpec `yaml:"splat"`
	Telegraph TelegraphSpec `yaml:"telegraph"`
	Attack    AttackSpec    `yaml:"attack"`
	Script    string        `yaml:"script"`
}

func LoadSniperSpec() (*SniperSpec, error) {
	spec, err := LoadSpec[SniperSpec]("sniper_skeleton.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s SniperSpec) Validate() error {
	switch {
	case len(s.Foods) == 0:
		return fmt.Errorf("%w: %s: foods is empty", ErrInvalidSpec, s.Name)
	case s.Telegraph.Interval <= 0:
		return fmt.Errorf("%w: %s: telegraph interval must be positive", ErrInvalidSpec, s.Name)
	case s.Telegraph.Step <= 0:
		return fmt.Errorf("%w: %s: telegraph step must be positive", ErrInvalidSpec, s.Name)
	}
	return nil
}
