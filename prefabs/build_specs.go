package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab written as a bag of named components.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Kind       string  `yaml:"kind"`
	Variant    string  `yaml:"variant"`
	Alpha      float64 `yaml:"alpha"`
	FacingLeft bool    `yaml:"facing_left"`
	Hidden     bool    `yaml:"hidden"`
}

type ColliderComponentSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type AnimationComponentSpec struct {
	Kind    string  `yaml:"kind"`
	Variant string  `yaml:"variant"`
	FPS     float64 `yaml:"fps"`
	Repeat  int     `yaml:"repeat"`
}
