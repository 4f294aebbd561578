package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk settings layout. Absent keys keep their current value.
//
//	camera:
//	  fov_degrees: 60
//	  near: 0.1
//	  far: 250
//	  mouse_sensitivity: 0.002
//	  move_speed: 3
//	  roll_speed_degrees: 90
//	render:
//	  stack_depth: 16
//	  fps_limit: 144
//	  vsync: false
type File struct {
	Camera CameraFile `yaml:"camera"`
	Render RenderFile `yaml:"render"`
}

type CameraFile struct {
	FOVDegrees       *float64 `yaml:"fov_degrees"`
	Near             *float64 `yaml:"near"`
	Far              *float64 `yaml:"far"`
	MouseSensitivity *float64 `yaml:"mouse_sensitivity"`
	MoveSpeed        *float64 `yaml:"move_speed"`
	RollSpeedDegrees *float64 `yaml:"roll_speed_degrees"`
}

type RenderFile struct {
	StackDepth *int  `yaml:"stack_depth"`
	FPSLimit   *int  `yaml:"fps_limit"`
	VSync      *bool `yaml:"vsync"`
}

// Parse decodes a settings document. Unknown keys are an error.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return &f, nil
}

// Apply passes every present value through the matching setter, so the
// usual clamping applies.
func (f *File) Apply() {
	c := f.Camera
	if c.FOVDegrees != nil {
		SetFOV(*c.FOVDegrees * math.Pi / 180)
	}
	if c.Near != nil || c.Far != nil {
		near, far := GetClipPlanes()
		if c.Near != nil {
			near = *c.Near
		}
		if c.Far != nil {
			far = *c.Far
		}
		SetClipPlanes(near, far)
	}
	if c.MouseSensitivity != nil {
		SetMouseSensitivity(*c.MouseSensitivity)
	}
	if c.MoveSpeed != nil {
		SetMoveSpeed(*c.MoveSpeed)
	}
	if c.RollSpeedDegrees != nil {
		SetRollSpeed(*c.RollSpeedDegrees * math.Pi / 180)
	}

	r := f.Render
	if r.StackDepth != nil {
		SetStackDepth(*r.StackDepth)
	}
	if r.FPSLimit != nil {
		SetFPSLimit(*r.FPSLimit)
	}
	if r.VSync != nil {
		SetVSync(*r.VSync)
	}
}

// Load reads and applies a settings file.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading settings file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	f.Apply()
	return nil
}
