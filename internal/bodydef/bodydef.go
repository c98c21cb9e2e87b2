package bodydef

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"puzzle-engine/internal/physics"
)

// Def is the YAML definition for a spawnable body (e.g. assets/bodies/crate.yaml).
// Zero-valued optional fields fall back to engine defaults when the body is built.
type Def struct {
	Name    string     `yaml:"name"`
	Shape   string     `yaml:"shape"`
	Size    [2]float32 `yaml:"size,omitempty"`
	Radius  float32    `yaml:"radius,omitempty"`
	Density float32    `yaml:"density,omitempty"`
	Scale   [2]float32 `yaml:"scale,omitempty"`

	LinearFriction  float32  `yaml:"linear_friction,omitempty"`
	AngularFriction float32  `yaml:"angular_friction,omitempty"`
	MaxSpeed        *float32 `yaml:"max_speed,omitempty"`
	MaxAngularSpeed *float32 `yaml:"max_angular_speed,omitempty"`

	Material *MaterialDef `yaml:"material,omitempty"`
	// Rotates defaults to true.
	Rotates *bool `yaml:"rotates,omitempty"`
}

// MaterialDef overrides the surface response of a body.
type MaterialDef struct {
	Bounciness float32 `yaml:"bounciness"`
	Friction   float32 `yaml:"friction"`
	EnergyLoss float32 `yaml:"energy_loss"`
}

// Parse decodes one definition and checks it can be built.
func Parse(data []byte) (Def, error) {
	var d Def
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Def{}, err
	}
	if err := d.Validate(); err != nil {
		return Def{}, err
	}
	return d, nil
}

// Validate reports definitions that do not describe a usable body.
func (d Def) Validate() error {
	switch d.Shape {
	case "box", "wall":
		if d.Size[0] <= 0 || d.Size[1] <= 0 {
			return fmt.Errorf("%s: %s needs a positive size", d.Name, d.Shape)
		}
	case "circle":
		if d.Radius <= 0 {
			return fmt.Errorf("%s: circle needs a positive radius", d.Name)
		}
	default:
		return fmt.Errorf("%s: unknown shape %q", d.Name, d.Shape)
	}
	if d.Density < 0 {
		return fmt.Errorf("%s: density must not be negative", d.Name)
	}
	return nil
}

// LoadDir reads every .yaml/.yml file in dir. Definitions without a name take the file's base name.
// Returns an error naming the first file that fails to parse.
func LoadDir(dir string) (map[string]Def, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Def)
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(e.Name(), ext)
		var d Def
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		if d.Name == "" {
			d.Name = name
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		out[d.Name] = d
	}
	return out, nil
}

// Names returns the keys of defs in sorted order.
func Names(defs map[string]Def) []string {
	names := make([]string, 0, len(defs))
	for n := range defs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// PhysicsShape returns the physics shape the definition describes.
func (d Def) PhysicsShape() physics.Shape {
	switch d.Shape {
	case "circle":
		return physics.NewCircle(d.Radius)
	case "wall":
		return physics.Shape{Kind: physics.Wall, Width: d.Size[0], Height: d.Size[1]}
	default:
		return physics.NewBox(d.Size[0], d.Size[1])
	}
}

// Build creates a body at position. fallback is the material used when the definition sets none.
func (d Def) Build(position mgl32.Vec2, fallback physics.Material) *physics.RigidBody {
	density := d.Density
	if density == 0 {
		density = 1
	}
	b := physics.NewBody(d.PhysicsShape(), density)
	b.Position = position
	if d.Scale != [2]float32{} {
		b.SetScale(mgl32.Vec2{d.Scale[0], d.Scale[1]})
	}
	b.LinearFriction = d.LinearFriction
	b.AngularFriction = d.AngularFriction
	if d.MaxSpeed != nil {
		b.MaxSpeed = *d.MaxSpeed
	}
	if d.MaxAngularSpeed != nil {
		b.MaxAngularSpeed = *d.MaxAngularSpeed
	}
	b.Material = fallback
	if d.Material != nil {
		b.Material = physics.Material{
			Bounciness: d.Material.Bounciness,
			Friction:   d.Material.Friction,
			EnergyLoss: d.Material.EnergyLoss,
		}
	}
	if d.Rotates != nil {
		b.RotationEnabled = *d.Rotates
	}
	return b
}
