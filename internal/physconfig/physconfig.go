package physconfig

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"puzzle-engine/internal/physics"
)

// ConfigPath is the path to the physics config file, relative to the process working directory.
const ConfigPath = "config/physics.json"

// MaterialConfig mirrors physics.Material for the config file.
type MaterialConfig struct {
	Bounciness float32 `json:"bounciness"`
	Friction   float32 `json:"friction"`
	EnergyLoss float32 `json:"energy_loss"`
}

// Config holds world tuning and window settings. Persisted across runs.
type Config struct {
	GravityX float32 `json:"gravity_x"`
	GravityY float32 `json:"gravity_y"`

	PushOutStep        float32 `json:"push_out_step"`
	StaticPushOutLimit int     `json:"static_push_out_limit"`
	BodyPushOutLimit   int     `json:"body_push_out_limit"`

	MaxStepSize     float32 `json:"max_step_size"`
	MaxStepsPerCall float32 `json:"max_steps_per_call"`

	// StepsPerSecond converts frame time into nominal steps.
	StepsPerSecond float32 `json:"steps_per_second"`

	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	TargetFPS    int32  `json:"target_fps"`
	ShowFPS      bool   `json:"show_fps"`

	DefaultMaterial MaterialConfig `json:"default_material"`
	BodiesDir       string         `json:"bodies_dir"`
}

// Default returns the tuning the engine ships with.
func Default() Config {
	return Config{
		GravityY:           -0.5,
		PushOutStep:        physics.DefaultResolver.PushOutStep,
		StaticPushOutLimit: physics.DefaultResolver.StaticPushOutLimit,
		BodyPushOutLimit:   physics.DefaultResolver.BodyPushOutLimit,
		MaxStepSize:        1,
		MaxStepsPerCall:    5,
		StepsPerSecond:     60,
		WindowWidth:        1280,
		WindowHeight:       720,
		WindowTitle:        "Puzzle Engine",
		TargetFPS:          60,
		ShowFPS:            true,
		DefaultMaterial: MaterialConfig{
			Bounciness: physics.DefaultMaterial.Bounciness,
			Friction:   physics.DefaultMaterial.Friction,
			EnergyLoss: physics.DefaultMaterial.EnergyLoss,
		},
		BodiesDir: "assets/bodies",
	}
}

// Load reads the config from ConfigPath. A missing file returns Default() without error.
func Load() (Config, error) {
	return LoadFrom(ConfigPath)
}

// LoadFrom reads the config at path. Fields absent from the file keep their defaults.
// A missing file returns Default(); a malformed one returns Default() and the parse error.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Default(), err
	}
	if err := c.Validate(); err != nil {
		return Default(), err
	}
	return c, nil
}

// Save writes the config to ConfigPath, creating the config directory if needed.
func Save(c Config) error {
	return SaveTo(ConfigPath, c)
}

// SaveTo writes the config to path.
func SaveTo(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports values the world cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.PushOutStep <= 0 {
		errs = append(errs, errors.New("push_out_step must be positive"))
	}
	if c.StaticPushOutLimit < 0 || c.BodyPushOutLimit < 0 {
		errs = append(errs, errors.New("push-out limits must not be negative"))
	}
	if c.MaxStepSize <= 0 {
		errs = append(errs, errors.New("max_step_size must be positive"))
	}
	if c.StepsPerSecond <= 0 {
		errs = append(errs, errors.New("steps_per_second must be positive"))
	}
	return errors.Join(errs...)
}

// Gravity returns the gravity vector in units per step per step.
func (c Config) Gravity() mgl32.Vec2 {
	return mgl32.Vec2{c.GravityX, c.GravityY}
}

// Resolver returns the push-out tuning as a physics.Resolver.
func (c Config) Resolver() physics.Resolver {
	return physics.Resolver{
		PushOutStep:        c.PushOutStep,
		StaticPushOutLimit: c.StaticPushOutLimit,
		BodyPushOutLimit:   c.BodyPushOutLimit,
	}
}

// Material returns the default material for bodies that do not set their own.
func (c Config) Material() physics.Material {
	return physics.Material{
		Bounciness: c.DefaultMaterial.Bounciness,
		Friction:   c.DefaultMaterial.Friction,
		EnergyLoss: c.DefaultMaterial.EnergyLoss,
	}
}

// Apply copies gravity, resolver tuning and step clamps onto w.
func (c Config) Apply(w *physics.World) {
	w.Gravity = c.Gravity()
	w.Resolver = c.Resolver()
	w.MaxStepSize = c.MaxStepSize
	w.MaxStepsPerCall = c.MaxStepsPerCall
}
