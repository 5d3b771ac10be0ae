// @focus: #config { load, validate }
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/viper"

	"github.com/lixenwraith/tracer/constants"
)

// EnvPrefix is prepended to every environment override, e.g. TRACER_DASH_MAX_CHARGES
const EnvPrefix = "TRACER"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Tick    time.Duration `mapstructure:"tick"`
	History HistoryConfig `mapstructure:"history"`
	Dash    DashConfig    `mapstructure:"dash"`
	Rewind  RewindConfig  `mapstructure:"rewind"`
	Vitals  VitalsConfig  `mapstructure:"vitals"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Log     LogConfig     `mapstructure:"log"`
}

type HistoryConfig struct {
	Size int `mapstructure:"size"`
}

type DashConfig struct {
	MaxCharges       int           `mapstructure:"max_charges"`
	RechargeInterval time.Duration `mapstructure:"recharge_interval"`
	Cooldown         time.Duration `mapstructure:"cooldown"`
	Duration         time.Duration `mapstructure:"duration"`
	Launch           Vector3       `mapstructure:"launch"`
	DriftInput       float64       `mapstructure:"drift_input"`
	EndDrop          float64       `mapstructure:"end_drop"`
	GravityScale     float64       `mapstructure:"gravity_scale"`
}

type RewindConfig struct {
	// RestoreVitals copies health and ammo from each replayed sample
	RestoreVitals bool `mapstructure:"restore_vitals"`
	// AbilitiesDuringRewind lets dash activate while the movement gate is closed
	AbilitiesDuringRewind bool `mapstructure:"abilities_during_rewind"`
}

type VitalsConfig struct {
	Health float64 `mapstructure:"health"`
	Ammo   int     `mapstructure:"ammo"`
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Volume is a linear gain
	Volume float64 `mapstructure:"volume"`
}

type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// Vector3 is the file representation of a launch vector
type Vector3 struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
	Z float64 `mapstructure:"z"`
}

// Vec converts to the math type used by the simulation
func (v Vector3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Default returns the built-in tuning
func Default() Config {
	return Config{
		Tick:    constants.GameUpdateInterval,
		History: HistoryConfig{Size: constants.HistorySize},
		Dash: DashConfig{
			MaxCharges:       constants.DashMaxCharges,
			RechargeInterval: constants.DashRechargeInterval,
			Cooldown:         constants.DashCooldown,
			Duration:         constants.DashDuration,
			Launch:           Vector3{X: constants.DashLaunchX, Y: constants.DashLaunchY, Z: constants.DashLaunchZ},
			DriftInput:       constants.DashDriftInput,
			EndDrop:          constants.DashEndDrop,
			GravityScale:     constants.GravityScale,
		},
		Rewind: RewindConfig{
			RestoreVitals:         false,
			AbilitiesDuringRewind: true,
		},
		Vitals: VitalsConfig{Health: constants.SpawnHealth, Ammo: constants.SpawnAmmo},
		Audio:  AudioConfig{Enabled: true, Volume: 0.5},
	}
}

// Load reads defaults, then the optional file at path, then TRACER_* environment overrides
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it during Unmarshal
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("tick", d.Tick)
	v.SetDefault("history.size", d.History.Size)

	v.SetDefault("dash.max_charges", d.Dash.MaxCharges)
	v.SetDefault("dash.recharge_interval", d.Dash.RechargeInterval)
	v.SetDefault("dash.cooldown", d.Dash.Cooldown)
	v.SetDefault("dash.duration", d.Dash.Duration)
	v.SetDefault("dash.launch.x", d.Dash.Launch.X)
	v.SetDefault("dash.launch.y", d.Dash.Launch.Y)
	v.SetDefault("dash.launch.z", d.Dash.Launch.Z)
	v.SetDefault("dash.drift_input", d.Dash.DriftInput)
	v.SetDefault("dash.end_drop", d.Dash.EndDrop)
	v.SetDefault("dash.gravity_scale", d.Dash.GravityScale)

	v.SetDefault("rewind.restore_vitals", d.Rewind.RestoreVitals)
	v.SetDefault("rewind.abilities_during_rewind", d.Rewind.AbilitiesDuringRewind)

	v.SetDefault("vitals.health", d.Vitals.Health)
	v.SetDefault("vitals.ammo", d.Vitals.Ammo)

	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.volume", d.Audio.Volume)

	v.SetDefault("log.debug", d.Log.Debug)
}

// Validate rejects tunings the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive, got %v", ErrInvalid, c.Tick)
	case c.History.Size <= 0:
		return fmt.Errorf("%w: history.size must be positive, got %d", ErrInvalid, c.History.Size)
	case c.Dash.MaxCharges < 1:
		return fmt.Errorf("%w: dash.max_charges must be at least 1, got %d", ErrInvalid, c.Dash.MaxCharges)
	case c.Dash.RechargeInterval <= 0:
		return fmt.Errorf("%w: dash.recharge_interval must be positive, got %v", ErrInvalid, c.Dash.RechargeInterval)
	case c.Dash.Cooldown < 0:
		return fmt.Errorf("%w: dash.cooldown must not be negative, got %v", ErrInvalid, c.Dash.Cooldown)
	case c.Dash.Duration <= 0:
		return fmt.Errorf("%w: dash.duration must be positive, got %v", ErrInvalid, c.Dash.Duration)
	case c.Dash.GravityScale < 0:
		return fmt.Errorf("%w: dash.gravity_scale must not be negative, got %v", ErrInvalid, c.Dash.GravityScale)
	case c.Vitals.Ammo < 0:
		return fmt.Errorf("%w: vitals.ammo must not be negative, got %d", ErrInvalid, c.Vitals.Ammo)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %v", ErrInvalid, c.Audio.Volume)
	}
	return nil
}
