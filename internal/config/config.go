// Package config holds the offline-authored game configuration asset.
//
// The asset is authored and range-checked by the asset tooling (Draft),
// loaded once at process start, and read-only from then on (Asset). Runtime
// loading deliberately performs no clamping: the game trusts its authored
// data, and out-of-range values are an authoring-time problem.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Authoring-time range constraints for the camera tuning fields.
const (
	FOVMin = 60.0
	FOVMax = 120.0

	ShakeIntensityMin = 0.0
	ShakeIntensityMax = 2.0

	RespawnFadeMin = 0.1
	RespawnFadeMax = 3.0
)

// Asset is the immutable runtime view of the configuration. Consumers only
// get accessors; the only mutable form is Draft, which belongs to the
// authoring tool.
type Asset struct {
	bootScene      string
	menuScene      string
	gameplayScene  string
	defaultFOV     float64
	shakeIntensity float64
	respawnFade    float64
}

func (a *Asset) BootScene() string             { return a.bootScene }
func (a *Asset) MenuScene() string             { return a.menuScene }
func (a *Asset) GameplayScene() string         { return a.gameplayScene }
func (a *Asset) DefaultFOV() float64           { return a.defaultFOV }
func (a *Asset) CameraShakeIntensity() float64 { return a.shakeIntensity }

// RespawnFadeDuration is in seconds.
func (a *Asset) RespawnFadeDuration() float64 { return a.respawnFade }

// Draft is the mutable authoring form of the asset. It is what the YAML file
// actually encodes and the only type with write access to the fields.
type Draft struct {
	BootScene            string  `yaml:"boot_scene"`
	MenuScene            string  `yaml:"menu_scene"`
	GameplayScene        string  `yaml:"gameplay_scene"`
	DefaultFOV           float64 `yaml:"default_fov"`
	CameraShakeIntensity float64 `yaml:"camera_shake_intensity"`
	RespawnFadeDuration  float64 `yaml:"respawn_fade_duration"`
}

// DefaultDraft is the starting point written by `asset init`.
func DefaultDraft() Draft {
	return Draft{
		BootScene:            "Boot",
		MenuScene:            "Menu",
		GameplayScene:        "Gameplay",
		DefaultFOV:           90,
		CameraShakeIntensity: 0.6,
		RespawnFadeDuration:  1.2,
	}
}

// Validate reports every authoring-time violation at once. It is never run
// on the load path.
func (d Draft) Validate() error {
	var result *multierror.Error
	if strings.TrimSpace(d.BootScene) == "" {
		result = multierror.Append(result, errors.New("boot_scene must not be blank"))
	}
	if strings.TrimSpace(d.MenuScene) == "" {
		result = multierror.Append(result, errors.New("menu_scene must not be blank"))
	}
	if strings.TrimSpace(d.GameplayScene) == "" {
		result = multierror.Append(result, errors.New("gameplay_scene must not be blank"))
	}
	if d.DefaultFOV < FOVMin || d.DefaultFOV > FOVMax {
		result = multierror.Append(result, errors.Errorf("default_fov %.1f outside [%.0f,%.0f]", d.DefaultFOV, FOVMin, FOVMax))
	}
	if d.CameraShakeIntensity < ShakeIntensityMin || d.CameraShakeIntensity > ShakeIntensityMax {
		result = multierror.Append(result, errors.Errorf("camera_shake_intensity %.2f outside [%.0f,%.0f]", d.CameraShakeIntensity, ShakeIntensityMin, ShakeIntensityMax))
	}
	if d.RespawnFadeDuration < RespawnFadeMin || d.RespawnFadeDuration > RespawnFadeMax {
		result = multierror.Append(result, errors.Errorf("respawn_fade_duration %.2f outside [%.1f,%.0f]", d.RespawnFadeDuration, RespawnFadeMin, RespawnFadeMax))
	}
	return result.ErrorOrNil()
}

// Asset seals the draft into its immutable runtime form.
func (d Draft) Asset() *Asset {
	return &Asset{
		bootScene:      d.BootScene,
		menuScene:      d.MenuScene,
		gameplayScene:  d.GameplayScene,
		defaultFOV:     d.DefaultFOV,
		shakeIntensity: d.CameraShakeIntensity,
		respawnFade:    d.RespawnFadeDuration,
	}
}

// Encode writes the draft as YAML for the authoring tool.
func (d Draft) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(err, "encode asset")
	}
	return enc.Close()
}

// ReadDraftFile loads the mutable authoring form, for the asset tooling.
func ReadDraftFile(path string) (Draft, error) {
	f, err := os.Open(path)
	if err != nil {
		return Draft{}, errors.Wrap(err, "open asset")
	}
	defer f.Close()
	var d Draft
	if err := yaml.NewDecoder(f).Decode(&d); err != nil {
		return Draft{}, errors.Wrap(err, "decode asset")
	}
	return d, nil
}

// Load decodes an asset without validation or clamping; persisted values
// pass through as-is.
func Load(r io.Reader) (*Asset, error) {
	var d Draft
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(err, "decode asset")
	}
	return d.Asset(), nil
}

// LoadFile loads the asset at path. A missing file is not an error kind of
// its own: callers decide whether absence matters (the bootstrapper treats
// an absent asset as an expected, validatable state).
func LoadFile(path string) (*Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open asset")
	}
	defer f.Close()
	return Load(f)
}
