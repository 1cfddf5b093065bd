package config

import (
	"bytes"
	"strings"
	"testing"
)

func TestDefaultDraftValidates(t *testing.T) {
	if err := DefaultDraft().Validate(); err != nil {
		t.Fatalf("default draft invalid: %v", err)
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	d := Draft{
		BootScene:            " ",
		MenuScene:            "",
		GameplayScene:        "\t",
		DefaultFOV:           59,
		CameraShakeIntensity: 2.1,
		RespawnFadeDuration:  0.05,
	}
	err := d.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	msg := err.Error()
	for _, want := range []string{
		"boot_scene", "menu_scene", "gameplay_scene",
		"default_fov", "camera_shake_intensity", "respawn_fade_duration",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("missing %q in validation report: %v", want, msg)
		}
	}
}

func TestValidateRangeBounds(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*Draft)
		valid bool
	}{
		{"fov low edge", func(d *Draft) { d.DefaultFOV = 60 }, true},
		{"fov high edge", func(d *Draft) { d.DefaultFOV = 120 }, true},
		{"fov above", func(d *Draft) { d.DefaultFOV = 121 }, false},
		{"shake low edge", func(d *Draft) { d.CameraShakeIntensity = 0 }, true},
		{"shake below", func(d *Draft) { d.CameraShakeIntensity = -0.1 }, false},
		{"fade high edge", func(d *Draft) { d.RespawnFadeDuration = 3 }, true},
		{"fade above", func(d *Draft) { d.RespawnFadeDuration = 3.5 }, false},
	}
	for _, tc := range cases {
		d := DefaultDraft()
		tc.mut(&d)
		err := d.Validate()
		if tc.valid && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.valid && err == nil {
			t.Fatalf("%s: expected validation failure", tc.name)
		}
	}
}

func TestLoadDoesNotClamp(t *testing.T) {
	// Out-of-range authored values must survive the load path untouched.
	src := `
boot_scene: Boot
menu_scene: Menu
gameplay_scene: Gameplay
default_fov: 150
camera_shake_intensity: 5
respawn_fade_duration: 9
`
	a, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.DefaultFOV() != 150 {
		t.Fatalf("DefaultFOV = %v, want 150", a.DefaultFOV())
	}
	if a.CameraShakeIntensity() != 5 {
		t.Fatalf("CameraShakeIntensity = %v, want 5", a.CameraShakeIntensity())
	}
	if a.RespawnFadeDuration() != 9 {
		t.Fatalf("RespawnFadeDuration = %v, want 9", a.RespawnFadeDuration())
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := DefaultDraft()
	var buf bytes.Buffer
	if err := want.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	a, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.BootScene() != want.BootScene || a.MenuScene() != want.MenuScene || a.GameplayScene() != want.GameplayScene {
		t.Fatalf("scene names did not round-trip: %q %q %q", a.BootScene(), a.MenuScene(), a.GameplayScene())
	}
	if a.DefaultFOV() != want.DefaultFOV {
		t.Fatalf("DefaultFOV = %v, want %v", a.DefaultFOV(), want.DefaultFOV)
	}
}

func TestLoadFileMissingIsAnError(t *testing.T) {
	if _, err := LoadFile("does/not/exist.yaml"); err == nil {
		t.Fatal("expected error for missing asset file")
	}
}
