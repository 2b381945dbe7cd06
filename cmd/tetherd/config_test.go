package main

import (
	"os"
	"path/filepath"
	"testing"

	"tether/game"
)

func TestParseTuningOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	body := `
JointCount = 20
RopeContact = "push"
SpawnDelay = 0.75

[Gravity]
Y = -40.0
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write tuning file: %v", err)
	}

	tun, err := ParseTuning(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tun.JointCount != 20 {
		t.Fatalf("JointCount = %d, want 20", tun.JointCount)
	}
	if tun.RopeContact != game.ContactPush {
		t.Fatalf("RopeContact = %q, want push", tun.RopeContact)
	}
	if tun.SpawnDelay != 0.75 {
		t.Fatalf("SpawnDelay = %f, want 0.75", tun.SpawnDelay)
	}
	if tun.Gravity.Y != -40 {
		t.Fatalf("Gravity.Y = %f, want -40", tun.Gravity.Y)
	}
	// Untouched keys keep their defaults.
	def := game.DefaultTuning()
	if tun.Softness != def.Softness || tun.GrowEvery != def.GrowEvery {
		t.Fatalf("unrelated keys changed: %+v", tun)
	}
}

func TestParseTuningMissingFile(t *testing.T) {
	if _, err := ParseTuning(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
