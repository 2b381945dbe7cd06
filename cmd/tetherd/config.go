package main

import (
	"github.com/BurntSushi/toml"

	"tether/game"
)

// ParseTuning overlays a TOML file onto the default gameplay tuning, so a
// deployment can adjust rope stiffness, spawn cadence, contact policy and
// the rest without a rebuild. Keys absent from the file keep their defaults.
func ParseTuning(path string) (game.Tuning, error) {
	tun := game.DefaultTuning()
	_, err := toml.DecodeFile(path, &tun)
	return tun, err
}
