package clueconspiracy

import (
	_ "embed"
)

// Embed the trap tile definitions
//
//go:embed static/trap-tiles.yaml
var TrapTilesYAML []byte
