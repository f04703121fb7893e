// Package configs embeds the default scene so the binary runs without files.
package configs

import _ "embed"

//go:embed scene.yaml
var DefaultScene []byte
