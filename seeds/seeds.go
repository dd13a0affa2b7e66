// Package seeds embeds the scripted datasets replayed by the plantdb command.
package seeds

import "embed"

// Plants is the name of the default demonstration seed inside Content
const Plants = "plants.yaml"

//go:embed *.yaml
var Content embed.FS
