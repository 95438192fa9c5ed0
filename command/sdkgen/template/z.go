package template

import (
	_ "embed"
)

//go:embed structure/sdkgen.yml
var StructureConfig []byte
