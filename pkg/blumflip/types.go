package blumflip

import "github.com/commitlab/blumflip-go/pkg/blumflip/modgroup"

// Type aliases for convenience. These let applications reference the group
// parameterization without importing the subpackage directly.

// Group is an alias for modgroup.Params.
type Group = modgroup.Params

// Mod7 re-exports the default toy group: Z_7^* with generator 5.
var Mod7 = modgroup.Mod7
