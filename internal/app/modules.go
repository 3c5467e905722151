package app

import (
	"github.com/vk/recordkit/internal/registry"
	"github.com/vk/recordkit/modules/compare"
	"github.com/vk/recordkit/modules/inspect"
)

// coreModules is the definitive list of all handler modules compiled into the
// recordkit binary.
var coreModules = []registry.Module{
	&inspect.Module{},
	&compare.Module{},
}
