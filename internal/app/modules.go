package app

import (
	"github.com/specialistvlad/datapkg/internal/registry"
	"github.com/specialistvlad/datapkg/modules/buildinfo"
	"github.com/specialistvlad/datapkg/modules/env_vars"
	"github.com/specialistvlad/datapkg/modules/formats"
)

// coreModules is the definitive list of all modules that are compiled into
// the datapkg binary.
var coreModules = []registry.Module{
	&env_vars.Module{},
	&buildinfo.Module{},
	&formats.Module{},
}
