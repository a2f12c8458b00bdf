// Package buildinfo exposes the running binary's build metadata as the
// "Build" data package.
package buildinfo

import (
	"context"
	"errors"
	"runtime"
	"runtime/debug"

	"github.com/specialistvlad/datapkg/internal/datapkg"
	"github.com/specialistvlad/datapkg/internal/registry"
)

const PackageName = "Build"

// TypeInfo is the representation type of Info.
const TypeInfo datapkg.Type = "Build.Info"

// Info is the build metadata of the running binary.
type Info struct {
	Path      string            `json:"path" yaml:"path"`
	Version   string            `json:"version" yaml:"version"`
	GoVersion string            `json:"go_version" yaml:"go_version"`
	Settings  map[string]string `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// Module implements the registry.Module interface for this package.
type Module struct {
	// Read returns the build info. Nil means debug.ReadBuildInfo.
	Read func() (*debug.BuildInfo, bool)
}

// AsBuild_Info is the provider for Build.Info.
func (m *Module) AsBuild_Info(_ context.Context, _ *datapkg.Handle) (any, error) {
	read := m.Read
	if read == nil {
		read = debug.ReadBuildInfo
	}
	bi, ok := read()
	if !ok || bi == nil {
		return nil, errors.New("build info is not available in this binary")
	}

	info := Info{
		Path:      bi.Main.Path,
		Version:   bi.Main.Version,
		GoVersion: bi.GoVersion,
	}
	if info.GoVersion == "" {
		info.GoVersion = runtime.Version()
	}
	if len(bi.Settings) > 0 {
		info.Settings = make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			info.Settings[s.Key] = s.Value
		}
	}
	return info, nil
}

// Register registers the Build package.
func (m *Module) Register(r *registry.Registry) {
	r.Register(datapkg.Define(PackageName, "1.0.0").ScanMethods(m).MustBuild())
}
