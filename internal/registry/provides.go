package registry

import (
	"errors"

	"github.com/specialistvlad/datapkg/internal/datapkg"
)

// Capabilities returns the full ordered capability list of pkg: its explicit
// list when one was declared, otherwise its bindings in registration order.
func (r *Registry) Capabilities(pkg *datapkg.Package) ([]datapkg.Type, error) {
	if pkg == nil {
		return nil, &datapkg.ConfigurationError{Err: errors.New("package is nil")}
	}
	if err := pkg.Err(); err != nil {
		return nil, &datapkg.ConfigurationError{Package: pkg.Name(), Err: err}
	}
	if list, ok := pkg.Explicit(); ok {
		return list, nil
	}
	bound := pkg.Bound()
	if bound == nil {
		bound = []datapkg.Type{}
	}
	return bound, nil
}

// Provides returns the representation types pkg can produce. With
// datapkg.Any as filter the full capability list is returned; otherwise only
// the entries that are-a filter, in capability order. No provider is invoked.
func (r *Registry) Provides(pkg *datapkg.Package, filter datapkg.Type) ([]datapkg.Type, error) {
	all, err := r.Capabilities(pkg)
	if err != nil {
		return nil, err
	}
	if filter == datapkg.Any {
		return all, nil
	}
	matched := make([]datapkg.Type, 0, len(all))
	for _, t := range all {
		if r.taxonomy.IsA(t, filter) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Count returns the number of entries Provides would return.
func (r *Registry) Count(pkg *datapkg.Package, filter datapkg.Type) (int, error) {
	list, err := r.Provides(pkg, filter)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}
