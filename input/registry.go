package input

import (
	"fmt"

	"go.uber.org/multierr"

	"csc/cascade"
	"csc/utils/debug"
)

// Registry holds custom properties registered by a document and remembers
// which of them were referenced by var().
type Registry struct {
	cascade.RegistryMap
	referenced map[string]struct{}
}

var (
	_ cascade.Registry        = (*Registry)(nil)
	_ cascade.ReferenceMarker = (*Registry)(nil)
)

func newRegistry(list []Registration) (*Registry, error) {
	r := &Registry{
		RegistryMap: make(cascade.RegistryMap, len(list)),
		referenced:  make(map[string]struct{}),
	}

	var errs error
	for _, reg := range list {
		if !cascade.IsCustomPropertyName(reg.Name) {
			errs = multierr.Append(errs, fmt.Errorf("registered property %q is not a custom property", reg.Name))
			continue
		}
		syntax, err := ParseSyntax(reg.Syntax)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("registered property %s: %w", reg.Name, err))
			continue
		}
		var initial *cascade.VariableData
		if reg.Initial != nil {
			initial = cascade.NewVariableData(*reg.Initial, false)
			if !syntax.Accepts(initial.Tokens()) {
				errs = multierr.Append(errs, fmt.Errorf("registered property %s: initial value %q does not match %s",
					reg.Name, *reg.Initial, syntax))
				continue
			}
		} else if _, universal := syntax.(cascade.UniversalSyntax); !universal {
			errs = multierr.Append(errs, fmt.Errorf("registered property %s: initial value is required for %s", reg.Name, syntax))
			continue
		}
		r.Register(&cascade.Registration{
			Name:     reg.Name,
			Syntax:   syntax,
			Inherits: reg.Inherits,
			Initial:  initial,
		})
	}
	return r, errs
}

func (r *Registry) MarkReferenced(name string) {
	r.referenced[name] = struct{}{}
}

// Referenced returns names of registered properties referenced during
// cascade in natural order.
func (r *Registry) Referenced() []string {
	return debug.SortedKeys(r.referenced)
}
