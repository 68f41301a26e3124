package cascade

// Filter rejects properties based on their flags. Each flag in the mask
// must have the required value for a property to pass.
type Filter struct {
	mask  PropertyFlags
	flags PropertyFlags
}

// NewFilter creates filter which requires flag to be equal to value.
func NewFilter(flag PropertyFlags, value bool) Filter {
	return Filter{}.Add(flag, value)
}

// Add returns a copy of the filter which additionally requires flag to be
// equal to value.
func (f Filter) Add(flag PropertyFlags, value bool) Filter {
	f.mask |= flag
	if value {
		f.flags |= flag
	} else {
		f.flags &^= flag
	}
	return f
}

// Rejects reports whether the filter excludes property.
func (f Filter) Rejects(p Property) bool {
	return f.RejectsFlags(p.Flags())
}

func (f Filter) RejectsFlags(flags PropertyFlags) bool {
	return (flags^f.flags)&f.mask != 0
}

func (f Filter) IsEmpty() bool { return f.mask == 0 }
