package cascade

import "iter"

// Expanded is a single property contributed by a matched declaration block.
// The value is found through Priority.Position.
type Expanded struct {
	Priority Priority
	Property Property
}

// linkFilter returns filter implied by the link match type of a block:
// declarations from :link-only rules do not set visited properties and
// declarations from :visited-only rules set nothing but visited
// properties.
func linkFilter(t LinkMatchType) Filter {
	switch t {
	case MatchLink:
		return NewFilter(FlagVisited, false)
	case MatchVisited:
		return NewFilter(FlagVisited, true)
	}
	return Filter{}
}

// ExpandCascade yields all properties block contributes to the cascade.
// The 'all' shorthand is expanded into its longhands and longhands with
// visited counterparts yield the counterpart as well. Custom properties are
// yielded as is.
func ExpandCascade(block MatchedProperties, blockIndex int, registry Registry) iter.Seq[Expanded] {
	filter := linkFilter(block.LinkMatchType)
	return func(yield func(Expanded) bool) {
		emit := func(priority Priority, p Property) bool {
			if filter.Rejects(p) {
				return true
			}
			return yield(Expanded{Priority: priority, Property: p})
		}
		emitWithVisited := func(priority Priority, p Property) bool {
			if !emit(priority, p) {
				return false
			}
			if v, ok := p.Visited(); ok {
				return emit(priority, v)
			}
			return true
		}

		for i, decl := range block.Properties.Declarations() {
			priority := NewPriority(block.Origin, decl.Important, block.TreeOrder, block.IsInlineStyle,
				block.LayerOrder, EncodeMatchPosition(blockIndex, i))

			switch {
			case decl.Name.IsCustom():
				if !emit(priority, NewCustomProperty(decl.Name.custom, registry)) {
					return
				}
			case decl.Name.id == PropertyAll:
				for _, id := range allExpansion {
					if !emitWithVisited(priority, LookupProperty(id)) {
						return
					}
				}
			default:
				if !emitWithVisited(priority, LookupProperty(decl.Name.id)) {
					return
				}
			}
		}
	}
}
