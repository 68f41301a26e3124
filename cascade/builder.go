package cascade

import "strings"

// CascadeFlags summarize what a cascade pass has seen, they are reported to
// the StyleBuilder at the end of Apply.
type CascadeFlags uint16

const (
	HasAuthorBackground CascadeFlags = 1 << iota
	HasAuthorBorder
	HasAuthorBorderRadius
	CanAffectAnimations
	HasVariableReference
	HasVariableReferenceFromNonInherited
	RejectedLegacyOverlapping
)

func (f CascadeFlags) Has(flag CascadeFlags) bool { return f&flag != 0 }

var cascadeFlagNames = []string{
	"author-background",
	"author-border",
	"author-border-radius",
	"can-affect-animations",
	"variable-reference",
	"variable-reference-from-non-inherited",
	"rejected-legacy-overlapping",
}

func (f CascadeFlags) String() string {
	var names []string
	for i, name := range cascadeFlagNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// ApplyContext describes where an applied value came from.
type ApplyContext struct {
	// Origin of the declaration after revert and revert-layer were
	// resolved, OriginNone when value was reverted to nothing.
	Origin    Origin
	TreeOrder uint16
}

// StyleBuilder receives the results of the cascade and builds the computed
// style of an element.
type StyleBuilder interface {
	// ApplyProperty applies cascaded value. Values never contain var() or
	// env() references, but may be CSS-wide keywords. For custom properties
	// the value may also be CyclicVariableValue or InvalidVariableValue,
	// meaning the guaranteed-invalid value.
	ApplyProperty(p Property, value Value, ctx ApplyContext)

	// Direction and WritingMode return current computed values, before the
	// cascade they are inherited from the parent.
	Direction() Direction
	WritingMode() WritingMode

	// VariableData returns current value of custom property, inherited
	// tells which storage the property lives in.
	VariableData(name string, inherited bool) *VariableData

	// UpdateFont is called after high priority properties are applied.
	UpdateFont()
	// UpdateLineHeight is called after line-height is applied.
	UpdateLineHeight()

	SetCascadeFlags(flags CascadeFlags)
}
