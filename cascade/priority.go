package cascade

import (
	"cmp"
	"fmt"
)

// Priority decides which of two declarations for the same property wins.
// It is an immutable value; the zero Priority has OriginNone and loses to
// everything.
type Priority struct {
	origin      Origin
	important   bool
	inlineStyle bool
	treeOrder   uint16
	layerOrder  uint16
	position    uint32
	generation  uint8
}

// LayerKey is the part of a Priority that identifies the cascade layer a
// declaration belongs to. Two declarations with equal keys are in the same
// layer and are ordered by position only.
type LayerKey struct {
	rank        uint8
	treeOrder   uint16
	inlineStyle bool
	layerOrder  uint16
}

// Compare orders layer keys the same way their priorities are ordered.
func (k LayerKey) Compare(o LayerKey) int {
	if c := cmp.Compare(k.rank, o.rank); c != 0 {
		return c
	}
	if c := cmp.Compare(k.treeOrder, o.treeOrder); c != 0 {
		return c
	}
	if c := compareBool(k.inlineStyle, o.inlineStyle); c != 0 {
		return c
	}
	return cmp.Compare(k.layerOrder, o.layerOrder)
}

// Less reports whether k belongs to a strictly earlier layer than o.
func (k LayerKey) Less(o LayerKey) bool {
	return k.Compare(o) < 0
}

// NewPriority creates priority for a declaration. The tree order is the
// shadow-including order of the tree scope the declaration comes from, the
// layer order is the position of its cascade layer (implicit outer layer is
// the highest), and position is the encoded location of the value (see
// EncodeMatchPosition and EncodeInterpolationPosition).
func NewPriority(origin Origin, important bool, treeOrder uint16, inlineStyle bool, layerOrder uint16, position uint32) Priority {
	return Priority{
		origin:      origin,
		important:   important,
		inlineStyle: inlineStyle,
		treeOrder:   treeOrder,
		layerOrder:  layerOrder,
		position:    position,
	}
}

// PriorityForOrigin returns the lowest priority of a given origin.
func PriorityForOrigin(origin Origin) Priority {
	return Priority{origin: origin}
}

func (p Priority) Origin() Origin        { return p.origin }
func (p Priority) IsImportant() bool     { return p.important }
func (p Priority) IsInlineStyle() bool   { return p.inlineStyle }
func (p Priority) TreeOrder() uint16     { return p.treeOrder }
func (p Priority) LayerOrder() uint16    { return p.layerOrder }
func (p Priority) Position() uint32      { return p.position }
func (p Priority) Generation() uint8     { return p.generation }
func (p Priority) HasOrigin() bool       { return p.origin != OriginNone }
func (p Priority) IsInterpolation() bool { return p.origin.IsInterpolation() }

// WithGeneration returns a copy of p stamped with generation g.
func (p Priority) WithGeneration(g uint8) Priority {
	p.generation = g
	return p
}

// rank combines origin and importance. Importance inverts the origin order
// and places important declarations above animations; transitions stay on
// top:
//
//	UA < User < PresHint < Author < Animation < Author!  < User! < UA! < Transition
func (p Priority) rank() uint8 {
	switch {
	case p.origin == OriginTransition:
		return 16
	case p.important:
		return 15 - uint8(p.origin)
	default:
		return uint8(p.origin)
	}
}

// ForLayerComparison returns the layer key of p.
func (p Priority) ForLayerComparison() LayerKey {
	k := LayerKey{
		rank:        p.rank(),
		treeOrder:   p.treeOrder,
		inlineStyle: p.inlineStyle,
		layerOrder:  p.layerOrder,
	}
	if p.important {
		// Important declarations from inner tree scopes and earlier layers
		// win over outer scopes and later layers.
		k.treeOrder = ^k.treeOrder
		k.layerOrder = ^k.layerOrder
	}
	return k
}

// Compare returns -1, 0 or +1 depending on whether p loses to, ties with or
// wins over o. Generation is the least significant key.
func (p Priority) Compare(o Priority) int {
	if c := p.ForLayerComparison().Compare(o.ForLayerComparison()); c != 0 {
		return c
	}
	if c := cmp.Compare(p.position, o.position); c != 0 {
		return c
	}
	return cmp.Compare(p.generation, o.generation)
}

func (p Priority) Less(o Priority) bool { return p.Compare(o) < 0 }

func (p Priority) String() string {
	imp := ""
	if p.important {
		imp = "!important"
	}
	return fmt.Sprintf("%s%s tree=%d inline=%t layer=%d pos=%#x gen=%d",
		p.origin, imp, p.treeOrder, p.inlineStyle, p.layerOrder, p.position, p.generation)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// MaxMatchIndex is the largest block index and the largest declaration
// index a match position can hold. Callers building match results have to
// stay within it.
const MaxMatchIndex = 0xFFFF

// EncodeMatchPosition returns position of declaration declIndex within
// matched block blockIndex.
func EncodeMatchPosition(blockIndex, declIndex int) uint32 {
	dcheck(blockIndex <= MaxMatchIndex && declIndex <= MaxMatchIndex, "match result index out of range")
	return uint32(blockIndex&0xFFFF)<<16 | uint32(declIndex&0xFFFF)
}

// DecodeMatchPosition is the inverse of EncodeMatchPosition.
func DecodeMatchPosition(position uint32) (blockIndex, declIndex int) {
	return int(position >> 16), int(position & 0xFFFF)
}

// EncodeInterpolationPosition returns position of the interpolation for
// property id in interpolations entry index.
func EncodeInterpolationPosition(id PropertyID, index int, presentationAttribute bool) uint32 {
	dcheck(index < maxInterpolationEntries, "interpolation index out of range")
	pos := uint32(id)<<16 | uint32(index&0x7FFF)<<1
	if presentationAttribute {
		pos |= 1
	}
	return pos
}

// DecodeInterpolationPosition is the inverse of EncodeInterpolationPosition.
func DecodeInterpolationPosition(position uint32) (id PropertyID, index int, presentationAttribute bool) {
	return PropertyID(position >> 16), int(position>>1) & 0x7FFF, position&1 != 0
}
