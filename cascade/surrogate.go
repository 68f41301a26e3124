package cascade

import "strings"

// Direction is the computed value of the 'direction' property.
type Direction uint8

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection returns direction for keyword, unknown keywords map to ltr.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "rtl") {
		return DirectionRTL
	}
	return DirectionLTR
}

// WritingMode is the computed value of the 'writing-mode' property.
type WritingMode uint8

const (
	WritingModeHorizontalTB WritingMode = iota
	WritingModeVerticalRL
	WritingModeVerticalLR
)

func (w WritingMode) String() string {
	switch w {
	case WritingModeVerticalRL:
		return "vertical-rl"
	case WritingModeVerticalLR:
		return "vertical-lr"
	}
	return "horizontal-tb"
}

// IsHorizontal reports whether lines are laid out horizontally.
func (w WritingMode) IsHorizontal() bool {
	return w == WritingModeHorizontalTB
}

// ParseWritingMode returns writing mode for keyword, legacy SVG and
// -webkit-writing-mode keywords are accepted too.
func ParseWritingMode(s string) WritingMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical-rl", "tb-rl", "tb":
		return WritingModeVerticalRL
	case "vertical-lr":
		return WritingModeVerticalLR
	}
	return WritingModeHorizontalTB
}

type logicalSide uint8

const (
	sideBlockStart logicalSide = iota
	sideBlockEnd
	sideInlineStart
	sideInlineEnd
)

type logicalGroup uint8

const (
	groupNone logicalGroup = iota
	groupWritingMode
	groupSize
	groupMinSize
	groupMaxSize
	groupInset
	groupMargin
	groupPadding
	groupBorderWidth
	groupBorderColor
	groupVisitedBorderColor
)

type logicalProperty struct {
	group logicalGroup
	side  logicalSide
}

// physical sides are indexed top, right, bottom, left.
var physicalGroups = map[logicalGroup][4]PropertyID{
	groupInset:              {PropertyTop, PropertyRight, PropertyBottom, PropertyLeft},
	groupMargin:             {PropertyMarginTop, PropertyMarginRight, PropertyMarginBottom, PropertyMarginLeft},
	groupPadding:            {PropertyPaddingTop, PropertyPaddingRight, PropertyPaddingBottom, PropertyPaddingLeft},
	groupBorderWidth:        {PropertyBorderTopWidth, PropertyBorderRightWidth, PropertyBorderBottomWidth, PropertyBorderLeftWidth},
	groupBorderColor:        {PropertyBorderTopColor, PropertyBorderRightColor, PropertyBorderBottomColor, PropertyBorderLeftColor},
	groupVisitedBorderColor: {PropertyInternalVisitedBorderTopColor, PropertyInternalVisitedBorderRightColor, PropertyInternalVisitedBorderBottomColor, PropertyInternalVisitedBorderLeftColor},
}

// sizes are indexed width, height.
var sizeGroups = map[logicalGroup][2]PropertyID{
	groupSize:    {PropertyWidth, PropertyHeight},
	groupMinSize: {PropertyMinWidth, PropertyMinHeight},
	groupMaxSize: {PropertyMaxWidth, PropertyMaxHeight},
}

const (
	physTop = iota
	physRight
	physBottom
	physLeft
)

func physicalSide(side logicalSide, dir Direction, wm WritingMode) int {
	switch side {
	case sideBlockStart, sideBlockEnd:
		start, end := physTop, physBottom
		switch wm {
		case WritingModeVerticalRL:
			start, end = physRight, physLeft
		case WritingModeVerticalLR:
			start, end = physLeft, physRight
		}
		if side == sideBlockStart {
			return start
		}
		return end
	default:
		start, end := physLeft, physRight
		if !wm.IsHorizontal() {
			start, end = physTop, physBottom
		}
		if dir == DirectionRTL {
			start, end = end, start
		}
		if side == sideInlineStart {
			return start
		}
		return end
	}
}

// ResolveSurrogate returns the property a surrogate stands in for, given
// computed direction and writing mode. Properties which are not surrogates
// are returned unchanged.
func ResolveSurrogate(p Property, dir Direction, wm WritingMode) Property {
	if p.IsCustom() || !p.IsSurrogate() {
		return p
	}
	lp := propertyTable[p.id].logical
	switch lp.group {
	case groupWritingMode:
		return LookupProperty(PropertyWritingMode)
	case groupSize, groupMinSize, groupMaxSize:
		pair := sizeGroups[lp.group]
		inline := lp.side == sideInlineStart || lp.side == sideInlineEnd
		if inline == wm.IsHorizontal() {
			return LookupProperty(pair[0])
		}
		return LookupProperty(pair[1])
	case groupNone:
		return p
	}
	return LookupProperty(physicalGroups[lp.group][physicalSide(lp.side, dir, wm)])
}

// isDirectionAware reports whether resolving the surrogate depends on the
// computed direction or writing mode.
func isDirectionAware(p Property) bool {
	if p.IsCustom() || !p.IsSurrogate() {
		return false
	}
	g := propertyTable[p.id].logical.group
	return g != groupWritingMode && g != groupNone
}
