package cascade

// LinkMatchType tells which link states a matched block applies to.
type LinkMatchType uint8

const (
	MatchLink LinkMatchType = 1 << iota
	MatchVisited
	MatchAll = MatchLink | MatchVisited
)

// MatchedProperties is one matched declaration block together with its
// cascade metadata.
type MatchedProperties struct {
	Properties            *PropertySet
	Origin                Origin
	LayerOrder            uint16
	TreeOrder             uint16
	IsInlineStyle         bool
	LinkMatchType         LinkMatchType
	PresentationAttribute bool
}

// MatchOptions carry optional metadata for MatchResult.Add.
type MatchOptions struct {
	LayerOrder    uint16
	IsInlineStyle bool
	LinkMatchType LinkMatchType
}

// DefaultLayerOrder is the order of the implicit outer layer, which wins
// over all named layers.
const DefaultLayerOrder = 0xFFFF

// MatchResult collects matched declaration blocks in cascade order: blocks
// must be added by non-decreasing origin.
type MatchResult struct {
	matched    []MatchedProperties
	treeOrder  uint16
	lastOrigin Origin
	hasAuthor  bool
}

// Add appends a matched block. Zero LinkMatchType means MatchAll.
func (m *MatchResult) Add(set *PropertySet, origin Origin, opts MatchOptions) {
	dcheck(origin >= m.lastOrigin, "matched properties added out of origin order")
	dcheck(len(m.matched) < 0xFFFF, "too many matched blocks")
	dcheck(set.Len() <= 0xFFFF, "too many declarations in a block")
	if opts.LinkMatchType == 0 {
		opts.LinkMatchType = MatchAll
	}
	m.lastOrigin = origin
	m.matched = append(m.matched, MatchedProperties{
		Properties:    set,
		Origin:        origin,
		LayerOrder:    opts.LayerOrder,
		TreeOrder:     m.treeOrder,
		IsInlineStyle: opts.IsInlineStyle,
		LinkMatchType: opts.LinkMatchType,
	})
}

// AddPresentationHints appends presentational hints of an element.
func (m *MatchResult) AddPresentationHints(set *PropertySet) {
	m.Add(set, OriginAuthorPresentationalHint, MatchOptions{LayerOrder: DefaultLayerOrder})
	m.matched[len(m.matched)-1].PresentationAttribute = true
}

// BeginAuthorTreeScope starts a new tree scope for author declarations.
// Declarations from later tree scopes win over earlier ones.
func (m *MatchResult) BeginAuthorTreeScope() {
	if m.hasAuthor {
		m.treeOrder++
	}
	m.hasAuthor = true
}

// Matched returns all added blocks.
func (m *MatchResult) Matched() []MatchedProperties { return m.matched }

// Len returns number of added blocks.
func (m *MatchResult) Len() int { return len(m.matched) }

// Reset removes all blocks.
func (m *MatchResult) Reset() {
	clear(m.matched)
	m.matched = m.matched[:0]
	m.treeOrder = 0
	m.lastOrigin = OriginNone
	m.hasAuthor = false
}

func (m *MatchResult) valueAt(position uint32) (Declaration, bool) {
	block, decl := DecodeMatchPosition(position)
	if block >= len(m.matched) || decl >= m.matched[block].Properties.Len() {
		return Declaration{}, false
	}
	return m.matched[block].Properties.At(decl), true
}
