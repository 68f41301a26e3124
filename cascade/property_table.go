package cascade

const (
	PropertyInvalid PropertyID = iota

	// high priority, applied in this order
	PropertyDirection
	PropertyWritingMode
	PropertyTextOrientation
	PropertyZoom
	PropertyWebkitLocale
	PropertyFontFamily
	PropertyFontSize
	PropertyFontStyle
	PropertyFontWeight
	PropertyFontStretch
	PropertyFontVariantCaps
	PropertyFontVariantLigatures
	PropertyFontVariantNumeric
	PropertyFontFeatureSettings
	PropertyFontKerning
	PropertyFontSizeAdjust
	PropertyFontOpticalSizing
	PropertyTextRendering
	PropertyWebkitFontSmoothing
	PropertyMathStyle
	PropertyColor
	PropertyInternalVisitedColor

	// everything else
	PropertyColorScheme
	PropertyMathDepth
	PropertyForcedColorAdjust
	PropertyMaskImage
	PropertyWebkitMaskImage
	PropertyLineHeight
	PropertyDisplay
	PropertyPosition
	PropertyFloat
	PropertyClear
	PropertyVisibility
	PropertyOpacity
	PropertyZIndex
	PropertyBoxSizing
	PropertyContent
	PropertyCursor
	PropertyUnicodeBidi
	PropertyWidth
	PropertyHeight
	PropertyMinWidth
	PropertyMinHeight
	PropertyMaxWidth
	PropertyMaxHeight
	PropertyTop
	PropertyRight
	PropertyBottom
	PropertyLeft
	PropertyMarginTop
	PropertyMarginRight
	PropertyMarginBottom
	PropertyMarginLeft
	PropertyPaddingTop
	PropertyPaddingRight
	PropertyPaddingBottom
	PropertyPaddingLeft
	PropertyBorderTopWidth
	PropertyBorderRightWidth
	PropertyBorderBottomWidth
	PropertyBorderLeftWidth
	PropertyBorderTopStyle
	PropertyBorderRightStyle
	PropertyBorderBottomStyle
	PropertyBorderLeftStyle
	PropertyBorderTopColor
	PropertyBorderRightColor
	PropertyBorderBottomColor
	PropertyBorderLeftColor
	PropertyInternalVisitedBorderTopColor
	PropertyInternalVisitedBorderRightColor
	PropertyInternalVisitedBorderBottomColor
	PropertyInternalVisitedBorderLeftColor
	PropertyBorderTopLeftRadius
	PropertyBorderTopRightRadius
	PropertyBorderBottomRightRadius
	PropertyBorderBottomLeftRadius
	PropertyBorderImageSource
	PropertyBorderImageSlice
	PropertyBorderImageWidth
	PropertyBorderImageOutset
	PropertyBorderImageRepeat
	PropertyWebkitBorderImage
	PropertyBackgroundColor
	PropertyInternalVisitedBackgroundColor
	PropertyBackgroundImage
	PropertyBackgroundPositionX
	PropertyBackgroundPositionY
	PropertyBackgroundSize
	PropertyBackgroundRepeat
	PropertyBackgroundAttachment
	PropertyBackgroundClip
	PropertyBackgroundOrigin
	PropertyOutlineColor
	PropertyInternalVisitedOutlineColor
	PropertyOutlineStyle
	PropertyOutlineWidth
	PropertyOutlineOffset
	PropertyTextDecorationLine
	PropertyTextDecorationStyle
	PropertyTextDecorationColor
	PropertyInternalVisitedTextDecorationColor
	PropertyCaretColor
	PropertyInternalVisitedCaretColor
	PropertyTextAlign
	PropertyTextIndent
	PropertyTextTransform
	PropertyWhiteSpace
	PropertyWordSpacing
	PropertyLetterSpacing
	PropertyVerticalAlign
	PropertyBaselineSource
	PropertyListStyleType
	PropertyListStylePosition
	PropertyListStyleImage
	PropertyOverflowX
	PropertyOverflowY
	PropertyTransform
	PropertyTransformOrigin
	PropertyWebkitTransformOriginX
	PropertyWebkitTransformOriginY
	PropertyWebkitTransformOriginZ
	PropertyPerspective
	PropertyPerspectiveOrigin
	PropertyWebkitPerspectiveOriginX
	PropertyWebkitPerspectiveOriginY
	PropertyAnimationName
	PropertyAnimationDuration
	PropertyAnimationTimingFunction
	PropertyAnimationDelay
	PropertyAnimationIterationCount
	PropertyAnimationDirection
	PropertyAnimationFillMode
	PropertyAnimationPlayState
	PropertyTransitionProperty
	PropertyTransitionDuration
	PropertyTransitionTimingFunction
	PropertyTransitionDelay

	// surrogates
	PropertyWebkitWritingMode
	PropertyInlineSize
	PropertyBlockSize
	PropertyMinInlineSize
	PropertyMinBlockSize
	PropertyMaxInlineSize
	PropertyMaxBlockSize
	PropertyInsetBlockStart
	PropertyInsetBlockEnd
	PropertyInsetInlineStart
	PropertyInsetInlineEnd
	PropertyMarginBlockStart
	PropertyMarginBlockEnd
	PropertyMarginInlineStart
	PropertyMarginInlineEnd
	PropertyPaddingBlockStart
	PropertyPaddingBlockEnd
	PropertyPaddingInlineStart
	PropertyPaddingInlineEnd
	PropertyBorderBlockStartWidth
	PropertyBorderBlockEndWidth
	PropertyBorderInlineStartWidth
	PropertyBorderInlineEndWidth
	PropertyBorderBlockStartColor
	PropertyBorderBlockEndColor
	PropertyBorderInlineStartColor
	PropertyBorderInlineEndColor
	PropertyInternalVisitedBorderBlockStartColor
	PropertyInternalVisitedBorderBlockEndColor
	PropertyInternalVisitedBorderInlineStartColor
	PropertyInternalVisitedBorderInlineEndColor

	// shorthands
	PropertyAll
	PropertyMargin
	PropertyPadding
	PropertyInset
	PropertyBorderWidth
	PropertyBorderStyle
	PropertyBorderColor
	PropertyBorderTop
	PropertyBorderRight
	PropertyBorderBottom
	PropertyBorderLeft
	PropertyBorder
	PropertyBorderRadius
	PropertyBorderImage
	PropertyBackgroundPosition
	PropertyOutline
	PropertyOverflow
	PropertyMarginInline
	PropertyMarginBlock
	PropertyPaddingInline
	PropertyPaddingBlock
	PropertyInsetInline
	PropertyInsetBlock
	PropertyListStyle
	PropertyTextDecoration

	// PropertyVariable is the ID shared by all custom properties.
	PropertyVariable

	numProperties
)

const firstLowPriorityProperty = PropertyColorScheme

type propertyInfo struct {
	name      string
	initial   string
	flags     PropertyFlags
	visited   PropertyID
	unvisited PropertyID
	longhands []PropertyID
	logical   logicalProperty
}

const (
	hp  = FlagHighPriority
	inh = FlagInherited
	// surrogate flags
	srg = FlagSurrogate | FlagNotAffectedByAll
	// visited counterpart flags
	vis = FlagVisited | FlagInternal
	sh  = FlagShorthand
)

var propertyTable = [numProperties]propertyInfo{
	PropertyDirection:            {name: "direction", initial: "ltr", flags: hp | inh | FlagNotAffectedByAll},
	PropertyWritingMode:          {name: "writing-mode", initial: "horizontal-tb", flags: hp | inh},
	PropertyTextOrientation:      {name: "text-orientation", initial: "mixed", flags: hp | inh},
	PropertyZoom:                 {name: "zoom", initial: "1", flags: hp},
	PropertyWebkitLocale:         {name: "-webkit-locale", initial: "auto", flags: hp | inh},
	PropertyFontFamily:           {name: "font-family", initial: "serif", flags: hp | inh},
	PropertyFontSize:             {name: "font-size", initial: "medium", flags: hp | inh},
	PropertyFontStyle:            {name: "font-style", initial: "normal", flags: hp | inh},
	PropertyFontWeight:           {name: "font-weight", initial: "normal", flags: hp | inh},
	PropertyFontStretch:          {name: "font-stretch", initial: "normal", flags: hp | inh},
	PropertyFontVariantCaps:      {name: "font-variant-caps", initial: "normal", flags: hp | inh},
	PropertyFontVariantLigatures: {name: "font-variant-ligatures", initial: "normal", flags: hp | inh},
	PropertyFontVariantNumeric:   {name: "font-variant-numeric", initial: "normal", flags: hp | inh},
	PropertyFontFeatureSettings:  {name: "font-feature-settings", initial: "normal", flags: hp | inh},
	PropertyFontKerning:          {name: "font-kerning", initial: "auto", flags: hp | inh},
	PropertyFontSizeAdjust:       {name: "font-size-adjust", initial: "none", flags: hp | inh},
	PropertyFontOpticalSizing:    {name: "font-optical-sizing", initial: "auto", flags: hp | inh},
	PropertyTextRendering:        {name: "text-rendering", initial: "auto", flags: hp | inh},
	PropertyWebkitFontSmoothing:  {name: "-webkit-font-smoothing", initial: "auto", flags: hp | inh},
	PropertyMathStyle:            {name: "math-style", initial: "normal", flags: hp | inh},
	PropertyColor:                {name: "color", initial: "canvastext", flags: hp | inh, visited: PropertyInternalVisitedColor},
	PropertyInternalVisitedColor: {name: "-internal-visited-color", initial: "canvastext", flags: hp | inh | vis, unvisited: PropertyColor},

	PropertyColorScheme:       {name: "color-scheme", initial: "normal", flags: inh},
	PropertyMathDepth:         {name: "math-depth", initial: "0", flags: inh},
	PropertyForcedColorAdjust: {name: "forced-color-adjust", initial: "auto", flags: inh},
	PropertyMaskImage:         {name: "mask-image", initial: "none"},
	PropertyWebkitMaskImage:   {name: "-webkit-mask-image", initial: "none"},
	PropertyLineHeight:        {name: "line-height", initial: "normal", flags: inh},
	PropertyDisplay:           {name: "display", initial: "inline"},
	PropertyPosition:          {name: "position", initial: "static"},
	PropertyFloat:             {name: "float", initial: "none"},
	PropertyClear:             {name: "clear", initial: "none"},
	PropertyVisibility:        {name: "visibility", initial: "visible", flags: inh},
	PropertyOpacity:           {name: "opacity", initial: "1"},
	PropertyZIndex:            {name: "z-index", initial: "auto"},
	PropertyBoxSizing:         {name: "box-sizing", initial: "content-box"},
	PropertyContent:           {name: "content", initial: "normal"},
	PropertyCursor:            {name: "cursor", initial: "auto", flags: inh},
	PropertyUnicodeBidi:       {name: "unicode-bidi", initial: "normal", flags: FlagNotAffectedByAll},

	PropertyWidth:     {name: "width", initial: "auto"},
	PropertyHeight:    {name: "height", initial: "auto"},
	PropertyMinWidth:  {name: "min-width", initial: "auto"},
	PropertyMinHeight: {name: "min-height", initial: "auto"},
	PropertyMaxWidth:  {name: "max-width", initial: "none"},
	PropertyMaxHeight: {name: "max-height", initial: "none"},

	PropertyTop:    {name: "top", initial: "auto"},
	PropertyRight:  {name: "right", initial: "auto"},
	PropertyBottom: {name: "bottom", initial: "auto"},
	PropertyLeft:   {name: "left", initial: "auto"},

	PropertyMarginTop:     {name: "margin-top", initial: "0px"},
	PropertyMarginRight:   {name: "margin-right", initial: "0px"},
	PropertyMarginBottom:  {name: "margin-bottom", initial: "0px"},
	PropertyMarginLeft:    {name: "margin-left", initial: "0px"},
	PropertyPaddingTop:    {name: "padding-top", initial: "0px"},
	PropertyPaddingRight:  {name: "padding-right", initial: "0px"},
	PropertyPaddingBottom: {name: "padding-bottom", initial: "0px"},
	PropertyPaddingLeft:   {name: "padding-left", initial: "0px"},

	PropertyBorderTopWidth:    {name: "border-top-width", initial: "medium", flags: FlagBorder},
	PropertyBorderRightWidth:  {name: "border-right-width", initial: "medium", flags: FlagBorder},
	PropertyBorderBottomWidth: {name: "border-bottom-width", initial: "medium", flags: FlagBorder},
	PropertyBorderLeftWidth:   {name: "border-left-width", initial: "medium", flags: FlagBorder},
	PropertyBorderTopStyle:    {name: "border-top-style", initial: "none", flags: FlagBorder},
	PropertyBorderRightStyle:  {name: "border-right-style", initial: "none", flags: FlagBorder},
	PropertyBorderBottomStyle: {name: "border-bottom-style", initial: "none", flags: FlagBorder},
	PropertyBorderLeftStyle:   {name: "border-left-style", initial: "none", flags: FlagBorder},

	PropertyBorderTopColor:    {name: "border-top-color", initial: "currentcolor", flags: FlagBorder, visited: PropertyInternalVisitedBorderTopColor},
	PropertyBorderRightColor:  {name: "border-right-color", initial: "currentcolor", flags: FlagBorder, visited: PropertyInternalVisitedBorderRightColor},
	PropertyBorderBottomColor: {name: "border-bottom-color", initial: "currentcolor", flags: FlagBorder, visited: PropertyInternalVisitedBorderBottomColor},
	PropertyBorderLeftColor:   {name: "border-left-color", initial: "currentcolor", flags: FlagBorder, visited: PropertyInternalVisitedBorderLeftColor},

	PropertyInternalVisitedBorderTopColor:    {name: "-internal-visited-border-top-color", initial: "currentcolor", flags: FlagBorder | vis, unvisited: PropertyBorderTopColor},
	PropertyInternalVisitedBorderRightColor:  {name: "-internal-visited-border-right-color", initial: "currentcolor", flags: FlagBorder | vis, unvisited: PropertyBorderRightColor},
	PropertyInternalVisitedBorderBottomColor: {name: "-internal-visited-border-bottom-color", initial: "currentcolor", flags: FlagBorder | vis, unvisited: PropertyBorderBottomColor},
	PropertyInternalVisitedBorderLeftColor:   {name: "-internal-visited-border-left-color", initial: "currentcolor", flags: FlagBorder | vis, unvisited: PropertyBorderLeftColor},

	PropertyBorderTopLeftRadius:     {name: "border-top-left-radius", initial: "0px", flags: FlagBorderRadius},
	PropertyBorderTopRightRadius:    {name: "border-top-right-radius", initial: "0px", flags: FlagBorderRadius},
	PropertyBorderBottomRightRadius: {name: "border-bottom-right-radius", initial: "0px", flags: FlagBorderRadius},
	PropertyBorderBottomLeftRadius:  {name: "border-bottom-left-radius", initial: "0px", flags: FlagBorderRadius},

	PropertyBorderImageSource: {name: "border-image-source", initial: "none", flags: FlagBorder | FlagOverlapping},
	PropertyBorderImageSlice:  {name: "border-image-slice", initial: "100%", flags: FlagBorder | FlagOverlapping},
	PropertyBorderImageWidth:  {name: "border-image-width", initial: "1", flags: FlagBorder | FlagOverlapping},
	PropertyBorderImageOutset: {name: "border-image-outset", initial: "0", flags: FlagBorder | FlagOverlapping},
	PropertyBorderImageRepeat: {name: "border-image-repeat", initial: "stretch", flags: FlagBorder | FlagOverlapping},
	PropertyWebkitBorderImage: {name: "-webkit-border-image", initial: "none", flags: FlagBorder | FlagLegacyOverlapping},

	PropertyBackgroundColor:                {name: "background-color", initial: "transparent", flags: FlagBackground, visited: PropertyInternalVisitedBackgroundColor},
	PropertyInternalVisitedBackgroundColor: {name: "-internal-visited-background-color", initial: "transparent", flags: FlagBackground | vis, unvisited: PropertyBackgroundColor},
	PropertyBackgroundImage:                {name: "background-image", initial: "none", flags: FlagBackground},
	PropertyBackgroundPositionX:            {name: "background-position-x", initial: "0%", flags: FlagBackground},
	PropertyBackgroundPositionY:            {name: "background-position-y", initial: "0%", flags: FlagBackground},
	PropertyBackgroundSize:                 {name: "background-size", initial: "auto", flags: FlagBackground},
	PropertyBackgroundRepeat:               {name: "background-repeat", initial: "repeat", flags: FlagBackground},
	PropertyBackgroundAttachment:           {name: "background-attachment", initial: "scroll", flags: FlagBackground},
	PropertyBackgroundClip:                 {name: "background-clip", initial: "border-box", flags: FlagBackground},
	PropertyBackgroundOrigin:               {name: "background-origin", initial: "padding-box", flags: FlagBackground},

	PropertyOutlineColor:                {name: "outline-color", initial: "currentcolor", visited: PropertyInternalVisitedOutlineColor},
	PropertyInternalVisitedOutlineColor: {name: "-internal-visited-outline-color", initial: "currentcolor", flags: vis, unvisited: PropertyOutlineColor},
	PropertyOutlineStyle:                {name: "outline-style", initial: "none"},
	PropertyOutlineWidth:                {name: "outline-width", initial: "medium"},
	PropertyOutlineOffset:               {name: "outline-offset", initial: "0px"},

	PropertyTextDecorationLine:                 {name: "text-decoration-line", initial: "none"},
	PropertyTextDecorationStyle:                {name: "text-decoration-style", initial: "solid"},
	PropertyTextDecorationColor:                {name: "text-decoration-color", initial: "currentcolor", visited: PropertyInternalVisitedTextDecorationColor},
	PropertyInternalVisitedTextDecorationColor: {name: "-internal-visited-text-decoration-color", initial: "currentcolor", flags: vis, unvisited: PropertyTextDecorationColor},

	PropertyCaretColor:                {name: "caret-color", initial: "auto", flags: inh, visited: PropertyInternalVisitedCaretColor},
	PropertyInternalVisitedCaretColor: {name: "-internal-visited-caret-color", initial: "auto", flags: inh | vis, unvisited: PropertyCaretColor},

	PropertyTextAlign:      {name: "text-align", initial: "start", flags: inh},
	PropertyTextIndent:     {name: "text-indent", initial: "0px", flags: inh},
	PropertyTextTransform:  {name: "text-transform", initial: "none", flags: inh},
	PropertyWhiteSpace:     {name: "white-space", initial: "normal", flags: inh},
	PropertyWordSpacing:    {name: "word-spacing", initial: "normal", flags: inh},
	PropertyLetterSpacing:  {name: "letter-spacing", initial: "normal", flags: inh},
	PropertyVerticalAlign:  {name: "vertical-align", initial: "baseline"},
	PropertyBaselineSource: {name: "baseline-source", initial: "auto", flags: FlagOverlapping},

	PropertyListStyleType:     {name: "list-style-type", initial: "disc", flags: inh},
	PropertyListStylePosition: {name: "list-style-position", initial: "outside", flags: inh},
	PropertyListStyleImage:    {name: "list-style-image", initial: "none", flags: inh},
	PropertyOverflowX:         {name: "overflow-x", initial: "visible"},
	PropertyOverflowY:         {name: "overflow-y", initial: "visible"},

	PropertyTransform:                {name: "transform", initial: "none"},
	PropertyTransformOrigin:          {name: "transform-origin", initial: "50% 50% 0px", flags: FlagOverlapping},
	PropertyWebkitTransformOriginX:   {name: "-webkit-transform-origin-x", initial: "50%", flags: FlagLegacyOverlapping},
	PropertyWebkitTransformOriginY:   {name: "-webkit-transform-origin-y", initial: "50%", flags: FlagLegacyOverlapping},
	PropertyWebkitTransformOriginZ:   {name: "-webkit-transform-origin-z", initial: "0px", flags: FlagLegacyOverlapping},
	PropertyPerspective:              {name: "perspective", initial: "none"},
	PropertyPerspectiveOrigin:        {name: "perspective-origin", initial: "50% 50%", flags: FlagOverlapping},
	PropertyWebkitPerspectiveOriginX: {name: "-webkit-perspective-origin-x", initial: "50%", flags: FlagLegacyOverlapping},
	PropertyWebkitPerspectiveOriginY: {name: "-webkit-perspective-origin-y", initial: "50%", flags: FlagLegacyOverlapping},

	PropertyAnimationName:            {name: "animation-name", initial: "none", flags: FlagAnimation},
	PropertyAnimationDuration:        {name: "animation-duration", initial: "0s", flags: FlagAnimation},
	PropertyAnimationTimingFunction:  {name: "animation-timing-function", initial: "ease", flags: FlagAnimation},
	PropertyAnimationDelay:           {name: "animation-delay", initial: "0s", flags: FlagAnimation},
	PropertyAnimationIterationCount:  {name: "animation-iteration-count", initial: "1", flags: FlagAnimation},
	PropertyAnimationDirection:       {name: "animation-direction", initial: "normal", flags: FlagAnimation},
	PropertyAnimationFillMode:        {name: "animation-fill-mode", initial: "none", flags: FlagAnimation},
	PropertyAnimationPlayState:       {name: "animation-play-state", initial: "running", flags: FlagAnimation},
	PropertyTransitionProperty:       {name: "transition-property", initial: "all", flags: FlagAnimation},
	PropertyTransitionDuration:       {name: "transition-duration", initial: "0s", flags: FlagAnimation},
	PropertyTransitionTimingFunction: {name: "transition-timing-function", initial: "ease", flags: FlagAnimation},
	PropertyTransitionDelay:          {name: "transition-delay", initial: "0s", flags: FlagAnimation},

	PropertyWebkitWritingMode: {name: "-webkit-writing-mode", flags: srg | inh, logical: logicalProperty{group: groupWritingMode}},
	PropertyInlineSize:        {name: "inline-size", flags: srg, logical: logicalProperty{group: groupSize, side: sideInlineStart}},
	PropertyBlockSize:         {name: "block-size", flags: srg, logical: logicalProperty{group: groupSize, side: sideBlockStart}},
	PropertyMinInlineSize:     {name: "min-inline-size", flags: srg, logical: logicalProperty{group: groupMinSize, side: sideInlineStart}},
	PropertyMinBlockSize:      {name: "min-block-size", flags: srg, logical: logicalProperty{group: groupMinSize, side: sideBlockStart}},
	PropertyMaxInlineSize:     {name: "max-inline-size", flags: srg, logical: logicalProperty{group: groupMaxSize, side: sideInlineStart}},
	PropertyMaxBlockSize:      {name: "max-block-size", flags: srg, logical: logicalProperty{group: groupMaxSize, side: sideBlockStart}},

	PropertyInsetBlockStart:  {name: "inset-block-start", flags: srg, logical: logicalProperty{group: groupInset, side: sideBlockStart}},
	PropertyInsetBlockEnd:    {name: "inset-block-end", flags: srg, logical: logicalProperty{group: groupInset, side: sideBlockEnd}},
	PropertyInsetInlineStart: {name: "inset-inline-start", flags: srg, logical: logicalProperty{group: groupInset, side: sideInlineStart}},
	PropertyInsetInlineEnd:   {name: "inset-inline-end", flags: srg, logical: logicalProperty{group: groupInset, side: sideInlineEnd}},

	PropertyMarginBlockStart:  {name: "margin-block-start", flags: srg, logical: logicalProperty{group: groupMargin, side: sideBlockStart}},
	PropertyMarginBlockEnd:    {name: "margin-block-end", flags: srg, logical: logicalProperty{group: groupMargin, side: sideBlockEnd}},
	PropertyMarginInlineStart: {name: "margin-inline-start", flags: srg, logical: logicalProperty{group: groupMargin, side: sideInlineStart}},
	PropertyMarginInlineEnd:   {name: "margin-inline-end", flags: srg, logical: logicalProperty{group: groupMargin, side: sideInlineEnd}},

	PropertyPaddingBlockStart:  {name: "padding-block-start", flags: srg, logical: logicalProperty{group: groupPadding, side: sideBlockStart}},
	PropertyPaddingBlockEnd:    {name: "padding-block-end", flags: srg, logical: logicalProperty{group: groupPadding, side: sideBlockEnd}},
	PropertyPaddingInlineStart: {name: "padding-inline-start", flags: srg, logical: logicalProperty{group: groupPadding, side: sideInlineStart}},
	PropertyPaddingInlineEnd:   {name: "padding-inline-end", flags: srg, logical: logicalProperty{group: groupPadding, side: sideInlineEnd}},

	PropertyBorderBlockStartWidth:  {name: "border-block-start-width", flags: srg | FlagBorder, logical: logicalProperty{group: groupBorderWidth, side: sideBlockStart}},
	PropertyBorderBlockEndWidth:    {name: "border-block-end-width", flags: srg | FlagBorder, logical: logicalProperty{group: groupBorderWidth, side: sideBlockEnd}},
	PropertyBorderInlineStartWidth: {name: "border-inline-start-width", flags: srg | FlagBorder, logical: logicalProperty{group: groupBorderWidth, side: sideInlineStart}},
	PropertyBorderInlineEndWidth:   {name: "border-inline-end-width", flags: srg | FlagBorder, logical: logicalProperty{group: groupBorderWidth, side: sideInlineEnd}},

	PropertyBorderBlockStartColor:  {name: "border-block-start-color", flags: srg | FlagBorder, visited: PropertyInternalVisitedBorderBlockStartColor, logical: logicalProperty{group: groupBorderColor, side: sideBlockStart}},
	PropertyBorderBlockEndColor:    {name: "border-block-end-color", flags: srg | FlagBorder, visited: PropertyInternalVisitedBorderBlockEndColor, logical: logicalProperty{group: groupBorderColor, side: sideBlockEnd}},
	PropertyBorderInlineStartColor: {name: "border-inline-start-color", flags: srg | FlagBorder, visited: PropertyInternalVisitedBorderInlineStartColor, logical: logicalProperty{group: groupBorderColor, side: sideInlineStart}},
	PropertyBorderInlineEndColor:   {name: "border-inline-end-color", flags: srg | FlagBorder, visited: PropertyInternalVisitedBorderInlineEndColor, logical: logicalProperty{group: groupBorderColor, side: sideInlineEnd}},

	PropertyInternalVisitedBorderBlockStartColor:  {name: "-internal-visited-border-block-start-color", flags: srg | FlagBorder | vis, unvisited: PropertyBorderBlockStartColor, logical: logicalProperty{group: groupVisitedBorderColor, side: sideBlockStart}},
	PropertyInternalVisitedBorderBlockEndColor:    {name: "-internal-visited-border-block-end-color", flags: srg | FlagBorder | vis, unvisited: PropertyBorderBlockEndColor, logical: logicalProperty{group: groupVisitedBorderColor, side: sideBlockEnd}},
	PropertyInternalVisitedBorderInlineStartColor: {name: "-internal-visited-border-inline-start-color", flags: srg | FlagBorder | vis, unvisited: PropertyBorderInlineStartColor, logical: logicalProperty{group: groupVisitedBorderColor, side: sideInlineStart}},
	PropertyInternalVisitedBorderInlineEndColor:   {name: "-internal-visited-border-inline-end-color", flags: srg | FlagBorder | vis, unvisited: PropertyBorderInlineEndColor, logical: logicalProperty{group: groupVisitedBorderColor, side: sideInlineEnd}},

	PropertyAll:     {name: "all", flags: sh},
	PropertyMargin:  {name: "margin", flags: sh, longhands: []PropertyID{PropertyMarginTop, PropertyMarginRight, PropertyMarginBottom, PropertyMarginLeft}},
	PropertyPadding: {name: "padding", flags: sh, longhands: []PropertyID{PropertyPaddingTop, PropertyPaddingRight, PropertyPaddingBottom, PropertyPaddingLeft}},
	PropertyInset:   {name: "inset", flags: sh, longhands: []PropertyID{PropertyTop, PropertyRight, PropertyBottom, PropertyLeft}},
	PropertyBorderWidth: {name: "border-width", flags: sh, longhands: []PropertyID{
		PropertyBorderTopWidth, PropertyBorderRightWidth, PropertyBorderBottomWidth, PropertyBorderLeftWidth}},
	PropertyBorderStyle: {name: "border-style", flags: sh, longhands: []PropertyID{
		PropertyBorderTopStyle, PropertyBorderRightStyle, PropertyBorderBottomStyle, PropertyBorderLeftStyle}},
	PropertyBorderColor: {name: "border-color", flags: sh, longhands: []PropertyID{
		PropertyBorderTopColor, PropertyBorderRightColor, PropertyBorderBottomColor, PropertyBorderLeftColor}},
	PropertyBorderTop:    {name: "border-top", flags: sh, longhands: []PropertyID{PropertyBorderTopWidth, PropertyBorderTopStyle, PropertyBorderTopColor}},
	PropertyBorderRight:  {name: "border-right", flags: sh, longhands: []PropertyID{PropertyBorderRightWidth, PropertyBorderRightStyle, PropertyBorderRightColor}},
	PropertyBorderBottom: {name: "border-bottom", flags: sh, longhands: []PropertyID{PropertyBorderBottomWidth, PropertyBorderBottomStyle, PropertyBorderBottomColor}},
	PropertyBorderLeft:   {name: "border-left", flags: sh, longhands: []PropertyID{PropertyBorderLeftWidth, PropertyBorderLeftStyle, PropertyBorderLeftColor}},
	PropertyBorder: {name: "border", flags: sh, longhands: []PropertyID{
		PropertyBorderTopWidth, PropertyBorderRightWidth, PropertyBorderBottomWidth, PropertyBorderLeftWidth,
		PropertyBorderTopStyle, PropertyBorderRightStyle, PropertyBorderBottomStyle, PropertyBorderLeftStyle,
		PropertyBorderTopColor, PropertyBorderRightColor, PropertyBorderBottomColor, PropertyBorderLeftColor,
		PropertyBorderImageSource, PropertyBorderImageSlice, PropertyBorderImageWidth, PropertyBorderImageOutset, PropertyBorderImageRepeat}},
	PropertyBorderRadius: {name: "border-radius", flags: sh, longhands: []PropertyID{
		PropertyBorderTopLeftRadius, PropertyBorderTopRightRadius, PropertyBorderBottomRightRadius, PropertyBorderBottomLeftRadius}},
	PropertyBorderImage: {name: "border-image", flags: sh, longhands: []PropertyID{
		PropertyBorderImageSource, PropertyBorderImageSlice, PropertyBorderImageWidth, PropertyBorderImageOutset, PropertyBorderImageRepeat}},
	PropertyBackgroundPosition: {name: "background-position", flags: sh, longhands: []PropertyID{PropertyBackgroundPositionX, PropertyBackgroundPositionY}},
	PropertyOutline:            {name: "outline", flags: sh, longhands: []PropertyID{PropertyOutlineWidth, PropertyOutlineStyle, PropertyOutlineColor}},
	PropertyOverflow:           {name: "overflow", flags: sh, longhands: []PropertyID{PropertyOverflowX, PropertyOverflowY}},
	PropertyMarginInline:       {name: "margin-inline", flags: sh, longhands: []PropertyID{PropertyMarginInlineStart, PropertyMarginInlineEnd}},
	PropertyMarginBlock:        {name: "margin-block", flags: sh, longhands: []PropertyID{PropertyMarginBlockStart, PropertyMarginBlockEnd}},
	PropertyPaddingInline:      {name: "padding-inline", flags: sh, longhands: []PropertyID{PropertyPaddingInlineStart, PropertyPaddingInlineEnd}},
	PropertyPaddingBlock:       {name: "padding-block", flags: sh, longhands: []PropertyID{PropertyPaddingBlockStart, PropertyPaddingBlockEnd}},
	PropertyInsetInline:        {name: "inset-inline", flags: sh, longhands: []PropertyID{PropertyInsetInlineStart, PropertyInsetInlineEnd}},
	PropertyInsetBlock:         {name: "inset-block", flags: sh, longhands: []PropertyID{PropertyInsetBlockStart, PropertyInsetBlockEnd}},
	PropertyListStyle: {name: "list-style", flags: sh, longhands: []PropertyID{
		PropertyListStylePosition, PropertyListStyleImage, PropertyListStyleType}},
	PropertyTextDecoration: {name: "text-decoration", flags: sh, longhands: []PropertyID{
		PropertyTextDecorationLine, PropertyTextDecorationStyle, PropertyTextDecorationColor}},

	PropertyVariable: {name: "variable", flags: FlagCustom | inh},
}

var (
	propertiesByName map[string]PropertyID
	// allExpansion lists longhands the 'all' shorthand sets, in ID order.
	allExpansion []PropertyID
)

func init() {
	propertiesByName = make(map[string]PropertyID, len(propertyTable))
	for id := PropertyDirection; id < PropertyVariable; id++ {
		info := &propertyTable[id]
		propertiesByName[info.name] = id
		if isAffectedByAll(info.flags) {
			allExpansion = append(allExpansion, id)
		}
	}
}

func isAffectedByAll(flags PropertyFlags) bool {
	return flags&(FlagNotAffectedByAll|FlagShorthand|FlagInternal|FlagVisited|FlagLegacyOverlapping|FlagSurrogate|FlagCustom) == 0
}
