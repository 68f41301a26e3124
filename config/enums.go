package config

//go:generate go tool go-enum --marshal --names

// Link state of the element being styled.
// ENUM(none, unvisited, visited)
type InsideLink int

// Inline base direction of the parent element.
// ENUM(ltr, rtl)
type Direction int

// Writing mode of the parent element.
// ENUM(horizontal-tb, vertical-rl, vertical-lr)
type WritingMode int

// Specification of requested output type.
// ENUM(text, yaml)
type OutputFormat int

// Ext returns file extension for output format.
func (o OutputFormat) Ext() string {
	switch o {
	case OutputFormatText:
		return ".txt"
	case OutputFormatYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
