package cascade

import (
	"csc/utils/debug"
)

// Dump returns human readable representation of the cascade map: every
// property with its stack of priorities, winner first.
func (c *StyleCascade) Dump() string {
	c.analyzeIfNeeded()

	tw := debug.NewTreeWriter()
	tw.Line(0, "cascade direction=%s writing-mode=%s", c.builder.Direction(), c.builder.WritingMode())
	for id := range c.cmap.Native() {
		c.dumpStack(tw, NativeName(id))
	}

	custom := make(map[string]struct{})
	for name := range c.cmap.Custom() {
		custom[name] = struct{}{}
	}
	for _, name := range debug.SortedKeys(custom) {
		c.dumpStack(tw, CustomName(name))
	}
	return tw.String()
}

func (c *StyleCascade) dumpStack(tw *debug.TreeWriter, name PropertyName) {
	tw.Line(1, "%s", name)
	for _, p := range c.cmap.Stack(name) {
		tw.Line(2, "%s", p)
		if p.IsInterpolation() {
			continue
		}
		if decl, ok := c.matchResult.valueAt(p.Position()); ok {
			tw.TextBlock(3, "value", decl.Value.CSSText())
		}
	}
}
