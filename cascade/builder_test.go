package cascade

import (
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

// testBuilder records everything cascade applies.
type testBuilder struct {
	values    map[PropertyName]Value
	origins   map[PropertyName]Origin
	applied   []PropertyName
	parent    map[string]*VariableData
	custom    map[string]*VariableData
	direction Direction
	wm        WritingMode
	flags     CascadeFlags

	fontUpdates       int
	lineHeightUpdates int
}

func newTestBuilder() *testBuilder {
	return &testBuilder{
		values:  make(map[PropertyName]Value),
		origins: make(map[PropertyName]Origin),
		parent:  make(map[string]*VariableData),
		custom:  make(map[string]*VariableData),
	}
}

func (b *testBuilder) ApplyProperty(p Property, value Value, ctx ApplyContext) {
	name := p.Name()
	b.values[name] = value
	b.origins[name] = ctx.Origin
	b.applied = append(b.applied, name)

	switch p.ID() {
	case PropertyDirection:
		b.direction = ParseDirection(value.CSSText())
	case PropertyWritingMode:
		b.wm = ParseWritingMode(value.CSSText())
	case PropertyVariable:
		switch v := value.(type) {
		case *CustomPropertyDeclaration:
			b.custom[p.name] = v.Data
		case Keyword:
			if v == KeywordInherit || v == KeywordUnset && p.IsInherited() {
				if d, ok := b.parent[p.name]; ok {
					b.custom[p.name] = d
					return
				}
			}
			delete(b.custom, p.name)
		default:
			delete(b.custom, p.name)
		}
	}
}

func (b *testBuilder) Direction() Direction     { return b.direction }
func (b *testBuilder) WritingMode() WritingMode { return b.wm }

func (b *testBuilder) VariableData(name string, _ bool) *VariableData {
	return b.custom[name]
}

func (b *testBuilder) UpdateFont()                        { b.fontUpdates++ }
func (b *testBuilder) UpdateLineHeight()                  { b.lineHeightUpdates++ }
func (b *testBuilder) SetCascadeFlags(flags CascadeFlags) { b.flags = flags }

// text returns applied value of property name, "" if it was not applied.
func (b *testBuilder) text(name string) string {
	pn, ok := ParsePropertyName(name)
	if !ok {
		return ""
	}
	if pn.IsCustom() {
		if d, ok := b.custom[name]; ok {
			return d.Text()
		}
		return ""
	}
	if v, ok := b.values[pn]; ok {
		return v.CSSText()
	}
	return ""
}

func (b *testBuilder) has(name string) bool {
	pn, _ := ParsePropertyName(name)
	_, ok := b.values[pn]
	return ok
}

func (b *testBuilder) origin(name string) Origin {
	pn, _ := ParsePropertyName(name)
	return b.origins[pn]
}

func (b *testBuilder) appliedIndex(name string) int {
	pn, _ := ParsePropertyName(name)
	idx := -1
	for i, n := range b.applied {
		if n == pn {
			idx = i
		}
	}
	return idx
}

// testValue converts text into a specified value the way a declaration
// parser would.
func testValue(name PropertyName, text string) Value {
	data := NewVariableData(text, false)
	if name.IsCustom() {
		return &CustomPropertyDeclaration{Data: data}
	}
	if data.NeedsVariableResolution() {
		return &VariableReferenceValue{Data: data}
	}
	if k, ok := ParseKeyword(strings.TrimSpace(text)); ok {
		return k
	}
	return NewTokenListValue(data.Tokens())
}

// decls builds property set from "name: value" strings, "!important"
// suffix makes declaration important.
func decls(t *testing.T, list ...string) *PropertySet {
	t.Helper()
	set := NewPropertySet()
	for _, s := range list {
		name, value, ok := strings.Cut(s, ":")
		if !ok {
			t.Fatalf("bad declaration %q", s)
		}
		pn, ok := ParsePropertyName(strings.TrimSpace(name))
		if !ok {
			t.Fatalf("unknown property %q", name)
		}
		value = strings.TrimSpace(value)
		important := false
		if v, found := strings.CutSuffix(value, "!important"); found {
			value, important = strings.TrimSpace(v), true
		}
		set.Add(Declaration{Name: pn, Value: testValue(pn, value), Important: important})
	}
	return set
}

func newTestCascade(t *testing.T, b *testBuilder, opts ...Option) *StyleCascade {
	t.Helper()
	return New(b, zaptest.NewLogger(t), opts...)
}
