package main

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/maruel/natural"
	yaml "gopkg.in/yaml.v3"

	"csc/cascade"
	"csc/config"
)

type property struct {
	Name  string
	Value string
}

// result is what resolve and cascaded commands output for a document.
type result struct {
	Source          string
	Direction       string
	WritingMode     string
	InsideLink      string
	Flags           string
	InlineStyleLost bool
	Properties      []property
	Important       []string
	Warnings        []string
	Cascade         string
}

// sortNames orders property names either naturally or in catalog order with
// custom properties last.
func sortNames[V any](m map[string]V, naturally bool) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	byName := func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	}
	if naturally {
		slices.SortFunc(names, byName)
		return names
	}
	slices.SortFunc(names, func(a, b string) int {
		pa, _ := cascade.ParsePropertyName(a)
		pb, _ := cascade.ParsePropertyName(b)
		return cmp.Or(
			compareCustom(pa.IsCustom(), pb.IsCustom()),
			cmp.Compare(pa.ID(), pb.ID()),
			byName(a, b),
		)
	})
	return names
}

func compareCustom(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

func (r *result) encode(format config.OutputFormat) ([]byte, error) {
	switch format {
	case config.OutputFormatText:
		return r.text(), nil
	case config.OutputFormatYaml:
		return r.yaml()
	}
	return nil, fmt.Errorf("unsupported output format %s", format)
}

func (r *result) header() string {
	var attrs []string
	add := func(name, value string) {
		if len(value) > 0 {
			attrs = append(attrs, name+"="+value)
		}
	}
	add("direction", r.Direction)
	add("writing-mode", r.WritingMode)
	add("link", r.InsideLink)
	add("flags", r.Flags)
	if r.InlineStyleLost {
		attrs = append(attrs, "inline-style-lost")
	}
	return strings.Join(attrs, " ")
}

func (r *result) text() []byte {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "/* %s: %s */\n", r.Source, r.header())
	for _, w := range r.Warnings {
		fmt.Fprintf(buf, "/* dropped: %s */\n", w)
	}
	for _, p := range r.Properties {
		if slices.Contains(r.Important, p.Name) {
			fmt.Fprintf(buf, "%s: %s !important;\n", p.Name, p.Value)
			continue
		}
		fmt.Fprintf(buf, "%s: %s;\n", p.Name, p.Value)
	}
	if len(r.Cascade) > 0 {
		fmt.Fprintf(buf, "/*\n%s*/\n", r.Cascade)
	}
	return buf.Bytes()
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// yaml keeps properties in their order, so the document is built node by
// node.
func (r *result) yaml() ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *yaml.Node) {
		doc.Content = append(doc.Content, scalar(key), value)
	}
	list := func(values []string) *yaml.Node {
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, v := range values {
			n.Content = append(n.Content, scalar(v))
		}
		return n
	}

	add("source", scalar(r.Source))
	add("direction", scalar(r.Direction))
	add("writing_mode", scalar(r.WritingMode))
	if len(r.InsideLink) > 0 {
		add("inside_link", scalar(r.InsideLink))
	}
	if len(r.Flags) > 0 {
		add("flags", scalar(r.Flags))
	}
	if r.InlineStyleLost {
		add("inline_style_lost", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"})
	}

	props := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range r.Properties {
		props.Content = append(props.Content, scalar(p.Name), scalar(p.Value))
	}
	add("properties", props)

	if len(r.Important) > 0 {
		add("important", list(r.Important))
	}
	if len(r.Warnings) > 0 {
		add("warnings", list(r.Warnings))
	}
	if len(r.Cascade) > 0 {
		n := scalar(r.Cascade)
		n.Style = yaml.LiteralStyle
		add("cascade", n)
	}

	buf := new(bytes.Buffer)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("unable to encode result: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("unable to encode result: %w", err)
	}
	return buf.Bytes(), nil
}
