package input

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"csc/cascade"
	"csc/css"
	"csc/misc"
	"csc/style"
)

// LinkMatch selects link states a block applies to.
type LinkMatch string

const (
	LinkAll     LinkMatch = "all"
	LinkOnly    LinkMatch = "link"
	LinkVisited LinkMatch = "visited"
)

func (l LinkMatch) matchType() (cascade.LinkMatchType, error) {
	switch l {
	case "", LinkAll:
		return cascade.MatchAll, nil
	case LinkOnly:
		return cascade.MatchLink, nil
	case LinkVisited:
		return cascade.MatchVisited, nil
	}
	return 0, fmt.Errorf("unknown link match %q", string(l))
}

// Block is a matched declaration block. Exactly one of Declarations and
// Stylesheet must be set, every rule of a stylesheet is treated as matched
// and gets layer order from its @layer.
type Block struct {
	Origin                cascade.Origin `yaml:"origin"`
	Layer                 *uint16        `yaml:"layer,omitempty"`
	Tree                  uint16         `yaml:"tree,omitempty"`
	Inline                bool           `yaml:"inline,omitempty"`
	Link                  LinkMatch      `yaml:"link,omitempty"`
	PresentationAttribute bool           `yaml:"presentation_attribute,omitempty"`
	Declarations          string         `yaml:"declarations,omitempty"`
	Stylesheet            string         `yaml:"stylesheet,omitempty"`
}

// Interpolations is a set of interpolated property values of one origin.
// Every property has a stack of values applied in order.
type Interpolations struct {
	Origin                cascade.Origin      `yaml:"origin"`
	PresentationAttribute bool                `yaml:"presentation_attribute,omitempty"`
	Properties            map[string][]string `yaml:"properties"`
}

// Registration describes a registered custom property.
type Registration struct {
	Name     string  `yaml:"name"`
	Syntax   string  `yaml:"syntax,omitempty"`
	Inherits bool    `yaml:"inherits,omitempty"`
	Initial  *string `yaml:"initial,omitempty"`
}

// Document describes match result of a single element together with
// everything needed to cascade it.
type Document struct {
	Parent         map[string]string `yaml:"parent,omitempty"`
	InsideLink     string            `yaml:"inside_link,omitempty"`
	Root           bool              `yaml:"root,omitempty"`
	Blocks         []Block           `yaml:"blocks"`
	Interpolations []Interpolations  `yaml:"interpolations,omitempty"`
	Registered     []Registration    `yaml:"registered,omitempty"`
	Env            map[string]string `yaml:"env,omitempty"`

	matched        []matchedBlock
	interpolations []interpolationEntry
	registry       *Registry
	warnings       []string
}

type matchedBlock struct {
	set          *cascade.PropertySet
	origin       cascade.Origin
	tree         uint16
	opts         cascade.MatchOptions
	presentation bool
}

type interpolationEntry struct {
	origin cascade.Origin
	m      *cascade.ActiveInterpolationsMap
}

// Defaults fill values a document does not set.
type Defaults struct {
	InsideLink  string
	Root        bool
	Direction   string
	WritingMode string
	Env         map[string]string
	Registered  []Registration
}

// Option modifies document loading.
type Option func(*Document)

// WithDefaults applies defaults to loaded document.
func WithDefaults(def Defaults) Option {
	return func(d *Document) {
		if d.InsideLink == "" {
			d.InsideLink = def.InsideLink
		}
		d.Root = d.Root || def.Root
		if d.Parent == nil && (def.Direction != "" || def.WritingMode != "") {
			d.Parent = make(map[string]string)
		}
		if _, ok := d.Parent["direction"]; !ok && def.Direction != "" {
			d.Parent["direction"] = def.Direction
		}
		if _, ok := d.Parent["writing-mode"]; !ok && def.WritingMode != "" {
			d.Parent["writing-mode"] = def.WritingMode
		}
		for k, v := range def.Env {
			if d.Env == nil {
				d.Env = make(map[string]string)
			}
			if _, ok := d.Env[k]; !ok {
				d.Env[k] = v
			}
		}
		for _, r := range def.Registered {
			if !slices.ContainsFunc(d.Registered, func(x Registration) bool { return x.Name == r.Name }) {
				d.Registered = append(d.Registered, r)
			}
		}
	}
}

// Load reads and validates cascade document.
func Load(r io.Reader, log *zap.Logger, opts ...Option) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("input")

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	doc := &Document{}
	if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to decode document: %w", err)
	}
	for _, opt := range opts {
		opt(doc)
	}
	if err := doc.prepare(log); err != nil {
		return nil, err
	}
	return doc, nil
}

// templateValues are available to templates in declarations.
type templateValues struct {
	Env  map[string]string
	Root bool
}

func (d *Document) expand(name, field string) (string, error) {
	if !strings.Contains(field, "{{") {
		return field, nil
	}
	return misc.ExpandTemplate(name, field, &templateValues{Env: d.Env, Root: d.Root})
}

func (d *Document) prepare(log *zap.Logger) error {
	var errs error

	if _, err := style.ParseInsideLink(d.InsideLink); err != nil {
		errs = multierr.Append(errs, err)
	}

	registry, err := newRegistry(d.Registered)
	errs = multierr.Append(errs, err)
	d.registry = registry

	parser := css.NewParser(log)
	for i, b := range d.Blocks {
		errs = multierr.Append(errs, d.prepareBlock(parser, i, b))
	}
	for i, ip := range d.Interpolations {
		errs = multierr.Append(errs, d.prepareInterpolations(parser, i, ip))
	}
	if errs != nil {
		return errs
	}
	if len(d.matched) > cascade.MaxMatchIndex {
		return fmt.Errorf("too many declaration blocks: %d, at most %d are supported", len(d.matched), cascade.MaxMatchIndex)
	}

	// Layer stacks are built by pushing increasing layer keys, so blocks of
	// one origin have to come in layer order.
	slices.SortStableFunc(d.matched, func(a, b matchedBlock) int {
		return cmp.Or(
			cmp.Compare(a.origin, b.origin),
			cmp.Compare(a.tree, b.tree),
			compareBool(a.opts.IsInlineStyle, b.opts.IsInlineStyle),
			cmp.Compare(a.opts.LayerOrder, b.opts.LayerOrder),
		)
	})

	for _, w := range d.warnings {
		log.Warn("Declaration dropped", zap.String("reason", w))
	}
	log.Debug("Document loaded",
		zap.Int("blocks", len(d.matched)),
		zap.Int("interpolations", len(d.interpolations)),
		zap.Int("registered", len(d.Registered)))
	return nil
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

func (d *Document) prepareBlock(parser *css.Parser, i int, b Block) error {
	name := fmt.Sprintf("block %d", i)

	link, err := b.Link.matchType()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	switch {
	case b.Origin == cascade.OriginNone || b.Origin.IsInterpolation():
		return fmt.Errorf("%s: origin %s can not have declarations", name, b.Origin)
	case b.PresentationAttribute && b.Origin != cascade.OriginAuthorPresentationalHint:
		return fmt.Errorf("%s: presentation attribute must have %s origin", name, cascade.OriginAuthorPresentationalHint)
	case b.Declarations != "" && b.Stylesheet != "":
		return fmt.Errorf("%s: both declarations and stylesheet are set", name)
	case b.Stylesheet != "" && b.Layer != nil:
		return fmt.Errorf("%s: stylesheet layers come from @layer rules", name)
	}

	layer := uint16(cascade.DefaultLayerOrder)
	if b.Layer != nil {
		layer = *b.Layer
	}
	add := func(set *cascade.PropertySet, layer uint16) {
		d.matched = append(d.matched, matchedBlock{
			set:    set,
			origin: b.Origin,
			tree:   b.Tree,
			opts: cascade.MatchOptions{
				LayerOrder:    layer,
				IsInlineStyle: b.Inline,
				LinkMatchType: link,
			},
			presentation: b.PresentationAttribute,
		})
	}

	if b.Stylesheet != "" {
		text, err := d.expand(name, b.Stylesheet)
		if err != nil {
			return err
		}
		sheet := parser.Parse([]byte(text), name)
		for _, w := range sheet.Warnings {
			d.warnings = append(d.warnings, name+": "+w)
		}
		for j, rule := range sheet.Rules {
			if err := checkSize(rule.Properties); err != nil {
				return fmt.Errorf("%s: rule %d: %w", name, j, err)
			}
			add(rule.Properties, rule.LayerOrder)
		}
		return nil
	}

	text, err := d.expand(name, b.Declarations)
	if err != nil {
		return err
	}
	set, warnings := parser.ParseDeclarations(text)
	for _, w := range warnings {
		d.warnings = append(d.warnings, name+": "+w)
	}
	if err := checkSize(set); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	add(set, layer)
	return nil
}

// checkSize makes sure every declaration of set could be addressed by match
// position.
func checkSize(set *cascade.PropertySet) error {
	if set.Len() > cascade.MaxMatchIndex {
		return fmt.Errorf("too many declarations: %d, at most %d are supported", set.Len(), cascade.MaxMatchIndex)
	}
	return nil
}

func (d *Document) prepareInterpolations(parser *css.Parser, i int, ip Interpolations) error {
	name := fmt.Sprintf("interpolations %d", i)
	if !ip.Origin.IsInterpolation() {
		return fmt.Errorf("%s: origin %s is not animation or transition", name, ip.Origin)
	}

	m := cascade.NewActiveInterpolationsMap()
	var errs error
	for _, property := range sortedProperties(ip.Properties) {
		for j, text := range ip.Properties[property] {
			text, err := d.expand(name, text)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			set, warnings := parser.ParseDeclarations(property + ": " + text)
			if len(warnings) > 0 || set.Len() == 0 {
				errs = multierr.Append(errs, fmt.Errorf("%s: value %d of %s: %s", name, j, property, strings.Join(warnings, "; ")))
				continue
			}
			for _, decl := range set.Declarations() {
				m.Add(cascade.PropertyHandle{Name: decl.Name, PresentationAttribute: ip.PresentationAttribute}, &valueInterpolation{value: decl.Value})
			}
		}
	}
	if errs != nil {
		return errs
	}
	d.interpolations = append(d.interpolations, interpolationEntry{origin: ip.Origin, m: m})
	return nil
}

// Registry returns registry of custom properties registered by the
// document.
func (d *Document) Registry() *Registry { return d.registry }

// Warnings returns reasons declarations were dropped for.
func (d *Document) Warnings() []string { return d.warnings }

// Environment returns env() variables of the document.
func (d *Document) Environment() cascade.EnvironmentVariables {
	return cascade.NewEnvMap(d.Env)
}

// NewBuilder creates style builder for the element described by document.
func (d *Document) NewBuilder(log *zap.Logger) (*style.Builder, error) {
	parent, err := style.FromValues(d.Parent)
	if err != nil {
		return nil, fmt.Errorf("bad parent style: %w", err)
	}
	link, err := style.ParseInsideLink(d.InsideLink)
	if err != nil {
		return nil, err
	}
	b := style.NewBuilder(parent, d.registry, log)
	b.SetInsideLink(link)
	return b, nil
}

// Build creates cascade for builder with match result and interpolations
// of the document.
func (d *Document) Build(builder cascade.StyleBuilder, log *zap.Logger) (*cascade.StyleCascade, error) {
	c := cascade.New(builder, log,
		cascade.WithRegistry(d.registry),
		cascade.WithEnvironment(d.Environment()),
		cascade.WithRootElement(d.Root))

	mr := c.MutableMatchResult()
	tree, started := uint16(0), false
	for _, m := range d.matched {
		if m.presentation {
			mr.AddPresentationHints(m.set)
			continue
		}
		if m.origin == cascade.OriginAuthor && (!started || m.tree != tree) {
			mr.BeginAuthorTreeScope()
			tree, started = m.tree, true
		}
		mr.Add(m.set, m.origin, m.opts)
	}

	var errs error
	for i, e := range d.interpolations {
		if !c.AddInterpolations(e.m, e.origin) {
			errs = multierr.Append(errs, fmt.Errorf("interpolations %d: too many interpolation entries", i))
		}
	}
	return c, errs
}
