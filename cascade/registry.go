package cascade

// Syntax validates values of a registered custom property.
type Syntax interface {
	Accepts(tokens []Token) bool
	String() string
}

// Registration describes a custom property registered with @property or
// CSS.registerProperty().
type Registration struct {
	Name     string
	Syntax   Syntax
	Inherits bool
	Initial  *VariableData
}

// Registry is consulted to find out whether a custom property is
// registered.
type Registry interface {
	Registration(name string) *Registration
}

// ReferenceMarker is optionally implemented by a Registry which wants to
// know which registered properties are referenced by var().
type ReferenceMarker interface {
	MarkReferenced(name string)
}

// RegistryMap is a simple Registry.
type RegistryMap map[string]*Registration

func (m RegistryMap) Registration(name string) *Registration {
	return m[name]
}

// Register adds registration to the map.
func (m RegistryMap) Register(r *Registration) {
	m[r.Name] = r
}

func lookupRegistration(registry Registry, name string) *Registration {
	if registry == nil {
		return nil
	}
	return registry.Registration(name)
}

// UniversalSyntax accepts any value ("*").
type UniversalSyntax struct{}

func (UniversalSyntax) Accepts([]Token) bool { return true }
func (UniversalSyntax) String() string       { return "*" }

// SyntaxFunc adapts a function to Syntax.
type SyntaxFunc struct {
	Name string
	Fn   func(tokens []Token) bool
}

func (s SyntaxFunc) Accepts(tokens []Token) bool { return s.Fn(tokens) }
func (s SyntaxFunc) String() string              { return s.Name }
