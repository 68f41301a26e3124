package cascade

import (
	"fmt"
	"strings"
)

// Origin is the broad source category of a declaration. Values are ordered
// the way normal (not important) declarations of each origin rank against
// each other.
type Origin uint8

const (
	OriginNone Origin = iota
	OriginUserAgent
	OriginUser
	OriginAuthorPresentationalHint
	OriginAuthor
	OriginAnimation
	// OriginTransition always wins, including over important declarations.
	OriginTransition
)

var originNames = [...]string{
	OriginNone:                     "none",
	OriginUserAgent:                "user-agent",
	OriginUser:                     "user",
	OriginAuthorPresentationalHint: "author-presentational-hint",
	OriginAuthor:                   "author",
	OriginAnimation:                "animation",
	OriginTransition:               "transition",
}

func (o Origin) String() string {
	if int(o) < len(originNames) {
		return originNames[o]
	}
	return fmt.Sprintf("Origin(%d)", o)
}

// IsInterpolation reports whether declarations of this origin come from
// active animations or transitions rather than from a match result.
func (o Origin) IsInterpolation() bool {
	return o == OriginAnimation || o == OriginTransition
}

// OriginNames returns all origin names in cascade order.
func OriginNames() []string {
	names := make([]string, len(originNames))
	copy(names, originNames[:])
	return names
}

// ParseOrigin converts a name (case insensitive) into an Origin.
func ParseOrigin(name string) (Origin, error) {
	for i, n := range originNames {
		if strings.EqualFold(n, name) {
			return Origin(i), nil
		}
	}
	return OriginNone, fmt.Errorf("%s is not a valid cascade origin, try [%s]", name, strings.Join(originNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (o Origin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Origin) UnmarshalText(text []byte) error {
	v, err := ParseOrigin(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// targetOriginForRevert returns the origin 'revert' rolls back to.
func targetOriginForRevert(o Origin) Origin {
	switch o {
	case OriginNone, OriginTransition:
		return OriginNone
	case OriginUserAgent:
		return OriginNone
	case OriginUser:
		return OriginUserAgent
	case OriginAuthorPresentationalHint, OriginAuthor, OriginAnimation:
		return OriginUser
	}
	return OriginNone
}
