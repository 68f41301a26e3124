package input

import (
	"csc/cascade"
	"csc/utils/debug"
)

// valueInterpolation applies a fixed keyframe value, it stands in for an
// animation frozen at some point of its timeline.
type valueInterpolation struct {
	value cascade.Value
}

func (i *valueInterpolation) Apply(env *cascade.InterpolationEnvironment) {
	env.Apply(i.value)
}

func sortedProperties(m map[string][]string) []string {
	return debug.SortedKeys(m)
}
