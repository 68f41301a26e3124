package cascade

import (
	"strconv"
	"strings"
)

// EnvironmentVariables resolves env() references.
type EnvironmentVariables interface {
	// Variable returns value of environment variable, indices are present for
	// two-dimensional variables. Nil means the variable does not exist.
	Variable(name string, indices []int) *VariableData
}

// EnvMap is a map based EnvironmentVariables. Indexed variables are stored
// under "name[i][j]".
type EnvMap map[string]*VariableData

// NewEnvMap creates EnvMap from plain strings.
func NewEnvMap(values map[string]string) EnvMap {
	m := make(EnvMap, len(values))
	for k, v := range values {
		m[k] = NewVariableData(v, false)
	}
	return m
}

func (m EnvMap) Variable(name string, indices []int) *VariableData {
	if len(indices) == 0 {
		return m[name]
	}
	var sb strings.Builder
	sb.WriteString(name)
	for _, i := range indices {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(']')
	}
	return m[sb.String()]
}
