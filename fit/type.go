package fit

import (
	"slices"
	"strings"
)

// Type identifies a fit-function family.
type Type int

// TypeUnknown is returned by TypeFromString for unrecognized names.
const TypeUnknown Type = -1

const (
	// TypeLinear represents y = m*x + b
	TypeLinear Type = iota
	// TypeExponential represents y = a*e^(alpha*x)
	TypeExponential
	// TypeExpPlusLinear represents y = a*e^(alpha*x) + m*x + b
	TypeExpPlusLinear
	// TypeExpPlusOffset represents y = a*e^(alpha*x) + b
	TypeExpPlusOffset
)

var typeNames = map[Type]string{
	TypeLinear:        "linear",
	TypeExponential:   "exponential",
	TypeExpPlusLinear: "exp_plus_linear",
	TypeExpPlusOffset: "exp_plus_offset",
}

var typeFromString = map[string]Type{
	"linear":          TypeLinear,
	"exponential":     TypeExponential,
	"exp_plus_linear": TypeExpPlusLinear,
	"exp_plus_offset": TypeExpPlusOffset,
}

// String returns the canonical name of the fit type.
func (t Type) String() string {
	if name, exists := typeNames[t]; exists {
		return name
	}

	return "unknown"
}

// TypeFromString returns the Type for a name (case-insensitive).
// Returns TypeUnknown for unknown names.
func TypeFromString(name string) Type {
	if t, exists := typeFromString[strings.ToLower(name)]; exists {
		return t
	}

	return TypeUnknown
}

// TypeNames returns the sorted names of all supported fit types.
func TypeNames() []string {
	names := make([]string, 0, len(typeNames))
	for _, name := range typeNames {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// AllTypes returns every supported fit type in declaration order.
func AllTypes() []Type {
	return []Type{TypeLinear, TypeExponential, TypeExpPlusLinear, TypeExpPlusOffset}
}
