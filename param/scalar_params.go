package param

import "strconv"

// IntParam encodes an int URL parameter in plain decimal form. It exists
// for completeness of the param layer; integers gain little from bit
// packing at URL scale.
type IntParam struct {
	key string
	def int
}

var _ Param[int] = (*IntParam)(nil)

// NewIntParam creates an int param with the given URL key and default.
func NewIntParam(key string, defaultValue int) *IntParam {
	return &IntParam{key: key, def: defaultValue}
}

// Key returns the param's URL key.
func (p *IntParam) Key() string {
	return p.key
}

// Encode returns the decimal form, or ("", false) for the default value.
func (p *IntParam) Encode(value int) (string, bool) {
	if value == p.def {
		return "", false
	}

	return strconv.Itoa(value), true
}

// Decode parses the decimal form, falling back to the default on missing
// or malformed input.
func (p *IntParam) Decode(raw string, present bool) int {
	if !present || raw == "" {
		return p.def
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return p.def
	}

	return val
}

// StringParam passes a string URL parameter through unchanged, with the
// same default-omission contract as the numeric params.
type StringParam struct {
	key string
	def string
}

var _ Param[string] = (*StringParam)(nil)

// NewStringParam creates a string param with the given URL key and default.
func NewStringParam(key string, defaultValue string) *StringParam {
	return &StringParam{key: key, def: defaultValue}
}

// Key returns the param's URL key.
func (p *StringParam) Key() string {
	return p.key
}

// Encode returns the value, or ("", false) for the default.
func (p *StringParam) Encode(value string) (string, bool) {
	if value == p.def {
		return "", false
	}

	return value, true
}

// Decode returns the raw value, or the default when the key was absent.
func (p *StringParam) Decode(raw string, present bool) string {
	if !present {
		return p.def
	}

	return raw
}
