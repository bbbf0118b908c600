package param

// Param is the contract between typed values and their optional URL string
// representation.
//
// Encode returns the encoded string and true, or ("", false) when the value
// equals the param's configured default and the key should be omitted from
// the URL entirely.
//
// Decode is total: given the raw string (and whether the key was present at
// all) it always produces a value, falling back to the configured default
// on missing, empty, or malformed input.
type Param[T any] interface {
	Encode(value T) (string, bool)
	Decode(raw string, present bool) T
}
