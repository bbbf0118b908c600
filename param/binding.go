package param

import (
	"github.com/runsascoded/use-params/internal/hash"
)

// Binding ties a Param to one key of a Strategy and re-decodes whenever
// the strategy reports a change.
//
// Change notifications are deduplicated by fingerprinting the raw encoded
// value with xxHash64: strategies broadcast every mutation, but a binding
// only invokes its callback when its own key's encoded state actually
// changed. This keeps re-render storms out of consumers with many bound
// params.
type Binding[T any] struct {
	strategy Strategy
	param    Param[T]
	key      string
	onChange func(T)
	last     uint64
	cancel   func()
}

// fingerprint hashes the raw encoded state of a key, distinguishing an
// absent key from a present-but-empty value.
func fingerprint(raw string, present bool) uint64 {
	if !present {
		return 0
	}

	fp := hash.ID(raw)
	if fp == 0 {
		fp = 1
	}

	return fp
}

// Bind creates a binding for key on the given strategy.
//
// The callback fires on every subsequent change to the key's encoded state,
// not for the initial state; read that with Get. Call Close to unsubscribe.
//
// Parameters:
//   - strategy: Location strategy holding the encoded state
//   - key: URL parameter key to watch
//   - p: Param codec for the key's value
//   - onChange: Callback invoked with the freshly decoded value (may be nil)
//
// Returns:
//   - *Binding[T]: The created binding.
func Bind[T any](strategy Strategy, key string, p Param[T], onChange func(T)) *Binding[T] {
	raw, present := strategy.Read(key)

	b := &Binding[T]{
		strategy: strategy,
		param:    p,
		key:      key,
		onChange: onChange,
		last:     fingerprint(raw, present),
	}
	b.cancel = strategy.Subscribe(b.refresh)

	return b
}

// refresh re-reads the key and fires the callback when its encoded state
// changed since the last observation.
func (b *Binding[T]) refresh() {
	raw, present := b.strategy.Read(b.key)

	fp := fingerprint(raw, present)
	if fp == b.last {
		return
	}
	b.last = fp

	if b.onChange != nil {
		b.onChange(b.param.Decode(raw, present))
	}
}

// Get decodes the key's current value.
func (b *Binding[T]) Get() T {
	raw, present := b.strategy.Read(b.key)

	return b.param.Decode(raw, present)
}

// Set encodes the value into the strategy. A value equal to the param's
// default removes the key from the location entirely.
func (b *Binding[T]) Set(value T) {
	encoded, present := b.param.Encode(value)
	b.strategy.Write(b.key, encoded, present)
}

// Close unsubscribes the binding from its strategy.
func (b *Binding[T]) Close() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}
