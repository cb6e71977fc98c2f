package legacy

import "weak"

// Value is a default value constructor dependencies are keyed by.
// Value pointer is its identity.
type Value[T any] struct {
	construct func() T
}

// Define returns new Value built by construct.
func Define[T any](construct func() T) *Value[T] {
	if construct == nil {
		panic("legacy: got nil constructor")
	}

	return &Value[T]{construct: construct}
}

// DependencyKey scopes storage to a single Dependency,
// so a local scope never collides with the shared one of the same Value.
type DependencyKey struct {
	Value      any
	Dependency uint64
}

type storageID struct {
	value  any
	key    DependencyKey
	scoped bool
}

func newStorageID(value any, key *DependencyKey) storageID {
	if key == nil {
		return storageID{value: value}
	}

	return storageID{value: value, key: *key, scoped: true}
}

// box carries pointer field so it is never tiny-allocated.
type box[T any] struct {
	value T
	owner any
}

var (
	permanentStorage = make(map[storageID]any)
	temporaryStorage = make(map[storageID]any)
)

// Reset drops every stored instance.
func Reset() {
	clear(permanentStorage)
	clear(temporaryStorage)
}

func permanentInstance[T any](v *Value[T], key *DependencyKey) T {
	id := newStorageID(v, key)
	if stored, ok := permanentStorage[id]; ok {
		instance, _ := stored.(T)

		return instance
	}

	instance := v.construct()
	permanentStorage[id] = instance

	return instance
}

// temporaryInstance returns box of instance to be held by the caller.
// Stored instance lives as long as somebody holds its box.
func temporaryInstance[T any](v *Value[T], key *DependencyKey) *box[T] {
	id := newStorageID(v, key)
	if ref, ok := temporaryStorage[id].(weak.Pointer[box[T]]); ok {
		if b := ref.Value(); b != nil {
			return b
		}
	}

	b := &box[T]{value: v.construct(), owner: v}
	temporaryStorage[id] = weak.Make(b)

	return b
}
