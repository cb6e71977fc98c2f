package inject

// Injecting pins value in the Instance of consumer selected by field
// and returns consumer. Other consumers of the same Declaration are not affected.
//
//	screen := inject.Injecting(NewScreen(), mockClient, func(s *Screen) *inject.Instance[*Client] {
//		return s.network
//	})
func Injecting[C any, T any](consumer C, value T, field func(C) *Instance[T]) C {
	field(consumer).Set(value)

	return consumer
}
