package inject

import "weak"

// box is the unit of ownership of a resolved instance.
// Consumers pin boxes strongly, a ReleasedWhenUnreferenced slot observes them weakly.
// Field slot keeps box out of the tiny allocator, which could otherwise
// keep a weakly observed box reachable through its neighbours.
type box[T any] struct {
	value T
	slot  *Slot[T]
}

// Slot is the shared, per-declaration cache and resolution authority.
// Slot is created once per Declaration in a Container and lives as long as the Container.
type Slot[T any] struct {
	c         *Container
	factory   Factory[T]
	override  *Slot[T]
	strong    *box[T]
	weak      weak.Pointer[box[T]]
	name      string
	typeName  string
	site      Site
	strategy  Strategy
	resolving bool
}

func newSlot[T any](c *Container, d *Declaration[T]) *Slot[T] {
	return &Slot[T]{
		c:        c,
		factory:  d.factory,
		strategy: d.strategy,
		name:     d.name,
		typeName: d.typeName,
		site:     d.site,
	}
}

func (s *Slot[T]) Name() string {
	return s.name
}

func (s *Slot[T]) Strategy() Strategy {
	return s.strategy
}

// Overridden reports whether resolution is currently delegated to an override.
func (s *Slot[T]) Overridden() bool {
	return s.override != nil
}

// Resolve returns instance for consumer.
// Instance pinned in consumer always wins, even over an override.
// Otherwise resolution is delegated to the override, if any,
// or an instance is created or taken from slot storage according to the Strategy
// and pinned in consumer.
// Factory error is returned as is and nothing is stored, so next Resolve calls factory again.
// nil consumer resolves through a throwaway handle.
func (s *Slot[T]) Resolve(consumer *Instance[T]) (T, error) {
	if consumer == nil {
		consumer = &Instance[T]{site: caller(1)}
	}

	return s.resolve(consumer, false)
}

func (s *Slot[T]) resolve(consumer *Instance[T], viaOverride bool) (T, error) {
	if consumer.local != nil {
		s.record(Event{
			Kind:     ReturnedLocal,
			Instance: consumer.local.value,
			Site:     consumer.site,
			Override: viaOverride,
		})

		return consumer.local.value, nil
	}

	if s.override != nil {
		return s.override.resolve(consumer, true)
	}

	if s.strategy.Create == PerConsumer {
		b, err := s.create(consumer.site, viaOverride)
		if err != nil {
			var zero T
			return zero, err
		}

		consumer.local = b
		s.record(Event{
			Kind:     ReturnedLocal,
			Instance: b.value,
			Site:     consumer.site,
			Override: viaOverride,
		})

		return b.value, nil
	}

	switch s.strategy.Destroy {
	case NeverReleased:
		if s.strong != nil {
			consumer.local = s.strong
			s.recordShared(consumer, s.strong, viaOverride, true)

			return s.strong.value, nil
		}

		b, err := s.create(consumer.site, viaOverride)
		if err != nil {
			var zero T
			return zero, err
		}

		s.strong = b
		consumer.local = b
		s.recordShared(consumer, b, viaOverride, true)

		return b.value, nil
	default:
		if b := s.weak.Value(); b != nil {
			consumer.local = b
			s.recordShared(consumer, b, viaOverride, false)

			return b.value, nil
		}

		b, err := s.create(consumer.site, viaOverride)
		if err != nil {
			var zero T
			return zero, err
		}

		s.weak = weak.Make(b)
		consumer.local = b

		return b.value, nil
	}
}

func (s *Slot[T]) create(site Site, viaOverride bool) (*box[T], error) {
	if s.resolving {
		return nil, newCyclicDependencyError(s.name)
	}

	s.resolving = true
	defer func() { s.resolving = false }()

	value, err := s.factory()
	if err != nil {
		return nil, err
	}

	b := &box[T]{value: value, slot: s}
	s.record(Event{
		Kind:     Created,
		Instance: value,
		Site:     site,
		Override: viaOverride,
	})

	return b, nil
}

// Override makes s delegate resolution to a new slot
// whose factory is transform called with the original (not overridden) factory of s.
// Strategy of the new slot is that of s unless replaced with OverrideOption.
// Previous override is replaced, not stacked: Rollback always returns s to its own configuration.
// Consumers that have already pinned an instance are not affected.
func (s *Slot[T]) Override(transform func(base Factory[T]) (T, error), opts ...OverrideOption) {
	s.overrideWith(s.overrideSlot(transform, opts), caller(1))
}

// OverrideWith makes s delegate resolution to other.
// other keeps its own storage and may itself be overridden,
// so overrides chain with the newest consulted first.
func (s *Slot[T]) OverrideWith(other *Slot[T]) {
	s.overrideWith(other, caller(1))
}

// Rollback removes override of s, if any.
func (s *Slot[T]) Rollback() {
	s.rollback(caller(1))
}

func (s *Slot[T]) overrideSlot(transform func(base Factory[T]) (T, error), opts []OverrideOption) *Slot[T] {
	if transform == nil {
		panic(ErrNilFactory)
	}

	conf := OverrideConfiguration{Strategy: s.strategy}
	for _, opt := range opts {
		opt(&conf)
	}

	base := s.factory
	override := &Slot[T]{
		c:        s.c,
		factory:  func() (T, error) { return transform(base) },
		strategy: conf.Strategy,
		name:     s.name,
		typeName: s.typeName,
		site:     s.site,
	}

	s.c.warnPitfall(override.name, override.strategy)

	return override
}

func (s *Slot[T]) overrideWith(override *Slot[T], site Site) {
	if override == nil {
		panic(ErrNilFactory)
	}

	for next := override; next != nil; next = next.override {
		if next == s {
			panic(newCyclicDependencyError(s.name))
		}
	}

	s.override = override
	s.record(Event{Kind: Overridden, Site: site, Strategy: override.strategy})
}

func (s *Slot[T]) rollback(site Site) {
	if s.override == nil {
		return
	}

	s.override = nil
	s.record(Event{Kind: RolledBack, Site: site})
}

func (s *Slot[T]) recordShared(consumer *Instance[T], b *box[T], viaOverride, retaining bool) {
	s.record(Event{
		Kind:      ReturnedShared,
		Instance:  b.value,
		Site:      consumer.site,
		Override:  viaOverride,
		Retaining: retaining,
	})
}

func (s *Slot[T]) record(ev Event) {
	ev.Declaration = s.name
	ev.Type = s.typeName

	if ev.Kind != Overridden {
		ev.Strategy = s.strategy
	}

	s.c.telemetryOrSilence().Record(ev)
}

type OverrideConfiguration struct {
	Strategy Strategy
}

type OverrideOption func(*OverrideConfiguration)

// WithStrategy replaces Strategy of the overriding slot.
func WithStrategy(strategy Strategy) OverrideOption {
	return func(conf *OverrideConfiguration) { conf.Strategy = strategy }
}

// WithInstantiation replaces only Instantiation of the overriding slot.
func WithInstantiation(create Instantiation) OverrideOption {
	return func(conf *OverrideConfiguration) { conf.Strategy.Create = create }
}

// WithDeallocation replaces only Deallocation of the overriding slot.
func WithDeallocation(destroy Deallocation) OverrideOption {
	return func(conf *OverrideConfiguration) { conf.Strategy.Destroy = destroy }
}
