package legacy

var nextDependencyID uint64

// Dependency is a consumer handle of a Value with given Lifespan and Scope.
//
// Deprecated: use inject.Instance.
type Dependency[T any] struct {
	value    *Value[T]
	local    *T
	held     *box[T]
	key      DependencyKey
	lifespan Lifespan
	scope    Scope
}

// Injected returns Dependency on v with lifespan and scope.
// Zero values, Temporary and Local, are the usual configuration.
//
// Deprecated: use inject.Use.
func Injected[T any](v *Value[T], lifespan Lifespan, scope Scope) *Dependency[T] {
	if v == nil {
		panic("legacy: got nil value")
	}

	nextDependencyID++

	return &Dependency[T]{
		value:    v,
		lifespan: lifespan,
		scope:    scope,
		key:      DependencyKey{Value: v, Dependency: nextDependencyID},
	}
}

// Instance returns an instance of the dependency.
// Local Scope pins the first instance in Dependency,
// Shared Scope consults storage on every call.
func (d *Dependency[T]) Instance() T {
	if d.local != nil {
		return *d.local
	}

	instance := d.instance()
	if d.scope == Local {
		d.local = &instance
	}

	return instance
}

// Override replaces instance returned by Instance with v.
func (d *Dependency[T]) Override(v T) {
	d.local = &v
}

func (d *Dependency[T]) instance() T {
	switch {
	case d.lifespan == Permanent && d.scope == Shared:
		return permanentInstance(d.value, nil)
	case d.lifespan == Permanent:
		return permanentInstance(d.value, &d.key)
	case d.scope == Shared:
		d.held = temporaryInstance(d.value, nil)
		return d.held.value
	default:
		return d.value.construct()
	}
}

// Injecting replaces instance of the Dependency of consumer selected by field with v
// and returns consumer.
//
// Deprecated: use inject.Injecting.
func Injecting[C any, T any](consumer C, v T, field func(C) *Dependency[T]) C {
	field(consumer).Override(v)

	return consumer
}
