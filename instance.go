package inject

// Instance is a consumer handle of a Declaration.
// First Get resolves the instance through Container and pins it,
// every following Get returns the pinned instance without consulting Container.
// Instance is meant to be a field of the consumer:
//
//	type Screen struct {
//		network *inject.Instance[*Client]
//	}
//
//	func NewScreen() *Screen {
//		return &Screen{network: inject.Use(Network)}
//	}
//
// Once consumer (and so Instance) is unreachable,
// a ReleasedWhenUnreferenced shared instance it pinned may be released.
type Instance[T any] struct {
	c     *Container
	d     *Declaration[T]
	local *box[T]
	site  Site
}

// NewInstance returns unresolved Instance of d bound to c.
func NewInstance[T any](c *Container, d *Declaration[T]) *Instance[T] {
	return newInstance(c, d, caller(1))
}

// Use returns unresolved Instance of d bound to Default Container.
func Use[T any](d *Declaration[T]) *Instance[T] {
	return newInstance(Default(), d, caller(1))
}

func newInstance[T any](c *Container, d *Declaration[T], site Site) *Instance[T] {
	if c == nil {
		panic(ErrNilContainer)
	}

	if d == nil {
		panic(ErrNilDeclaration)
	}

	return &Instance[T]{c: c, d: d, site: site}
}

// Get returns pinned instance, resolving it on first call.
// Factory error is returned unmodified and Instance stays unresolved.
func (i *Instance[T]) Get() (T, error) {
	if i.local != nil {
		i.recordLocal()

		return i.local.value, nil
	}

	if i.d == nil {
		panic(ErrNilDeclaration)
	}

	return SlotFor(i.container(), i.d).resolve(i, false)
}

// MustGet is Get that panics on error.
func (i *Instance[T]) MustGet() T {
	v, err := i.Get()
	if err != nil {
		panic(newMustGetError(err, i.name()))
	}

	return v
}

// Set pins v, bypassing factory, slot and any override.
// Only this Instance is affected.
func (i *Instance[T]) Set(v T) {
	i.local = &box[T]{value: v}

	ev := Event{Kind: OverriddenLocally, Instance: v, Site: i.site, Declaration: i.name()}
	if i.d != nil {
		ev.Type = i.d.typeName
		ev.Strategy = i.d.strategy
	}

	i.container().telemetryOrSilence().Record(ev)
}

// Resolved reports whether Instance has pinned an instance.
func (i *Instance[T]) Resolved() bool {
	return i.local != nil
}

func (i *Instance[T]) container() *Container {
	if i.c == nil {
		return Default()
	}

	return i.c
}

func (i *Instance[T]) name() string {
	if i.d == nil {
		return "<undeclared>"
	}

	return i.d.name
}

func (i *Instance[T]) recordLocal() {
	ev := Event{Kind: ReturnedLocal, Instance: i.local.value, Site: i.site, Declaration: i.name()}
	if i.d != nil {
		ev.Type = i.d.typeName
		ev.Strategy = i.d.strategy
	}

	i.container().telemetryOrSilence().Record(ev)
}
