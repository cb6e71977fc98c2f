package inject

import (
	"reflect"

	"github.com/sirupsen/logrus"
)

type ContainerConfiguration struct {
	Telemetry               Telemetry
	SilenceStrategyWarnings bool
}

type ContainerOption func(*ContainerConfiguration)

var (
	WithTelemetry = func(t Telemetry) ContainerOption {
		return func(opt *ContainerConfiguration) { opt.Telemetry = t }
	}

	SilenceStrategyWarnings ContainerOption = func(opt *ContainerConfiguration) { opt.SilenceStrategyWarnings = true }
)

var defaultContainer = NewContainer()

// Default returns process-wide Container used by Use.
func Default() *Container {
	return defaultContainer
}

// Returns new Container.
func NewContainer(opts ...ContainerOption) *Container {
	conf := ContainerConfiguration{
		Telemetry: Silence,
	}

	for _, opt := range opts {
		opt(&conf)
	}

	return &Container{
		slots:                   make(map[any]any),
		telemetry:               conf.Telemetry,
		silenceStrategyWarnings: conf.SilenceStrategyWarnings,
	}
}

// Container maps every Declaration to its single Slot.
// Container is not safe for concurrent use:
// it, its slots and every Instance bound to it must be used from one goroutine.
type Container struct {
	telemetry               Telemetry
	slots                   map[any]any
	silenceStrategyWarnings bool
}

// SetTelemetry replaces Telemetry of c. nil silences it.
func (c *Container) SetTelemetry(t Telemetry) {
	c.telemetry = t
}

// Len returns number of slots created so far.
func (c *Container) Len() int {
	return len(c.slots)
}

// Reset drops every slot together with its storage and overrides.
// Instances already pinned by consumers are not affected.
func (c *Container) Reset() {
	clear(c.slots)
}

func (c *Container) telemetryOrSilence() Telemetry {
	if c == nil || c.telemetry == nil {
		return Silence
	}

	return c.telemetry
}

func (c *Container) warnPitfall(name string, strategy Strategy) {
	if !strategy.Pitfall() || (c != nil && c.silenceStrategyWarnings) {
		return
	}

	logger().WithFields(logrus.Fields{
		"declaration": name,
		"strategy":    strategy.String(),
	}).Warn("NeverReleased has no effect for PerConsumer dependency: instance lives as long as its consumer")
}

// SlotFor returns the Slot of d in c, creating it on first access.
// Repeated calls return the same Slot.
func SlotFor[T any](c *Container, d *Declaration[T]) *Slot[T] {
	if c == nil {
		panic(ErrNilContainer)
	}

	if d == nil {
		panic(ErrNilDeclaration)
	}

	if stored, ok := c.slots[d]; ok {
		slot, ok := stored.(*Slot[T])
		if !ok {
			panic(newTypeMismatchError(d.name, stored, reflect.TypeFor[*Slot[T]]()))
		}

		return slot
	}

	slot := newSlot(c, d)
	c.slots[d] = slot
	c.warnPitfall(d.name, d.strategy)

	return slot
}

// Override overrides Slot of d in c with transform.
// See Slot.Override.
func Override[T any](c *Container, d *Declaration[T], transform func(base Factory[T]) (T, error), opts ...OverrideOption) {
	slot := SlotFor(c, d)
	slot.overrideWith(slot.overrideSlot(transform, opts), caller(1))
}

// Replace overrides Slot of d in c with factory, ignoring the original factory.
func Replace[T any](c *Container, d *Declaration[T], factory func() (T, error), opts ...OverrideOption) {
	if factory == nil {
		panic(ErrNilFactory)
	}

	slot := SlotFor(c, d)
	transform := func(Factory[T]) (T, error) { return factory() }
	slot.overrideWith(slot.overrideSlot(transform, opts), caller(1))
}

// OverrideWith makes Slot of d in c delegate resolution to Slot of other in c.
func OverrideWith[T any](c *Container, d, other *Declaration[T]) {
	SlotFor(c, d).overrideWith(SlotFor(c, other), caller(1))
}

// Rollback removes override of d in c, if any.
func Rollback[T any](c *Container, d *Declaration[T]) {
	SlotFor(c, d).rollback(caller(1))
}
