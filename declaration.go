package inject

import "reflect"

// Factory builds a new instance of T.
type Factory[T any] func() (T, error)

// Declaration is a named, typed point where a dependency is defined
// together with its factory and Strategy.
// Declaration pointer is its identity: every Container maps it to exactly one Slot.
type Declaration[T any] struct {
	factory  Factory[T]
	name     string
	typeName string
	site     Site
	strategy Strategy
}

type DeclarationConfiguration struct {
	Name string
}

type DeclarationOption func(*DeclarationConfiguration)

// WithName sets name used for declaration in errors and telemetry.
func WithName(name string) DeclarationOption {
	return func(conf *DeclarationConfiguration) { conf.Name = name }
}

// Declare returns new Declaration of T built by factory according to strategy.
// Declarations are meant to be package level variables:
//
//	var Network = inject.Declare(inject.Shared, func() (*Client, error) {
//		return NewClient()
//	})
func Declare[T any](strategy Strategy, factory func() (T, error), opts ...DeclarationOption) *Declaration[T] {
	return declare(strategy, factory, caller(1), opts)
}

// Provide is Declare for a factory that cannot fail.
func Provide[T any](strategy Strategy, factory func() T, opts ...DeclarationOption) *Declaration[T] {
	if factory == nil {
		panic(ErrNilFactory)
	}

	return declare(strategy, func() (T, error) { return factory(), nil }, caller(1), opts)
}

func declare[T any](strategy Strategy, factory func() (T, error), site Site, opts []DeclarationOption) *Declaration[T] {
	if factory == nil {
		panic(ErrNilFactory)
	}

	typeName := reflect.TypeFor[T]().String()
	conf := DeclarationConfiguration{Name: typeName + "@" + site.String()}

	for _, opt := range opts {
		opt(&conf)
	}

	return &Declaration[T]{
		factory:  factory,
		strategy: strategy,
		name:     conf.Name,
		typeName: typeName,
		site:     site,
	}
}

func (d *Declaration[T]) Name() string {
	return d.name
}

func (d *Declaration[T]) Strategy() Strategy {
	return d.strategy
}

// Site returns location Declaration was declared at.
func (d *Declaration[T]) Site() Site {
	return d.site
}

func (d *Declaration[T]) String() string {
	return d.name
}
