/*
This package provides lazily resolved dependencies with a per-declaration lifecycle.
A dependency is declared once with a factory and a Strategy,
every consumer holds its own Instance handle and decides nothing about lifetime itself.
This package does NOT try to be another IOC container: there is no constructor scanning,
no dependency graph validation and no scopes beyond per-consumer and shared.

To install inject:

	go get -u github.com/andriiyaremenko/inject

How to use:

	type Client struct {
		// ...
	}

	var Network = inject.Provide(inject.Shared, func() *Client {
		return &Client{}
	})

	type Screen struct {
		network *inject.Instance[*Client]
	}

	func NewScreen() *Screen {
		return &Screen{network: inject.Use(Network)}
	}

	func (s *Screen) Load() {
		client := s.network.MustGet()

		// use client
	}

	// in tests, Use resolves through inject.Default():
	inject.Replace(inject.Default(), Network, func() (*Client, error) { return &Client{}, nil }) // fake client
	defer inject.Rollback(inject.Default(), Network)

	screen := NewScreen()

	// or for a single consumer:
	screen := inject.Injecting(NewScreen(), fakeClient, func(s *Screen) *inject.Instance[*Client] {
		return s.network
	})

Strategies:
  - inject.Singleton - shared, never released
  - inject.Shared - shared while at least one Instance holds it, recreated after that
    (references to the instance kept outside of Instance handles do not count)
  - inject.OnDemand - every consumer gets its own instance
  - inject.Strategy{Create: inject.PerConsumer, Destroy: inject.NeverReleased} - legal, but NeverReleased has no effect

Functions:
  - inject.Declare
  - inject.Provide
  - inject.NewContainer
  - inject.Default
  - inject.NewInstance
  - inject.Use
  - inject.SlotFor
  - inject.Override
  - inject.Replace
  - inject.OverrideWith
  - inject.Rollback
  - inject.Injecting
  - inject.SetDefaultLogger

Telemetry:
  - inject.Silence - default
  - inject.NewLogrusTelemetry
  - inject.NewMetricsTelemetry
  - inject.TelemetryFunc
  - inject.Tee

Never resolve a declaration from its own factory, directly or through other declarations.
Such a cycle is reported as CyclicDependencyError rather than resolved.

Container, its slots and instances are not safe for concurrent use.
*/
package inject
