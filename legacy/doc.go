/*
Package legacy keeps the keyed-storage injection API inject used before Declaration and Instance.

Deprecated: use inject.Declare and inject.Instance instead.
Package is kept for compatibility and receives no new features.

	var network = legacy.Define(func() *Client { return NewClient() })

	type Screen struct {
		network *legacy.Dependency[*Client]
	}

	screen := &Screen{network: legacy.Injected(network, legacy.Permanent, legacy.Shared)}
	screen.network.Instance().Do()

Never resolve a Dependency inside a Value constructor that is (directly or not) resolved by
that Dependency: it is a cycle and Instance will recurse until the process dies.

Storage is process-wide and not safe for concurrent use.
*/
package legacy
