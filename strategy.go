package inject

import "fmt"

// Instantiation defines when a new instance is created
// and when an already created one is handed out.
type Instantiation int

const (
	// For `PerConsumer` every consumer receives its own instance.
	PerConsumer Instantiation = iota
	// For `SharedInstance` an instance is created once
	// and every consumer receives that instance.
	SharedInstance
)

func (i Instantiation) String() string {
	switch i {
	case PerConsumer:
		return "PerConsumer"
	case SharedInstance:
		return "Shared"
	default:
		return fmt.Sprintf("Instantiation(%d)", int(i))
	}
}

// Deallocation defines when a shared instance is released.
type Deallocation int

const (
	// `NeverReleased` instance stays until the process exits.
	NeverReleased Deallocation = iota
	// `ReleasedWhenUnreferenced` instance is held only by consumers
	// and is released once the last consumer holding it is gone.
	// Consumers are Instance handles: a reference to the instance itself,
	// kept after every handle is gone, does not keep it shared.
	ReleasedWhenUnreferenced
)

func (d Deallocation) String() string {
	switch d {
	case NeverReleased:
		return "NeverReleased"
	case ReleasedWhenUnreferenced:
		return "ReleasedWhenUnreferenced"
	default:
		return fmt.Sprintf("Deallocation(%d)", int(d))
	}
}

// Strategy is a pair of policies: how instances are created and shared
// and when they are released.
type Strategy struct {
	Create  Instantiation
	Destroy Deallocation
}

var (
	// Instance is shared and never released.
	Singleton = Strategy{Create: SharedInstance, Destroy: NeverReleased}
	// Instance is shared but released when no Instance handle refers to it.
	Shared = Strategy{Create: SharedInstance, Destroy: ReleasedWhenUnreferenced}
	// New instance for every consumer, released together with that consumer.
	OnDemand = Strategy{Create: PerConsumer, Destroy: ReleasedWhenUnreferenced}
)

// Pitfall reports whether strategy is PerConsumer combined with NeverReleased.
// It is legal, but the slot has no place to retain per-consumer instances,
// so NeverReleased has no effect and instances live as long as their consumer.
func (s Strategy) Pitfall() bool {
	return s.Create == PerConsumer && s.Destroy == NeverReleased
}

func (s Strategy) String() string {
	return s.Create.String() + "/" + s.Destroy.String()
}
