package legacy

import "fmt"

// Lifespan defines whether dependency needs to stay after consumer is gone.
type Lifespan int

const (
	// Released when the last consumer is gone.
	Temporary Lifespan = iota
	// Stays until process exits.
	Permanent
)

func (l Lifespan) String() string {
	switch l {
	case Permanent:
		return "Permanent"
	case Temporary:
		return "Temporary"
	default:
		return fmt.Sprintf("Lifespan(%d)", int(l))
	}
}

// Scope defines the way an instance is obtained.
type Scope int

const (
	// New instance of a dependency.
	Local Scope = iota
	// Shared among other consumers, created if needed.
	Shared
)

func (s Scope) String() string {
	switch s {
	case Local:
		return "Local"
	case Shared:
		return "Shared"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}
