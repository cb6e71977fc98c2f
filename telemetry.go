package inject

import "fmt"

// EventKind is a decision point of resolution or override.
type EventKind int

const (
	// Factory was called and a new instance created.
	Created EventKind = iota
	// Instance was returned from shared slot storage.
	ReturnedShared
	// Instance pinned in the consumer handle was returned.
	ReturnedLocal
	// Slot was overridden.
	Overridden
	// Slot override was removed.
	RolledBack
	// Consumer handle was pinned directly, bypassing the slot.
	OverriddenLocally
)

func (k EventKind) String() string {
	switch k {
	case Created:
		return "created"
	case ReturnedShared:
		return "returned shared"
	case ReturnedLocal:
		return "returned local"
	case Overridden:
		return "overridden"
	case RolledBack:
		return "rolled back"
	case OverriddenLocally:
		return "overridden locally"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event describes a single telemetry record.
type Event struct {
	// Instance that was created or returned, nil for override events.
	Instance any
	// Declaration name.
	Declaration string
	// Go type of the declared dependency.
	Type string
	// Site the operation was requested from.
	Site Site
	// Strategy of the slot that made the decision.
	Strategy Strategy
	Kind     EventKind
	// Decision was made by an overriding slot.
	Override bool
	// Instance came from retaining (NeverReleased) storage.
	Retaining bool
}

// Telemetry receives an Event at every resolution decision point.
// Telemetry must never influence resolution.
type Telemetry interface {
	Record(Event)
}

// TelemetryFunc is an adapter to allow the use of ordinary functions as Telemetry.
type TelemetryFunc func(Event)

func (fn TelemetryFunc) Record(ev Event) {
	fn(ev)
}

// Silence is Telemetry that drops every Event.
var Silence Telemetry = silence{}

type silence struct{}

func (silence) Record(Event) {}

// Tee returns Telemetry that records every Event to each of sinks in order.
func Tee(sinks ...Telemetry) Telemetry {
	filtered := make([]Telemetry, 0, len(sinks))
	for _, sink := range sinks {
		if sink != nil {
			filtered = append(filtered, sink)
		}
	}

	switch len(filtered) {
	case 0:
		return Silence
	case 1:
		return filtered[0]
	default:
		return tee(filtered)
	}
}

type tee []Telemetry

func (t tee) Record(ev Event) {
	for _, sink := range t {
		sink.Record(ev)
	}
}
