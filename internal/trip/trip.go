package trip

// Fixed facts of the shore day. These are compile-time data, not
// runtime configuration: the whole application is built around a
// single cruise stop.
const (
	VisitDate = "2026-04-16"

	// Ship clock times, local port time.
	ShipArrivalTime   = "07:00"
	ShipOnboardTime   = "19:30"
	ShipDepartureTime = "20:00"

	// Namespace for persisted progress. Versioned so that a reshuffled
	// itinerary never resurrects stale completion state.
	StorageNamespace = "romaday_2026_v1"
)
