package domain

import (
	"errors"

	"github.com/google/uuid"
)

// MaxHistoryHops bounds each walk along a reschedule chain.
const MaxHistoryHops = 64

var (
	ErrHistoryCycle  = errors.New("reschedule history cycle detected")
	ErrHistoryBroken = errors.New("reschedule history is inconsistent")
)

type BookingHistory struct {
	RootID       uuid.UUID
	RequestedID  uuid.UUID
	LatestID     uuid.UUID
	CurrentIndex int
	Items        []Booking
}

// ResolveHistory walks the reschedule chain containing requested. lineage
// must hold every booking that shares the requested booking's
// request/response/provider/client tuple. Pointers leaving the lineage end the
// walk; revisiting a booking or exceeding MaxHistoryHops fails with
// ErrHistoryCycle.
func ResolveHistory(requested Booking, lineage []Booking) (BookingHistory, error) {
	byID := make(map[uuid.UUID]Booking, len(lineage)+1)
	for _, b := range lineage {
		byID[b.ID] = b
	}
	byID[requested.ID] = requested

	root := requested
	visited := map[uuid.UUID]struct{}{root.ID: {}}
	for hops := 0; root.RescheduledFromID != nil; hops++ {
		if hops >= MaxHistoryHops {
			return BookingHistory{}, ErrHistoryCycle
		}
		prev, ok := byID[*root.RescheduledFromID]
		if !ok {
			break
		}
		if _, seen := visited[prev.ID]; seen {
			return BookingHistory{}, ErrHistoryCycle
		}
		visited[prev.ID] = struct{}{}
		root = prev
	}

	items := []Booking{root}
	visited = map[uuid.UUID]struct{}{root.ID: {}}
	cur := root
	for hops := 0; cur.RescheduledToID != nil; hops++ {
		if hops >= MaxHistoryHops {
			return BookingHistory{}, ErrHistoryCycle
		}
		next, ok := byID[*cur.RescheduledToID]
		if !ok {
			break
		}
		if _, seen := visited[next.ID]; seen {
			return BookingHistory{}, ErrHistoryCycle
		}
		visited[next.ID] = struct{}{}
		items = append(items, next)
		cur = next
	}

	current := -1
	for i, b := range items {
		if b.ID == requested.ID {
			current = i
			break
		}
	}
	if current < 0 {
		// The forward chain from the root bypasses the requested booking.
		return BookingHistory{}, ErrHistoryBroken
	}

	return BookingHistory{
		RootID:       root.ID,
		RequestedID:  requested.ID,
		LatestID:     cur.ID,
		CurrentIndex: current,
		Items:        items,
	}, nil
}
