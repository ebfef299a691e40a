package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func chain(ids ...string) []Booking {
	out := make([]Booking, len(ids))
	for i, id := range ids {
		out[i] = Booking{ID: uuid.MustParse(id), Status: BookingStatusCancelled}
	}
	for i := range out {
		if i > 0 {
			prev := out[i-1].ID
			out[i].RescheduledFromID = &prev
		}
		if i < len(out)-1 {
			next := out[i+1].ID
			out[i].RescheduledToID = &next
		}
	}
	out[len(out)-1].Status = BookingStatusConfirmed
	return out
}

const (
	idA = "00000000-0000-0000-0000-00000000000a"
	idB = "00000000-0000-0000-0000-00000000000b"
	idC = "00000000-0000-0000-0000-00000000000c"
)

func TestResolveHistory_FromAnyMember(t *testing.T) {
	lineage := chain(idA, idB, idC)

	for i, requested := range lineage {
		t.Run(requested.ID.String(), func(t *testing.T) {
			h, err := ResolveHistory(requested, lineage)
			if err != nil {
				t.Fatalf("ResolveHistory error: %v", err)
			}
			if h.RootID.String() != idA || h.LatestID.String() != idC {
				t.Fatalf("root=%s latest=%s, want %s %s", h.RootID, h.LatestID, idA, idC)
			}
			if h.RequestedID != requested.ID {
				t.Fatalf("requested = %s, want %s", h.RequestedID, requested.ID)
			}
			if h.CurrentIndex != i {
				t.Fatalf("currentIndex = %d, want %d", h.CurrentIndex, i)
			}
			if len(h.Items) != 3 {
				t.Fatalf("len(items) = %d, want 3", len(h.Items))
			}
			for j, want := range []string{idA, idB, idC} {
				if h.Items[j].ID.String() != want {
					t.Fatalf("items[%d] = %s, want %s", j, h.Items[j].ID, want)
				}
			}
		})
	}
}

func TestResolveHistory_SingleBooking(t *testing.T) {
	b := Booking{ID: uuid.MustParse(idA), Status: BookingStatusConfirmed}

	h, err := ResolveHistory(b, nil)
	if err != nil {
		t.Fatalf("ResolveHistory error: %v", err)
	}
	if h.RootID != b.ID || h.LatestID != b.ID || h.CurrentIndex != 0 || len(h.Items) != 1 {
		t.Fatalf("unexpected history: %+v", h)
	}
}

func TestResolveHistory_DetectsBackwardCycle(t *testing.T) {
	lineage := chain(idA, idB, idC)
	c := lineage[2].ID
	lineage[0].RescheduledFromID = &c

	_, err := ResolveHistory(lineage[1], lineage)
	if !errors.Is(err, ErrHistoryCycle) {
		t.Fatalf("err = %v, want %v", err, ErrHistoryCycle)
	}
}

func TestResolveHistory_DetectsForwardCycle(t *testing.T) {
	lineage := chain(idA, idB, idC)
	a := lineage[0].ID
	lineage[2].RescheduledToID = &a

	_, err := ResolveHistory(lineage[0], lineage)
	if !errors.Is(err, ErrHistoryCycle) {
		t.Fatalf("err = %v, want %v", err, ErrHistoryCycle)
	}
}

func TestResolveHistory_DanglingPointersEndWalk(t *testing.T) {
	lineage := chain(idA, idB)
	missing := uuid.MustParse("00000000-0000-0000-0000-0000000000ff")
	lineage[0].RescheduledFromID = &missing
	lineage[1].RescheduledToID = &missing

	h, err := ResolveHistory(lineage[1], lineage)
	if err != nil {
		t.Fatalf("ResolveHistory error: %v", err)
	}
	if h.RootID.String() != idA || h.LatestID.String() != idB || h.CurrentIndex != 1 {
		t.Fatalf("unexpected history: root=%s latest=%s index=%d", h.RootID, h.LatestID, h.CurrentIndex)
	}
}

func TestResolveHistory_ForwardChainSkippingRequested(t *testing.T) {
	lineage := chain(idA, idB, idC)
	c := lineage[2].ID
	lineage[0].RescheduledToID = &c

	_, err := ResolveHistory(lineage[1], lineage)
	if !errors.Is(err, ErrHistoryBroken) {
		t.Fatalf("err = %v, want %v", err, ErrHistoryBroken)
	}
}
