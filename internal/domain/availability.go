package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

const (
	MinSlotDurationMin = 15
	MaxSlotDurationMin = 240
	MaxBufferMin       = 120

	DefaultTimeZone        = "UTC"
	DefaultSlotDurationMin = 60
)

// TimeRange is a wall-clock range within a single day, "HH:mm" to "HH:mm".
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type WeeklyDay struct {
	DayOfWeek int         `json:"dayOfWeek"`
	Ranges    []TimeRange `json:"ranges"`
}

type ProviderAvailability struct {
	bun.BaseModel `bun:"table:provider_availability"`

	ProviderUserID  string      `bun:"provider_user_id,pk"`
	TimeZone        string      `bun:"time_zone,notnull"`
	SlotDurationMin int         `bun:"slot_duration_min,notnull"`
	BufferMin       int         `bun:"buffer_min,notnull"`
	IsActive        bool        `bun:"is_active,notnull"`
	Weekly          []WeeklyDay `bun:"weekly,type:jsonb,notnull"`
	CreatedAt       time.Time   `bun:"created_at,notnull"`
	UpdatedAt       time.Time   `bun:"updated_at,notnull"`
}

func (a *ProviderAvailability) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		a.UpdatedAt = now
	case *bun.UpdateQuery:
		a.UpdatedAt = now
	}
	if a.Weekly == nil {
		a.Weekly = []WeeklyDay{}
	}
	return nil
}

// DefaultAvailability is the profile a provider starts from before the first update.
func DefaultAvailability(providerUserID string) ProviderAvailability {
	return ProviderAvailability{
		ProviderUserID:  providerUserID,
		TimeZone:        DefaultTimeZone,
		SlotDurationMin: DefaultSlotDurationMin,
		BufferMin:       0,
		IsActive:        true,
		Weekly:          []WeeklyDay{},
	}
}

// LoadZone resolves an IANA zone name. Empty names are rejected rather than
// silently mapped to UTC.
func LoadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("time_zone is required")
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.New("invalid time_zone")
	}
	return loc, nil
}

// ParseClock parses "HH:mm" into minutes since midnight. "24:00" is accepted
// so a range can run to the end of the day.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	h, okH := twoDigits(s[0:2])
	m, okM := twoDigits(s[3:5])
	if !okH || !okM || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return h*60 + m, nil
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// NormalizeWeekly validates a weekly template and returns a copy ordered by
// day and by range start. Each day may appear once; each range must end after
// it starts and must not overlap another range of the same day.
func NormalizeWeekly(weekly []WeeklyDay) ([]WeeklyDay, error) {
	seen := make(map[int]struct{}, len(weekly))
	out := make([]WeeklyDay, 0, len(weekly))
	for _, d := range weekly {
		if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
			return nil, fmt.Errorf("invalid dayOfWeek %d", d.DayOfWeek)
		}
		if _, ok := seen[d.DayOfWeek]; ok {
			return nil, fmt.Errorf("duplicate dayOfWeek %d", d.DayOfWeek)
		}
		seen[d.DayOfWeek] = struct{}{}

		type parsed struct {
			r          TimeRange
			start, end int
		}
		list := make([]parsed, 0, len(d.Ranges))
		for _, r := range d.Ranges {
			start, err := ParseClock(r.Start)
			if err != nil {
				return nil, err
			}
			end, err := ParseClock(r.End)
			if err != nil {
				return nil, err
			}
			if end <= start {
				return nil, fmt.Errorf("range %s-%s must end after it starts", r.Start, r.End)
			}
			list = append(list, parsed{r: r, start: start, end: end})
		}
		sort.SliceStable(list, func(i, j int) bool { return list[i].start < list[j].start })

		ranges := make([]TimeRange, 0, len(list))
		for i, p := range list {
			// Ranges may touch but not overlap.
			if i > 0 && p.start < list[i-1].end {
				prev := list[i-1].r
				return nil, fmt.Errorf("range %s-%s overlaps %s-%s", p.r.Start, p.r.End, prev.Start, prev.End)
			}
			ranges = append(ranges, p.r)
		}
		out = append(out, WeeklyDay{DayOfWeek: d.DayOfWeek, Ranges: ranges})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out, nil
}

func ValidateSlotDuration(min int) error {
	if min < MinSlotDurationMin || min > MaxSlotDurationMin {
		return fmt.Errorf("slotDurationMin must be between %d and %d", MinSlotDurationMin, MaxSlotDurationMin)
	}
	return nil
}

func ValidateBuffer(min int) error {
	if min < 0 || min > MaxBufferMin {
		return fmt.Errorf("bufferMin must be between 0 and %d", MaxBufferMin)
	}
	return nil
}
