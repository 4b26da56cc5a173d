// File: services/doctor/availability.go
package doctor

import (
	"time"

	"medcrm/models"

	"github.com/google/uuid"
)

// Default range seeded when a day is enabled or a slot is added.
const (
	defaultSlotStart = "09:00"
	defaultSlotEnd   = "17:00"
)

func newDefaultSlot() models.TimeRange {
	return models.TimeRange{
		ID:    uuid.NewString(),
		Start: defaultSlotStart,
		End:   defaultSlotEnd,
	}
}

// DefaultWeeklyAvailability returns the schedule a doctor starts with:
// Mon-Fri enabled with a single 09:00-17:00 range, Sat/Sun disabled.
func DefaultWeeklyAvailability() models.WeeklyAvailability {
	var w models.WeeklyAvailability
	for _, key := range models.WeekdayOrder {
		w = w.WithDay(key, defaultDaySchedule(key))
	}
	return w
}

func defaultDaySchedule(key models.WeekdayKey) models.WeekdaySchedule {
	if key == models.Saturday || key == models.Sunday {
		return models.WeekdaySchedule{Enabled: false, TimeSlots: []models.TimeRange{}}
	}
	return models.WeekdaySchedule{Enabled: true, TimeSlots: []models.TimeRange{newDefaultSlot()}}
}

// ToggleDay enables or disables one weekday. Enabling a day that has no time
// slots seeds it with a single default range. Disabling leaves the slots in
// place; consumers ignore them while enabled is false.
func ToggleDay(w models.WeeklyAvailability, key models.WeekdayKey, enabled bool) models.WeeklyAvailability {
	day := w.Day(key)
	day.Enabled = enabled
	if enabled && len(day.TimeSlots) == 0 {
		day.TimeSlots = []models.TimeRange{newDefaultSlot()}
	}
	return w.WithDay(key, day)
}

// AddTimeSlot appends a new default range to the day's ordered list. Existing
// slots keep their order; no overlap check is performed.
func AddTimeSlot(w models.WeeklyAvailability, key models.WeekdayKey) models.WeeklyAvailability {
	day := w.Day(key)
	slots := make([]models.TimeRange, 0, len(day.TimeSlots)+1)
	slots = append(slots, day.TimeSlots...)
	slots = append(slots, newDefaultSlot())
	day.TimeSlots = slots
	return w.WithDay(key, day)
}

// UpdateTimeSlot replaces the start or end of the slot matching slotID. No
// ordering validation is applied; submitting callers are responsible for
// rejecting inverted ranges.
func UpdateTimeSlot(w models.WeeklyAvailability, key models.WeekdayKey, slotID, field, value string) models.WeeklyAvailability {
	day := w.Day(key)
	slots := make([]models.TimeRange, len(day.TimeSlots))
	for i, slot := range day.TimeSlots {
		if slot.ID == slotID {
			switch field {
			case "start":
				slot.Start = value
			case "end":
				slot.End = value
			}
		}
		slots[i] = slot
	}
	day.TimeSlots = slots
	return w.WithDay(key, day)
}

// RemoveTimeSlot removes the slot matching slotID. If the day's list becomes
// empty the day is disabled, keeping enabled consistent with "has at least
// one slot" on the removal path.
func RemoveTimeSlot(w models.WeeklyAvailability, key models.WeekdayKey, slotID string) models.WeeklyAvailability {
	day := w.Day(key)
	slots := make([]models.TimeRange, 0, len(day.TimeSlots))
	for _, slot := range day.TimeSlots {
		if slot.ID != slotID {
			slots = append(slots, slot)
		}
	}
	day.TimeSlots = slots
	if len(slots) == 0 {
		day.Enabled = false
	}
	return w.WithDay(key, day)
}

// MigrateWorkingHours converts a persisted working_hours document into the
// current multi-range representation. Three shapes are accepted per weekday
// key, discriminated explicitly:
//
//   - key absent (or the whole document nil): the per-key default applies
//   - legacy {enabled, start, end}: wrapped into a single-element timeSlots
//     array preserving enabled
//   - current {enabled, timeSlots}: passed through unchanged
//
// Applying the migration to its own output is a no-op.
func MigrateWorkingHours(raw models.RawWorkingHours) models.WeeklyAvailability {
	var w models.WeeklyAvailability
	for _, key := range models.WeekdayOrder {
		rawDay, ok := raw[string(key)]
		if !ok {
			w = w.WithDay(key, defaultDaySchedule(key))
			continue
		}
		w = w.WithDay(key, migrateDay(key, rawDay))
	}
	return w
}

func migrateDay(key models.WeekdayKey, rawDay models.RawDaySchedule) models.WeekdaySchedule {
	// Current format: a timeSlots array is present, even if empty.
	if rawDay.TimeSlots != nil {
		return models.WeekdaySchedule{Enabled: rawDay.Enabled, TimeSlots: rawDay.TimeSlots}
	}
	// Legacy format: one flat start/end pair on the day itself.
	if rawDay.Start != "" && rawDay.End != "" {
		return models.WeekdaySchedule{
			Enabled: rawDay.Enabled,
			TimeSlots: []models.TimeRange{{
				ID:    uuid.NewString(),
				Start: rawDay.Start,
				End:   rawDay.End,
			}},
		}
	}
	// Malformed entry: fall back to the per-key default rather than failing.
	return defaultDaySchedule(key)
}

// AddDateOverride appends a new override. Date defaults to today and type to
// "unavailable" when unspecified; modified_hours entries are seeded with the
// default range. Duplicate dates are permitted.
func AddDateOverride(overrides []models.DateOverride, date, overrideType string) []models.DateOverride {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if overrideType == "" {
		overrideType = models.OverrideUnavailable
	}
	entry := models.DateOverride{
		ID:   uuid.NewString(),
		Date: date,
		Type: overrideType,
	}
	if overrideType == models.OverrideModifiedHours {
		entry.Start = defaultSlotStart
		entry.End = defaultSlotEnd
	}
	out := make([]models.DateOverride, 0, len(overrides)+1)
	out = append(out, overrides...)
	out = append(out, entry)
	return out
}

// RemoveDateOverride removes the entry matching id. Missing ids are a no-op.
func RemoveDateOverride(overrides []models.DateOverride, id string) []models.DateOverride {
	out := make([]models.DateOverride, 0, len(overrides))
	for _, o := range overrides {
		if o.ID != id {
			out = append(out, o)
		}
	}
	return out
}

// UpdateDateOverride shallow-merges the patch onto the entry matching id.
// Switching an entry to modified_hours seeds the default range when no times
// are set yet.
func UpdateDateOverride(overrides []models.DateOverride, id string, patch models.DateOverridePatch) []models.DateOverride {
	out := make([]models.DateOverride, len(overrides))
	for i, o := range overrides {
		if o.ID == id {
			if patch.Date != nil {
				o.Date = *patch.Date
			}
			if patch.Type != nil {
				o.Type = *patch.Type
				if o.Type == models.OverrideModifiedHours && o.Start == "" && o.End == "" {
					o.Start = defaultSlotStart
					o.End = defaultSlotEnd
				}
			}
			if patch.Reason != nil {
				o.Reason = *patch.Reason
			}
			if patch.Start != nil {
				o.Start = *patch.Start
			}
			if patch.End != nil {
				o.End = *patch.End
			}
		}
		out[i] = o
	}
	return out
}
