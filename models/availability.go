package models

// WeekdayKey identifies one day of the recurring weekly schedule.
type WeekdayKey string

const (
	Monday    WeekdayKey = "monday"
	Tuesday   WeekdayKey = "tuesday"
	Wednesday WeekdayKey = "wednesday"
	Thursday  WeekdayKey = "thursday"
	Friday    WeekdayKey = "friday"
	Saturday  WeekdayKey = "saturday"
	Sunday    WeekdayKey = "sunday"
)

// WeekdayOrder lists the seven weekday keys in calendar order.
var WeekdayOrder = [7]WeekdayKey{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// TimeRange is a single start/end window within one weekday.
// Times are "HH:MM" strings; start < end is not enforced here.
type TimeRange struct {
	ID    string `bson:"id" json:"id"`
	Start string `bson:"start" json:"start"` // e.g. "09:00"
	End   string `bson:"end" json:"end"`     // e.g. "17:00"
}

// WeekdaySchedule holds the enabled flag and the ordered time ranges for one weekday.
// When Enabled is false the slots may still be present in storage; consumers
// simply ignore them.
type WeekdaySchedule struct {
	Enabled   bool        `bson:"enabled" json:"enabled"`
	TimeSlots []TimeRange `bson:"timeSlots" json:"timeSlots"`
}

// WeeklyAvailability is a doctor's recurring weekly schedule. The struct keeps
// the seven weekday keys a complete set and preserves calendar order when
// marshalled, which a plain map would not.
type WeeklyAvailability struct {
	Monday    WeekdaySchedule `bson:"monday" json:"monday"`
	Tuesday   WeekdaySchedule `bson:"tuesday" json:"tuesday"`
	Wednesday WeekdaySchedule `bson:"wednesday" json:"wednesday"`
	Thursday  WeekdaySchedule `bson:"thursday" json:"thursday"`
	Friday    WeekdaySchedule `bson:"friday" json:"friday"`
	Saturday  WeekdaySchedule `bson:"saturday" json:"saturday"`
	Sunday    WeekdaySchedule `bson:"sunday" json:"sunday"`
}

// Day returns the schedule for the given weekday key. Unknown keys yield a
// zero schedule.
func (w WeeklyAvailability) Day(key WeekdayKey) WeekdaySchedule {
	switch key {
	case Monday:
		return w.Monday
	case Tuesday:
		return w.Tuesday
	case Wednesday:
		return w.Wednesday
	case Thursday:
		return w.Thursday
	case Friday:
		return w.Friday
	case Saturday:
		return w.Saturday
	case Sunday:
		return w.Sunday
	}
	return WeekdaySchedule{}
}

// WithDay returns a copy of the weekly availability with the given day replaced.
func (w WeeklyAvailability) WithDay(key WeekdayKey, day WeekdaySchedule) WeeklyAvailability {
	switch key {
	case Monday:
		w.Monday = day
	case Tuesday:
		w.Tuesday = day
	case Wednesday:
		w.Wednesday = day
	case Thursday:
		w.Thursday = day
	case Friday:
		w.Friday = day
	case Saturday:
		w.Saturday = day
	case Sunday:
		w.Sunday = day
	}
	return w
}

// Raw converts the weekly availability into the persisted union shape
// (current format: every day carries a timeSlots array).
func (w WeeklyAvailability) Raw() RawWorkingHours {
	raw := make(RawWorkingHours, len(WeekdayOrder))
	for _, key := range WeekdayOrder {
		day := w.Day(key)
		raw[string(key)] = RawDaySchedule{
			Enabled:   day.Enabled,
			TimeSlots: day.TimeSlots,
		}
	}
	return raw
}

// RawDaySchedule is the persisted per-day shape, covering both the legacy
// single-range format ({enabled, start, end}) and the current multi-range
// format ({enabled, timeSlots}). Exactly one of the two variants is
// meaningful per document; the discriminator is the presence of timeSlots.
type RawDaySchedule struct {
	Enabled   bool        `bson:"enabled" json:"enabled"`
	Start     string      `bson:"start,omitempty" json:"start,omitempty"` // legacy format only
	End       string      `bson:"end,omitempty" json:"end,omitempty"`     // legacy format only
	TimeSlots []TimeRange `bson:"timeSlots" json:"timeSlots,omitempty"`   // current format only
}

// RawWorkingHours is the working_hours document as stored: weekday name to
// per-day schedule in whichever format the record was last written in.
// A nil map means the doctor has never had working hours saved.
type RawWorkingHours map[string]RawDaySchedule

// Date override types.
const (
	OverrideUnavailable   = "unavailable"
	OverrideModifiedHours = "modified_hours"
)

// DateOverride is a one-off exception to the weekly schedule for a specific
// calendar date. Start/End are meaningful only for modified_hours entries;
// they may linger on unavailable entries and are ignored there. Multiple
// overrides for the same date are permitted.
type DateOverride struct {
	ID     string `bson:"id" json:"id"`
	Date   string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Type   string `bson:"type" json:"type"` // "unavailable" or "modified_hours"
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
	Start  string `bson:"start,omitempty" json:"start,omitempty"`
	End    string `bson:"end,omitempty" json:"end,omitempty"`
}

// AvailableWindow is a continuous bookable block computed for one calendar date.
type AvailableWindow struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`
	Label string `json:"label"` // e.g. "09:00 - 10:30"
}
