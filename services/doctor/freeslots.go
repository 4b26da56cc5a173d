// File: services/doctor/freeslots.go
package doctor

import (
	"fmt"
	"sort"
	"time"

	"medcrm/models"
)

// weekdayKeyFor maps a calendar date onto its weekly-schedule key.
func weekdayKeyFor(t time.Time) models.WeekdayKey {
	switch t.Weekday() {
	case time.Monday:
		return models.Monday
	case time.Tuesday:
		return models.Tuesday
	case time.Wednesday:
		return models.Wednesday
	case time.Thursday:
		return models.Thursday
	case time.Friday:
		return models.Friday
	case time.Saturday:
		return models.Saturday
	}
	return models.Sunday
}

// minute interval, half-open.
type interval struct {
	start int
	end   int
}

func parseHHMM(s string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func formatHHMM(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// FreeSlots computes the bookable windows for one calendar date: the day's
// effective ranges (weekly schedule, unless a date override replaces or
// blocks them) minus appointments that still hold their slot.
func (s *DefaultDoctorService) FreeSlots(doctorID, date string) ([]models.AvailableWindow, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	doc, err := s.load(doctorID)
	if err != nil {
		return nil, err
	}

	base := effectiveRanges(doc, weekdayKeyFor(day), date)
	if len(base) == 0 {
		return []models.AvailableWindow{}, nil
	}

	appts, err := s.Appointments.ListByDoctorDate(doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments for %s: %w", date, err)
	}
	var booked []interval
	for _, a := range appts {
		if a.Status == models.AppointmentCancelled || a.Status == models.AppointmentNoShow {
			continue
		}
		start, ok1 := parseHHMM(a.Start)
		end, ok2 := parseHHMM(a.End)
		if ok1 && ok2 && start < end {
			booked = append(booked, interval{start, end})
		}
	}

	free := subtract(base, booked)

	windows := make([]models.AvailableWindow, 0, len(free))
	for _, iv := range free {
		windows = append(windows, models.AvailableWindow{
			Start: formatHHMM(iv.start),
			End:   formatHHMM(iv.end),
			Label: formatHHMM(iv.start) + " - " + formatHHMM(iv.end),
		})
	}
	return windows, nil
}

// effectiveRanges resolves which minute intervals apply on the given date.
// An unavailable override blocks the whole day; modified_hours overrides
// replace the weekly ranges; otherwise the weekly schedule applies when the
// day is enabled.
func effectiveRanges(doc *models.Doctor, key models.WeekdayKey, date string) []interval {
	var modified []interval
	for _, o := range doc.DateOverrides {
		if o.Date != date {
			continue
		}
		if o.Type == models.OverrideUnavailable {
			return nil
		}
		if o.Type == models.OverrideModifiedHours {
			if start, ok1 := parseHHMM(o.Start); ok1 {
				if end, ok2 := parseHHMM(o.End); ok2 && start < end {
					modified = append(modified, interval{start, end})
				}
			}
		}
	}
	if len(modified) > 0 {
		return normalize(modified)
	}

	daySchedule := doc.WorkingHours.Day(key)
	if !daySchedule.Enabled {
		return nil
	}
	var ranges []interval
	for _, slot := range daySchedule.TimeSlots {
		if start, ok1 := parseHHMM(slot.Start); ok1 {
			if end, ok2 := parseHHMM(slot.End); ok2 && start < end {
				ranges = append(ranges, interval{start, end})
			}
		}
	}
	return normalize(ranges)
}

// normalize sorts intervals and merges overlaps.
func normalize(ivs []interval) []interval {
	if len(ivs) == 0 {
		return nil
	}
	sort.Slice(ivs, func(i, j int) bool { return ivs[i].start < ivs[j].start })
	merged := []interval{ivs[0]}
	for _, iv := range ivs[1:] {
		last := &merged[len(merged)-1]
		if iv.start <= last.end {
			if iv.end > last.end {
				last.end = iv.end
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// subtract removes the booked intervals from the base intervals.
func subtract(base, booked []interval) []interval {
	booked = normalize(booked)
	var out []interval
	for _, b := range base {
		cur := b
		for _, bk := range booked {
			if bk.end <= cur.start || bk.start >= cur.end {
				continue
			}
			if bk.start > cur.start {
				out = append(out, interval{cur.start, bk.start})
			}
			if bk.end >= cur.end {
				cur.start = cur.end
				break
			}
			cur.start = bk.end
		}
		if cur.start < cur.end {
			out = append(out, cur)
		}
	}
	return out
}
