package leave

import (
	"sort"
	"strings"
	"time"

	leaveerrors "iakwe-hr/internal/leave/errors"

	"github.com/teambition/rrule-go"
)

const dateLayout = "2006-01-02"

// Holiday is a year-agnostic public holiday.
type Holiday struct {
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
	Name  string     `json:"name"`
}

var MarshallIslandsHolidays = []Holiday{
	{time.January, 1, "New Year's Day"},
	{time.March, 1, "Nuclear Victims Remembrance Day"},
	{time.May, 1, "Constitution Day"},
	{time.November, 17, "President's Day"},
	{time.December, 25, "Christmas Day"},
}

type HolidayCalendar struct {
	holidays []Holiday
}

func NewHolidayCalendar(holidays ...Holiday) HolidayCalendar {
	return HolidayCalendar{holidays: append([]Holiday(nil), holidays...)}
}

func DefaultCalendar() HolidayCalendar {
	return NewHolidayCalendar(MarshallIslandsHolidays...)
}

func (c HolidayCalendar) Holidays() []Holiday {
	return append([]Holiday(nil), c.holidays...)
}

// Overlaps returns the names of holidays falling inside [start, end], both
// days inclusive whatever their time of day, checking every year the range
// touches. Names are deduplicated and ordered by first occurrence.
func (c HolidayCalendar) Overlaps(start, end time.Time) []string {
	from := startOfDay(start)
	to := endOfDay(end)
	if to.Before(from) || len(c.holidays) == 0 {
		return []string{}
	}

	type hit struct {
		at   time.Time
		name string
	}
	var hits []hit

	for _, h := range c.holidays {
		r, err := rrule.NewRRule(rrule.ROption{
			Freq:       rrule.YEARLY,
			Dtstart:    time.Date(from.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
			Until:      time.Date(to.Year(), time.December, 31, 23, 59, 59, 0, time.UTC),
			Bymonth:    []int{int(h.Month)},
			Bymonthday: []int{h.Day},
		})
		if err != nil {
			continue
		}
		set := rrule.Set{}
		set.RRule(r)
		for _, at := range set.Between(from, to, true) {
			hits = append(hits, hit{at: at, name: h.Name})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].at.Before(hits[j].at) })

	seen := make(map[string]struct{}, len(hits))
	names := make([]string, 0, len(hits))
	for _, h := range hits {
		if _, ok := seen[h.name]; ok {
			continue
		}
		seen[h.name] = struct{}{}
		names = append(names, h.name)
	}
	return names
}

type DayCount struct {
	TotalDays int      `json:"total_days"`
	Holidays  []string `json:"holidays"`
}

// Calculate returns the inclusive day count and the holidays inside the range.
func Calculate(start, end time.Time, calendar HolidayCalendar) (DayCount, error) {
	from, to := startOfDay(start), startOfDay(end)
	if to.Before(from) {
		return DayCount{}, leaveerrors.ErrInvalidDateRange
	}

	return DayCount{
		TotalDays: int(to.Sub(from).Hours()/24) + 1,
		Holidays:  calendar.Overlaps(start, end),
	}, nil
}

// Preview is Calculate over raw form values. When either date is still
// empty nothing is computed and an empty preview clears any prior warning.
func Preview(startDate, endDate string, calendar HolidayCalendar) (DayCount, error) {
	startDate, endDate = strings.TrimSpace(startDate), strings.TrimSpace(endDate)
	if startDate == "" || endDate == "" {
		return DayCount{Holidays: []string{}}, nil
	}

	start, err := parseDate(startDate)
	if err != nil {
		return DayCount{}, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return DayCount{}, err
	}
	return Calculate(start, end, calendar)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}
