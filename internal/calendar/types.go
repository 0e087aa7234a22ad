package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// CalendarInfo represents information about a calendar
type CalendarInfo struct {
	ID          string
	Summary     string
	Description string
	TimeZone    string
	Primary     bool
	AccessRole  string // "owner", "writer", "reader", "freeBusyReader"
}

// TimeRange represents a time range
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// FreeBusyInfo represents availability information for a single calendar
type FreeBusyInfo struct {
	Calendar string
	Busy     []TimeRange
	Errors   []string
}

// BusyInterval is a committed time range tagged with the owning calendar.
// It is the merged, engine-ready form of the freebusy response.
type BusyInterval struct {
	Start    time.Time
	End      time.Time
	Calendar string
}

// toCalendarInfo converts a Google Calendar list entry to CalendarInfo
func toCalendarInfo(entry *calendar.CalendarListEntry) CalendarInfo {
	if entry == nil {
		return CalendarInfo{}
	}
	return CalendarInfo{
		ID:          entry.Id,
		Summary:     entry.Summary,
		Description: entry.Description,
		TimeZone:    entry.TimeZone,
		Primary:     entry.Primary,
		AccessRole:  entry.AccessRole,
	}
}

// holidayDate extracts the all-day date of a holiday event.
// Holiday calendars publish all-day events, so Start.Date is set; timed
// events are ignored.
func holidayDate(event *calendar.Event) (time.Time, bool) {
	if event == nil || event.Start == nil || event.Start.Date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", event.Start.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
