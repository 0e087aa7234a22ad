package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/meetslots/internal/availability"
	"github.com/teemow/meetslots/internal/calendar"
)

func newFindCmd() *cobra.Command {
	var (
		account         string
		attendees       string
		durationMinutes int
		horizonStr      string
		timeZone        string
		from            string
		excludeFridays  bool
		includeHolidays bool
		holidayCalendar string
		maxResults      int
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find ranked meeting slots across calendars",
		Long: `Search for available meeting slots within business hours, skipping
weekends, holidays, and times where any attendee is busy. Results are
ranked so that sooner, mid-morning, and mid-afternoon slots come first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			horizon, err := availability.ParseHorizon(horizonStr)
			if err != nil {
				return err
			}

			startTime := time.Now()
			if from != "" {
				startTime, err = time.Parse(time.RFC3339, from)
				if err != nil {
					return fmt.Errorf("invalid --from value: %w", err)
				}
			}

			client, err := calendar.NewClientForAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create calendar client for account %s: %w", account, err)
			}

			if timeZone == "" {
				timeZone, err = client.GetCalendarTimeZone("primary")
				if err != nil {
					return fmt.Errorf("failed to resolve calendar timezone: %w", err)
				}
			}

			calendarIDs := []string{"primary"}
			calendarIDs = append(calendarIDs, parseCommaSeparatedList(attendees)...)

			fetchMax := startTime.Add(47 * 24 * time.Hour)
			busy, unavailable, err := client.FetchBusyPeriods(startTime, fetchMax, timeZone, calendarIDs)
			if err != nil {
				return fmt.Errorf("failed to fetch busy periods: %w", err)
			}
			if len(unavailable) > 0 {
				fmt.Printf("Warning: free/busy unavailable for: %s\n", strings.Join(unavailable, ", "))
			}

			var holidays []time.Time
			if includeHolidays {
				holidays, err = client.ListHolidays(holidayCalendar, startTime, fetchMax)
				if err != nil {
					return fmt.Errorf("failed to list holidays: %w", err)
				}
			}

			busyPeriods := make([]availability.BusyPeriod, 0, len(busy))
			for _, b := range busy {
				busyPeriods = append(busyPeriods, availability.BusyPeriod{
					Interval:    availability.Interval{Start: b.Start, End: b.End},
					Participant: b.Calendar,
				})
			}

			slots, err := availability.FindSlots(availability.Request{
				Now:            startTime,
				TimeZone:       timeZone,
				Horizon:        horizon,
				SlotDuration:   time.Duration(durationMinutes) * time.Minute,
				ExcludeFridays: excludeFridays,
				BusyPeriods:    busyPeriods,
				Holidays:       holidays,
				MaxResults:     maxResults,
			})
			if err != nil {
				return err
			}

			if len(slots) == 0 {
				fmt.Println("No available time slots found")
				return nil
			}

			fmt.Printf("Found %d slot(s) for a %d minute meeting:\n", len(slots), durationMinutes)
			for i, slot := range slots {
				fmt.Printf("%d. %s\n", i+1, slot.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")
	cmd.Flags().StringVar(&attendees, "attendees", "", "Comma-separated attendee email addresses (the account's primary calendar is always included)")
	cmd.Flags().IntVar(&durationMinutes, "duration", 30, "Meeting duration in minutes")
	cmd.Flags().StringVar(&horizonStr, "horizon", "week", "Search window breadth: day, week, or month")
	cmd.Flags().StringVar(&timeZone, "timezone", "", "IANA timezone for business hours (default: primary calendar's timezone)")
	cmd.Flags().StringVar(&from, "from", "", "Search start time in RFC3339 format (default: now)")
	cmd.Flags().BoolVar(&excludeFridays, "exclude-fridays", false, "Exclude Fridays from consideration")
	cmd.Flags().BoolVar(&includeHolidays, "include-holidays", false, "Exclude public holidays using a holiday calendar")
	cmd.Flags().StringVar(&holidayCalendar, "holiday-calendar", "", "Holiday calendar ID (default: the US public holiday calendar)")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "Maximum number of slots to return (default: 5)")

	return cmd
}

// parseCommaSeparatedList parses a comma-separated string into a slice,
// trimming whitespace from each element and filtering out empty strings.
// Returns nil if the input is empty or contains only whitespace/commas.
func parseCommaSeparatedList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
