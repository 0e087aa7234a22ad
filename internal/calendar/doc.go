// Package calendar provides a client for interacting with the Google Calendar API.
//
// This package supplies the calendar facts consumed by slot resolution:
// merged free/busy intervals for a set of participant calendars, holiday
// dates from a public holiday calendar, and calendar timezone lookup.
//
// The client supports multi-account authentication using the Google OAuth2 flow.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Fetch merged busy periods for two attendees over the next week
//	busy, unavailable, err := client.FetchBusyPeriods(
//	    time.Now(), time.Now().AddDate(0, 0, 7), "Europe/Berlin",
//	    []string{"primary", "alex@example.com"})
//	if err != nil {
//	    log.Fatal(err)
//	}
package calendar
