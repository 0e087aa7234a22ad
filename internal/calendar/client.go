package calendar

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/teemow/meetslots/internal/google"
)

// DefaultHolidayCalendarID is the public Google holiday calendar queried
// when no explicit holiday calendar is configured.
const DefaultHolidayCalendarID = "en.usa#holiday@group.v.calendar.google.com"

// Client wraps the Google Calendar service
type Client struct {
	svc           *calendar.Service
	account       string // The account this client is associated with
	tokenProvider google.TokenProvider
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccountWithProvider checks if a valid OAuth token exists for the specified account
func HasTokenForAccountWithProvider(account string, provider google.TokenProvider) bool {
	if provider == nil {
		return false
	}
	return provider.HasTokenForAccount(account)
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	provider := google.NewFileTokenProvider()
	return HasTokenForAccountWithProvider(account, provider)
}

// HasToken checks if a valid OAuth token exists for the default account
func HasToken() bool {
	return HasTokenForAccount("default")
}

// NewClientForAccountWithProvider creates a new Calendar client with OAuth2 authentication for a specific account
// The OAuth token is retrieved from the provided token provider
func NewClientForAccountWithProvider(ctx context.Context, account string, tokenProvider google.TokenProvider) (*Client, error) {
	if tokenProvider == nil {
		return nil, fmt.Errorf("token provider cannot be nil")
	}

	// Get token from the provided provider
	token, err := tokenProvider.GetTokenForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth token for account %s: %w", account, err)
	}

	// Create OAuth2 config and token source
	conf := google.GetOAuthConfig()
	tokenSource := conf.TokenSource(ctx, token)

	// Create HTTP client with the token
	client := oauth2.NewClient(ctx, tokenSource)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	baseTransport := &http.Transport{
		ForceAttemptHTTP2: false,
	}
	transport.Base = baseTransport

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:           svc,
		account:       account,
		tokenProvider: tokenProvider,
	}, nil
}

// NewClientForAccount creates a new Calendar client with OAuth2 authentication for a specific account
// Uses the default file-based token provider
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	provider := google.NewFileTokenProvider()
	return NewClientForAccountWithProvider(ctx, account, provider)
}

// NewClient creates a new Calendar client with OAuth2 authentication for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// NewClientWithProvider creates a new Calendar client with OAuth2 authentication for the default account
// using the provided token provider
func NewClientWithProvider(ctx context.Context, provider google.TokenProvider) (*Client, error) {
	return NewClientForAccountWithProvider(ctx, "default", provider)
}

// ListCalendars lists the calendars the account has access to
func (c *Client) ListCalendars() ([]CalendarInfo, error) {
	list, err := c.svc.CalendarList.List().Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	calendars := make([]CalendarInfo, 0, len(list.Items))
	for _, entry := range list.Items {
		calendars = append(calendars, toCalendarInfo(entry))
	}
	return calendars, nil
}

// GetPrimaryCalendar returns the account's primary calendar
func (c *Client) GetPrimaryCalendar() (CalendarInfo, error) {
	cal, err := c.svc.Calendars.Get("primary").Do()
	if err != nil {
		return CalendarInfo{}, fmt.Errorf("failed to get primary calendar: %w", err)
	}
	return CalendarInfo{
		ID:       cal.Id,
		Summary:  cal.Summary,
		TimeZone: cal.TimeZone,
		Primary:  true,
	}, nil
}

// GetCalendarTimeZone returns the IANA timezone of the given calendar.
// Pass "primary" for the account's primary calendar.
func (c *Client) GetCalendarTimeZone(calendarID string) (string, error) {
	cal, err := c.svc.Calendars.Get(calendarID).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get calendar %s: %w", calendarID, err)
	}
	return cal.TimeZone, nil
}

// QueryFreeBusy queries free/busy information for the given calendars
// within the given time range. Per-calendar lookup failures are reported
// in the Errors field of the corresponding FreeBusyInfo rather than
// failing the whole query.
func (c *Client) QueryFreeBusy(timeMin, timeMax time.Time, timeZone string, calendarIDs []string) ([]FreeBusyInfo, error) {
	if len(calendarIDs) == 0 {
		calendarIDs = []string{"primary"}
	}

	items := make([]*calendar.FreeBusyRequestItem, 0, len(calendarIDs))
	for _, id := range calendarIDs {
		items = append(items, &calendar.FreeBusyRequestItem{Id: id})
	}

	req := &calendar.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   items,
	}
	if timeZone != "" {
		req.TimeZone = timeZone
	}

	resp, err := c.svc.Freebusy.Query(req).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to query free/busy: %w", err)
	}

	result := make([]FreeBusyInfo, 0, len(calendarIDs))
	for _, id := range calendarIDs {
		info := FreeBusyInfo{Calendar: id}

		cal, ok := resp.Calendars[id]
		if !ok {
			info.Errors = append(info.Errors, "calendar not present in free/busy response")
			result = append(result, info)
			continue
		}

		for _, e := range cal.Errors {
			info.Errors = append(info.Errors, fmt.Sprintf("%s: %s", e.Domain, e.Reason))
		}

		for _, period := range cal.Busy {
			start, err := time.Parse(time.RFC3339, period.Start)
			if err != nil {
				info.Errors = append(info.Errors, fmt.Sprintf("invalid busy start %q", period.Start))
				continue
			}
			end, err := time.Parse(time.RFC3339, period.End)
			if err != nil {
				info.Errors = append(info.Errors, fmt.Sprintf("invalid busy end %q", period.End))
				continue
			}
			info.Busy = append(info.Busy, TimeRange{Start: start, End: end})
		}

		result = append(result, info)
	}

	return result, nil
}

// FetchBusyPeriods queries free/busy for all participants and merges the
// results into a single chronologically sorted list of busy intervals.
// Calendars whose free/busy lookup failed are returned in unavailable so
// the caller can decide whether a degraded answer is acceptable.
func (c *Client) FetchBusyPeriods(timeMin, timeMax time.Time, timeZone string, calendarIDs []string) (busy []BusyInterval, unavailable []string, err error) {
	infos, err := c.QueryFreeBusy(timeMin, timeMax, timeZone, calendarIDs)
	if err != nil {
		return nil, nil, err
	}
	busy, unavailable = mergeBusy(infos)
	return busy, unavailable, nil
}

// mergeBusy flattens per-calendar free/busy results into a sorted interval
// list and collects the calendars that reported errors.
func mergeBusy(infos []FreeBusyInfo) (busy []BusyInterval, unavailable []string) {
	for _, info := range infos {
		if len(info.Errors) > 0 {
			unavailable = append(unavailable, info.Calendar)
		}
		for _, r := range info.Busy {
			busy = append(busy, BusyInterval{
				Start:    r.Start,
				End:      r.End,
				Calendar: info.Calendar,
			})
		}
	}
	sort.Slice(busy, func(i, j int) bool {
		if busy[i].Start.Equal(busy[j].Start) {
			return busy[i].End.Before(busy[j].End)
		}
		return busy[i].Start.Before(busy[j].Start)
	})
	return busy, unavailable
}

// ListHolidays returns the dates of all-day holiday events from the given
// holiday calendar that fall within the time range. An empty calendarID
// selects DefaultHolidayCalendarID.
func (c *Client) ListHolidays(calendarID string, timeMin, timeMax time.Time) ([]time.Time, error) {
	if calendarID == "" {
		calendarID = DefaultHolidayCalendarID
	}

	events, err := c.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays from %s: %w", calendarID, err)
	}

	var days []time.Time
	for _, event := range events.Items {
		if day, ok := holidayDate(event); ok {
			days = append(days, day)
		}
	}
	return days, nil
}
