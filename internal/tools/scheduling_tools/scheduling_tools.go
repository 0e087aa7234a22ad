package scheduling_tools

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/meetslots/internal/availability"
	"github.com/teemow/meetslots/internal/calendar"
	"github.com/teemow/meetslots/internal/instrumentation"
	"github.com/teemow/meetslots/internal/logging"
	"github.com/teemow/meetslots/internal/server"
	"github.com/teemow/meetslots/internal/tools/common"
)

// busyFetchWindow bounds how far ahead busy periods and holidays are
// fetched. It covers the widest search window (a month) plus the opening
// lookahead that may shift the window forward.
const busyFetchWindow = 47 * 24 * time.Hour

// RegisterSchedulingTools registers scheduling and availability tools with the MCP server
func RegisterSchedulingTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Query free/busy tool
	queryFreeBusyTool := mcp.NewTool("calendar_query_freebusy",
		mcp.WithDescription("Check availability for one or more calendars/attendees in a time range"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("timeMin",
			mcp.Required(),
			mcp.Description("Start time for the range (RFC3339 format, e.g., '2025-01-01T00:00:00Z')"),
		),
		mcp.WithString("timeMax",
			mcp.Required(),
			mcp.Description("End time for the range (RFC3339 format, e.g., '2025-01-31T23:59:59Z')"),
		),
		mcp.WithString("timeZone",
			mcp.Description("IANA timezone for the busy periods in the response (default: UTC)"),
		),
		mcp.WithString("calendars",
			mcp.Required(),
			mcp.Description("Comma-separated list of calendar IDs or email addresses to check"),
		),
	)

	s.AddTool(queryFreeBusyTool, common.InstrumentedToolHandlerWithService(
		"calendar_query_freebusy", instrumentation.ServiceCalendar, instrumentation.OperationFreeBusy, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleQueryFreeBusy(ctx, request, sc)
		}))

	// Find meeting slots tool
	findMeetingSlotsTool := mcp.NewTool("find_meeting_slots",
		mcp.WithDescription("Find ranked meeting slots for one or more attendees, honoring business hours, weekends, holidays, and existing commitments"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated list of attendee email addresses. The account's primary calendar is always included."),
		),
		mcp.WithNumber("durationMinutes",
			mcp.Required(),
			mcp.Description("Meeting duration in minutes"),
		),
		mcp.WithString("horizon",
			mcp.Description("Search window breadth: 'day', 'week', or 'month' (default: week)"),
		),
		mcp.WithString("timeZone",
			mcp.Description("IANA timezone for business hours and weekday rules. Defaults to the primary calendar's timezone."),
		),
		mcp.WithString("startTime",
			mcp.Required(),
			mcp.Description("Instant the search starts from (RFC3339 format, e.g., '2025-01-06T09:00:00Z'). Use the current time for 'from now' searches."),
		),
		mcp.WithBoolean("excludeFridays",
			mcp.Description("Exclude Fridays from consideration (default: false)"),
		),
		mcp.WithBoolean("includeHolidays",
			mcp.Description("Fetch holidays from a public holiday calendar and exclude them (default: false)"),
		),
		mcp.WithString("holidayCalendar",
			mcp.Description("Holiday calendar ID to fetch holidays from (default: the US public holiday calendar)"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of ranked slots to return (default: 5)"),
		),
	)

	s.AddTool(findMeetingSlotsTool, common.InstrumentedToolHandlerWithService(
		"find_meeting_slots", instrumentation.ServiceCalendar, instrumentation.OperationResolve, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFindMeetingSlots(ctx, request, sc)
		}))

	// List holidays tool
	listHolidaysTool := mcp.NewTool("calendar_list_holidays",
		mcp.WithDescription("List holiday dates from a public holiday calendar in a time range"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("timeMin",
			mcp.Required(),
			mcp.Description("Start time for the range (RFC3339 format)"),
		),
		mcp.WithString("timeMax",
			mcp.Required(),
			mcp.Description("End time for the range (RFC3339 format)"),
		),
		mcp.WithString("calendar",
			mcp.Description("Holiday calendar ID (default: the US public holiday calendar)"),
		),
	)

	s.AddTool(listHolidaysTool, common.InstrumentedToolHandlerWithService(
		"calendar_list_holidays", instrumentation.ServiceCalendar, instrumentation.OperationHolidays, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListHolidays(ctx, request, sc)
		}))

	return nil
}

func handleQueryFreeBusy(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	timeMin, errResult := parseTimeArg(args, "timeMin")
	if errResult != nil {
		return errResult, nil
	}
	timeMax, errResult := parseTimeArg(args, "timeMax")
	if errResult != nil {
		return errResult, nil
	}

	timeZone, _ := args["timeZone"].(string)

	calendarsStr, ok := args["calendars"].(string)
	if !ok || calendarsStr == "" {
		return mcp.NewToolResultError("calendars is required"), nil
	}
	calendars := splitList(calendarsStr)

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	freeBusyInfos, err := client.QueryFreeBusy(timeMin, timeMax, timeZone, calendars)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to query free/busy: %v", err)), nil
	}

	return mcp.NewToolResultText(formatFreeBusy(freeBusyInfos)), nil
}

func handleFindMeetingSlots(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	durationMinutes, ok := args["durationMinutes"].(float64)
	if !ok || durationMinutes <= 0 {
		return mcp.NewToolResultError("durationMinutes is required and must be positive"), nil
	}
	if durationMinutes != math.Trunc(durationMinutes) {
		return mcp.NewToolResultError("durationMinutes must be a whole number of minutes"), nil
	}

	startTime, errResult := parseTimeArg(args, "startTime")
	if errResult != nil {
		return errResult, nil
	}

	horizonStr, _ := args["horizon"].(string)
	horizon, err := availability.ParseHorizon(horizonStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	excludeFridays, _ := args["excludeFridays"].(bool)
	includeHolidays, _ := args["includeHolidays"].(bool)
	holidayCalendar, _ := args["holidayCalendar"].(string)

	maxResults := 0
	if maxResultsVal, ok := args["maxResults"].(float64); ok && maxResultsVal > 0 {
		maxResults = int(maxResultsVal)
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Resolve the timezone from the primary calendar when not given
	timeZone, _ := args["timeZone"].(string)
	if timeZone == "" {
		tz, err := client.GetCalendarTimeZone("primary")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve calendar timezone: %v", err)), nil
		}
		timeZone = tz
	}

	// The account's own calendar always participates
	calendarIDs := []string{"primary"}
	if attendeesStr, ok := args["attendees"].(string); ok && attendeesStr != "" {
		calendarIDs = append(calendarIDs, splitList(attendeesStr)...)
	}

	fetchMax := startTime.Add(busyFetchWindow)
	busy, unavailable, err := client.FetchBusyPeriods(startTime, fetchMax, timeZone, calendarIDs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch busy periods: %v", err)), nil
	}

	var holidays []time.Time
	if includeHolidays {
		holidays, err = client.ListHolidays(holidayCalendar, startTime, fetchMax)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list holidays: %v", err)), nil
		}
	}

	req := availability.Request{
		Now:            startTime,
		TimeZone:       timeZone,
		Horizon:        horizon,
		SlotDuration:   time.Duration(durationMinutes) * time.Minute,
		ExcludeFridays: excludeFridays,
		BusyPeriods:    busyPeriodsFromIntervals(busy),
		Holidays:       holidays,
		MaxResults:     maxResults,
	}

	searchCtx, span := instrumentation.StartSlotSearchSpan(ctx, string(horizon))
	searchStart := time.Now()
	slots, stats, err := availability.FindSlotsWithStats(req)
	searchDuration := time.Since(searchStart)
	span.End()

	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
	}
	if metrics := sc.Metrics(); metrics != nil {
		metrics.RecordSlotSearch(searchCtx, string(horizon), status, len(slots), stats.Candidates, searchDuration)
	}

	if err != nil {
		slog.Warn("slot search failed",
			logging.Horizon(string(horizon)),
			logging.TimeZone(timeZone),
			logging.Err(err))
		return mcp.NewToolResultError(fmt.Sprintf("Failed to find meeting slots: %v", err)), nil
	}

	slog.Debug("slot search completed",
		logging.Horizon(string(horizon)),
		logging.TimeZone(timeZone),
		logging.Slots(len(slots)))

	return mcp.NewToolResultText(formatSlots(slots, int(durationMinutes), unavailable)), nil
}

func handleListHolidays(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	timeMin, errResult := parseTimeArg(args, "timeMin")
	if errResult != nil {
		return errResult, nil
	}
	timeMax, errResult := parseTimeArg(args, "timeMax")
	if errResult != nil {
		return errResult, nil
	}

	calendarID, _ := args["calendar"].(string)

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	holidays, err := client.ListHolidays(calendarID, timeMin, timeMax)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list holidays: %v", err)), nil
	}

	if len(holidays) == 0 {
		return mcp.NewToolResultText("No holidays found in the specified range"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d holiday(s):\n\n", len(holidays))
	for i, day := range holidays {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, day.Format("2006-01-02"), day.Weekday())
	}
	return mcp.NewToolResultText(b.String()), nil
}

// parseTimeArg extracts and parses a required RFC3339 time argument.
// The second return value is a ready-made tool error result when parsing fails.
func parseTimeArg(args map[string]interface{}, key string) (time.Time, *mcp.CallToolResult) {
	str, ok := args[key].(string)
	if !ok || str == "" {
		return time.Time{}, mcp.NewToolResultError(fmt.Sprintf("%s is required", key))
	}
	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return time.Time{}, mcp.NewToolResultError(fmt.Sprintf("Invalid %s format: %v", key, err))
	}
	return t, nil
}

// splitList splits a comma-separated argument into trimmed entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// busyPeriodsFromIntervals converts merged calendar busy intervals into the
// engine's busy-period form.
func busyPeriodsFromIntervals(busy []calendar.BusyInterval) []availability.BusyPeriod {
	periods := make([]availability.BusyPeriod, 0, len(busy))
	for _, b := range busy {
		periods = append(periods, availability.BusyPeriod{
			Interval:    availability.Interval{Start: b.Start, End: b.End},
			Participant: b.Calendar,
		})
	}
	return periods
}

func formatFreeBusy(infos []calendar.FreeBusyInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Free/Busy information for %d calendar(s):\n\n", len(infos))
	for _, info := range infos {
		fmt.Fprintf(&b, "Calendar: %s\n", info.Calendar)

		if len(info.Errors) > 0 {
			fmt.Fprintf(&b, "  Errors: %s\n", strings.Join(info.Errors, ", "))
		}

		if len(info.Busy) == 0 {
			b.WriteString("  Status: FREE for entire range\n")
		} else {
			fmt.Fprintf(&b, "  Busy periods: %d\n", len(info.Busy))
			for i, busy := range info.Busy {
				fmt.Fprintf(&b, "  %d. %s to %s\n",
					i+1,
					busy.Start.Format("2006-01-02 15:04"),
					busy.End.Format("2006-01-02 15:04"))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatSlots(slots []availability.Slot, durationMinutes int, unavailable []string) string {
	var b strings.Builder

	if len(unavailable) > 0 {
		fmt.Fprintf(&b, "Warning: free/busy unavailable for: %s. Results may be incomplete.\n\n",
			strings.Join(unavailable, ", "))
	}

	if len(slots) == 0 {
		b.WriteString("No available time slots found for the specified criteria")
		return b.String()
	}

	fmt.Fprintf(&b, "Found %d ranked time slot(s) for a %d minute meeting:\n\n",
		len(slots), durationMinutes)

	for i, slot := range slots {
		fmt.Fprintf(&b, "%d. %s (score %.1f)\n", i+1, slot.String(), slot.Score)
	}
	return b.String()
}
