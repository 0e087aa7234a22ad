package scheduling_tools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/meetslots/internal/availability"
	"github.com/teemow/meetslots/internal/calendar"
	"github.com/teemow/meetslots/internal/server"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single entry",
			input:    "alice@example.com",
			expected: []string{"alice@example.com"},
		},
		{
			name:     "multiple entries with spaces",
			input:    "alice@example.com, bob@example.com ,carol@example.com",
			expected: []string{"alice@example.com", "bob@example.com", "carol@example.com"},
		},
		{
			name:     "empty entries dropped",
			input:    "alice@example.com,,  ,bob@example.com",
			expected: []string{"alice@example.com", "bob@example.com"},
		},
		{
			name:     "only separators",
			input:    ", ,",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitList(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("splitList(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitList(%q)[%d] = %q, expected %q", tt.input, i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseTimeArg(t *testing.T) {
	args := map[string]interface{}{
		"timeMin": "2025-01-06T09:00:00Z",
	}

	parsed, errResult := parseTimeArg(args, "timeMin")
	if errResult != nil {
		t.Fatalf("Unexpected error result: %v", errResult)
	}
	want := time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Errorf("Parsed time = %v, expected %v", parsed, want)
	}
}

func TestParseTimeArg_Missing(t *testing.T) {
	_, errResult := parseTimeArg(map[string]interface{}{}, "timeMax")
	if errResult == nil {
		t.Fatal("Expected error result for missing argument")
	}
}

func TestParseTimeArg_Invalid(t *testing.T) {
	args := map[string]interface{}{
		"startTime": "not-a-time",
	}
	_, errResult := parseTimeArg(args, "startTime")
	if errResult == nil {
		t.Fatal("Expected error result for malformed time")
	}
}

func TestBusyPeriodsFromIntervals(t *testing.T) {
	busy := []calendar.BusyInterval{
		{
			Start:    time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC),
			End:      time.Date(2025, time.January, 6, 11, 0, 0, 0, time.UTC),
			Calendar: "alice@example.com",
		},
		{
			Start:    time.Date(2025, time.January, 6, 14, 0, 0, 0, time.UTC),
			End:      time.Date(2025, time.January, 6, 15, 0, 0, 0, time.UTC),
			Calendar: "primary",
		},
	}

	periods := busyPeriodsFromIntervals(busy)
	if len(periods) != 2 {
		t.Fatalf("Expected 2 busy periods, got %d", len(periods))
	}
	if periods[0].Participant != "alice@example.com" {
		t.Errorf("Participant = %q, expected alice@example.com", periods[0].Participant)
	}
	if !periods[0].Start.Equal(busy[0].Start) || !periods[0].End.Equal(busy[0].End) {
		t.Errorf("Interval = %v-%v, expected %v-%v", periods[0].Start, periods[0].End, busy[0].Start, busy[0].End)
	}
}

func TestFormatFreeBusy(t *testing.T) {
	infos := []calendar.FreeBusyInfo{
		{
			Calendar: "primary",
			Busy: []calendar.TimeRange{
				{
					Start: time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC),
					End:   time.Date(2025, time.January, 6, 11, 0, 0, 0, time.UTC),
				},
			},
		},
		{
			Calendar: "alice@example.com",
		},
		{
			Calendar: "private@example.com",
			Errors:   []string{"notFound"},
		},
	}

	out := formatFreeBusy(infos)

	if !strings.Contains(out, "Free/Busy information for 3 calendar(s)") {
		t.Errorf("Missing header in output:\n%s", out)
	}
	if !strings.Contains(out, "2025-01-06 10:00 to 2025-01-06 11:00") {
		t.Errorf("Missing busy period in output:\n%s", out)
	}
	if !strings.Contains(out, "Status: FREE for entire range") {
		t.Errorf("Missing free status in output:\n%s", out)
	}
	if !strings.Contains(out, "Errors: notFound") {
		t.Errorf("Missing per-calendar error in output:\n%s", out)
	}
}

func TestFormatSlots(t *testing.T) {
	slots := []availability.Slot{
		{
			Start:             time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC),
			End:               time.Date(2025, time.January, 6, 10, 30, 0, 0, time.UTC),
			Score:             87.5,
			LocalWeekday:      "Monday",
			LocalStartDisplay: "Mon, Jan 6 at 10:00 AM",
			LocalEndDisplay:   "10:30 AM",
		},
	}

	out := formatSlots(slots, 30, nil)

	if !strings.Contains(out, "Found 1 ranked time slot(s) for a 30 minute meeting") {
		t.Errorf("Missing header in output:\n%s", out)
	}
	if !strings.Contains(out, "1. Mon, Jan 6 at 10:00 AM to 10:30 AM (Monday) (score 87.5)") {
		t.Errorf("Missing slot line in output:\n%s", out)
	}
	if strings.Contains(out, "Warning") {
		t.Errorf("Unexpected warning in output:\n%s", out)
	}
}

func TestFormatSlots_Empty(t *testing.T) {
	out := formatSlots(nil, 60, nil)
	if out != "No available time slots found for the specified criteria" {
		t.Errorf("Unexpected empty-result message: %q", out)
	}
}

func TestFormatSlots_UnavailableCalendars(t *testing.T) {
	out := formatSlots(nil, 60, []string{"private@example.com"})
	if !strings.Contains(out, "Warning: free/busy unavailable for: private@example.com") {
		t.Errorf("Missing unavailability warning:\n%s", out)
	}
	if !strings.Contains(out, "No available time slots found") {
		t.Errorf("Missing empty-result message:\n%s", out)
	}
}

// TestHandleFindMeetingSlotsDurationValidation tests durationMinutes
// validation. Invalid durations are rejected before any calendar client is
// touched, so no token is needed.
func TestHandleFindMeetingSlotsDurationValidation(t *testing.T) {
	ctx := context.Background()
	sc, err := server.NewServerContext(ctx)
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}
	defer sc.Shutdown()

	tests := []struct {
		name     string
		duration interface{}
	}{
		{"missing duration", nil},
		{"zero duration", float64(0)},
		{"negative duration", float64(-30)},
		{"fractional duration", 30.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]interface{}{
				"startTime": "2025-01-06T09:00:00Z",
			}
			if tt.duration != nil {
				args["durationMinutes"] = tt.duration
			}

			request := mcp.CallToolRequest{
				Params: mcp.CallToolParams{
					Name:      "find_meeting_slots",
					Arguments: args,
				},
			}

			result, err := handleFindMeetingSlots(ctx, request, sc)
			if err != nil {
				t.Errorf("handleFindMeetingSlots() unexpected error = %v", err)
			}
			if result == nil {
				t.Fatal("handleFindMeetingSlots() returned nil result")
			}
			if !result.IsError {
				t.Error("handleFindMeetingSlots() should return an error result")
			}
		})
	}
}
