package notification

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() LeaveEvent {
	return LeaveEvent{
		EmployeeName:     "Dana Kim",
		EmployeeEmail:    "dana@example.com",
		LeaveType:        "annual",
		StartDate:        "2026-09-01",
		EndDate:          "2026-09-03",
		Days:             decimal.RequireFromString("2.5"),
		RemainingBalance: decimal.RequireFromString("12.5"),
		Comment:          "Enjoy your trip",
		Approver:         "alice",
	}
}

func TestRenderAllLifecycleEvents(t *testing.T) {
	for evt, label := range statusLabels {
		body, err := Render(evt, sampleEvent())
		require.NoError(t, err, "event %s", evt)

		assert.Contains(t, body, "Dana Kim")
		assert.Contains(t, body, "2026-09-01")
		assert.Contains(t, body, "2026-09-03")
		assert.Contains(t, body, "2.5")
		assert.Contains(t, body, "12.5 days")
		assert.Contains(t, body, label)
	}
}

func TestRenderUnknownEvent(t *testing.T) {
	_, err := Render(EventType("exploded"), sampleEvent())
	assert.Error(t, err)
}

func TestRenderEscapesHTMLInComment(t *testing.T) {
	e := sampleEvent()
	e.Comment = "<script>alert(1)</script>"

	body, err := Render(EventApproved, e)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestSubjectsCoverEveryEvent(t *testing.T) {
	for _, evt := range []EventType{EventSubmitted, EventApproved, EventRejected, EventCancelled, EventReturned} {
		assert.True(t, Valid(evt))
		assert.NotEmpty(t, Subject(evt))
		assert.NotEmpty(t, AdminSubject(evt))
	}
	assert.False(t, Valid(EventType("nope")))
}
