package notification

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// EventType identifies a leave request lifecycle transition.
type EventType string

const (
	EventSubmitted EventType = "submitted"
	EventApproved  EventType = "approved"
	EventRejected  EventType = "rejected"
	EventCancelled EventType = "cancelled"
	EventReturned  EventType = "returned"
)

// LeaveEvent carries the data interpolated into the notification mails.
// Day counts are decimals because half-day leave is a thing.
type LeaveEvent struct {
	EmployeeName     string          `json:"employeeName"`
	EmployeeEmail    string          `json:"employeeEmail"`
	LeaveType        string          `json:"leaveType"`
	StartDate        string          `json:"startDate"`
	EndDate          string          `json:"endDate"`
	Days             decimal.Decimal `json:"days"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	Comment          string          `json:"comment,omitempty"`
	Approver         string          `json:"approver,omitempty"`
}

var statusLabels = map[EventType]string{
	EventSubmitted: "Submitted",
	EventApproved:  "Approved",
	EventRejected:  "Rejected",
	EventCancelled: "Cancelled",
	EventReturned:  "Returned for correction",
}

var subjects = map[EventType]string{
	EventSubmitted: "Your leave request has been submitted",
	EventApproved:  "Your leave request has been approved",
	EventRejected:  "Your leave request has been rejected",
	EventCancelled: "Your leave request has been cancelled",
	EventReturned:  "Your leave request needs correction",
}

var adminSubjects = map[EventType]string{
	EventSubmitted: "New leave request awaiting review",
	EventApproved:  "Leave request approved",
	EventRejected:  "Leave request rejected",
	EventCancelled: "Leave request cancelled",
	EventReturned:  "Leave request returned for correction",
}

var bodyTemplate = template.Must(template.New("leave_email").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f5f7; margin: 0; padding: 24px;">
  <div style="max-width: 560px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
    <h2 style="color: #172b4d; margin-top: 0;">Leave request {{.StatusLabel}}</h2>
    <p>Hi {{.Event.EmployeeName}},</p>
    <p>Your {{.Event.LeaveType}} leave request has the status <strong>{{.StatusLabel}}</strong>.</p>
    <table style="border-collapse: collapse; width: 100%; margin: 16px 0;">
      <tr>
        <td style="padding: 8px; border: 1px solid #dfe1e6; color: #5e6c84;">From</td>
        <td style="padding: 8px; border: 1px solid #dfe1e6;">{{.Event.StartDate}}</td>
      </tr>
      <tr>
        <td style="padding: 8px; border: 1px solid #dfe1e6; color: #5e6c84;">To</td>
        <td style="padding: 8px; border: 1px solid #dfe1e6;">{{.Event.EndDate}}</td>
      </tr>
      <tr>
        <td style="padding: 8px; border: 1px solid #dfe1e6; color: #5e6c84;">Days</td>
        <td style="padding: 8px; border: 1px solid #dfe1e6;">{{.Days}}</td>
      </tr>
      <tr>
        <td style="padding: 8px; border: 1px solid #dfe1e6; color: #5e6c84;">Remaining balance</td>
        <td style="padding: 8px; border: 1px solid #dfe1e6;">{{.RemainingBalance}} days</td>
      </tr>
      {{- if .Event.Approver}}
      <tr>
        <td style="padding: 8px; border: 1px solid #dfe1e6; color: #5e6c84;">Handled by</td>
        <td style="padding: 8px; border: 1px solid #dfe1e6;">{{.Event.Approver}}</td>
      </tr>
      {{- end}}
    </table>
    {{- if .Event.Comment}}
    <p style="background: #f4f5f7; border-left: 3px solid #0052cc; padding: 12px; color: #172b4d;">{{.Event.Comment}}</p>
    {{- end}}
    <p style="color: #5e6c84; font-size: 12px;">This is an automated message from the leave management system.</p>
  </div>
</body>
</html>
`))

// Subject returns the employee-facing subject line for the event.
func Subject(evt EventType) string {
	return subjects[evt]
}

// AdminSubject returns the admin-facing subject line for the event.
func AdminSubject(evt EventType) string {
	return adminSubjects[evt]
}

// Valid reports whether evt names a known lifecycle transition.
func Valid(evt EventType) bool {
	_, ok := statusLabels[evt]
	return ok
}

// Render produces the HTML body for a lifecycle event.
func Render(evt EventType, e LeaveEvent) (string, error) {
	label, ok := statusLabels[evt]
	if !ok {
		return "", errors.Errorf("unknown leave event type %q", evt)
	}

	var buf bytes.Buffer
	err := bodyTemplate.Execute(&buf, struct {
		Event            LeaveEvent
		StatusLabel      string
		Days             string
		RemainingBalance string
	}{
		Event:            e,
		StatusLabel:      label,
		Days:             e.Days.StringFixed(1),
		RemainingBalance: e.RemainingBalance.StringFixed(1),
	})
	if err != nil {
		return "", errors.Wrap(err, "rendering leave notification")
	}
	return buf.String(), nil
}
