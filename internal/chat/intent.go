package chat

// Intent is the single top-level category assigned to an incoming message.
type Intent string

// The fixed intent set. Classification order is defined by the rule table
// in modules.All, not by this declaration.
const (
	IntentNameQuery          Intent = "NAME_QUERY"
	IntentExpenseMonthly     Intent = "EXPENSE_MONTHLY"
	IntentExpenseInsights    Intent = "EXPENSE_INSIGHTS"
	IntentAttendanceInsights Intent = "ATTENDANCE_INSIGHTS"
	IntentAcademicInsights   Intent = "ACADEMIC_INSIGHTS"
	IntentAssignmentPlanning Intent = "ASSIGNMENT_PLANNING"
	IntentCalendarManagement Intent = "CALENDAR_MANAGEMENT"
	IntentTimetableAnalysis  Intent = "TIMETABLE_ANALYSIS"
	IntentGreeting           Intent = "GREETING"
	IntentGratitude          Intent = "GRATITUDE"
	IntentGuidance           Intent = "GUIDANCE"
	IntentError              Intent = "ERROR"
)

// String returns the wire label of the intent.
func (i Intent) String() string {
	return string(i)
}
