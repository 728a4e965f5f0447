package chat

import "time"

// DataAvailability flags which data categories were present in the bundle.
// Clients use it to explain thin replies without parsing the text.
type DataAvailability struct {
	Timetable   bool `json:"timetable"`
	Attendance  bool `json:"attendance"`
	Grades      bool `json:"grades"`
	Assignments bool `json:"assignments"`
	Calendar    bool `json:"calendar"`
	Expenses    bool `json:"expenses"`
}

// Metadata accompanies every response.
type Metadata struct {
	UserName      string           `json:"userName"`
	Timestamp     time.Time        `json:"timestamp"`
	DataAvailable DataAvailability `json:"dataAvailable"`
}

// Response is the classification envelope: the assigned intent, the
// synthesized reply text, and metadata about the pass.
type Response struct {
	Intent   Intent   `json:"intent"`
	Reply    string   `json:"reply"`
	Metadata Metadata `json:"metadata"`
}

func availabilityFor(b *RequestBundle) DataAvailability {
	return DataAvailability{
		Timetable:   b.HasTimetable(),
		Attendance:  b.HasAttendance(),
		Grades:      b.HasGrades(),
		Assignments: b.HasAssignments(),
		Calendar:    b.HasCalendar(),
		Expenses:    b.HasExpenses(),
	}
}
