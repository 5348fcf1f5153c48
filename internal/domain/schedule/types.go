package schedule

// Day is one symbol of the weekday alphabet.
type Day string

const (
	Monday    Day = "M"
	Tuesday   Day = "T"
	Wednesday Day = "W"
	Thursday  Day = "R"
	Friday    Day = "F"
)

// Weekdays lists the days blocks can land on, in calendar order.
var Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

// ParseDay accepts exactly one of M, T, W, R, F.
func ParseDay(s string) (Day, bool) {
	switch d := Day(s); d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return d, true
	}
	return "", false
}

// Offering is one enrolled section as supplied by storage. Empty MeetingDays,
// StartTime or EndTime means the section has no scheduled meetings.
type Offering struct {
	ID          string   `json:"id"`
	CourseCode  string   `json:"courseCode"`
	CourseName  string   `json:"courseName"`
	Section     string   `json:"section,omitempty"`
	CRN         string   `json:"crn,omitempty"`
	Instructor  string   `json:"instructor,omitempty"`
	Location    string   `json:"location,omitempty"`
	MeetingDays []string `json:"meetingDays"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
}

// Block is an offering projected onto a single weekday.
type Block struct {
	OfferingID   string `json:"offeringId"`
	CourseCode   string `json:"courseCode"`
	CourseName   string `json:"courseName"`
	Section      string `json:"section,omitempty"`
	CRN          string `json:"crn,omitempty"`
	Instructor   string `json:"instructor,omitempty"`
	Location     string `json:"location,omitempty"`
	Day          Day    `json:"day"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	StartMinutes int    `json:"startMinutes"`
	EndMinutes   int    `json:"endMinutes"`
}

// Duration returns the block length in minutes.
func (b Block) Duration() int {
	return b.EndMinutes - b.StartMinutes
}

// Conflict is a same-day pair of blocks overlapping by a positive duration.
type Conflict struct {
	A              Block `json:"a"`
	B              Block `json:"b"`
	OverlapMinutes int   `json:"overlapMinutes"`
}

// Result is the weekly timeline for one term.
type Result struct {
	Blocks    []Block           `json:"blocks"`
	ByDay     map[Day][]Block   `json:"byDay"`
	Conflicts []Conflict        `json:"conflicts"`
	Dropped   []*TimeParseError `json:"-"`
}

// HasConflicts reports whether any overlap was found.
func (r Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// TotalMinutes sums the scheduled minutes on day.
func (r Result) TotalMinutes(day Day) int {
	total := 0
	for _, b := range r.ByDay[day] {
		total += b.Duration()
	}
	return total
}
