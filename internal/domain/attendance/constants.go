package attendance

import "hris/internal/domain/badge"

const Section = "attendance"

const (
	SlugDailyLogs       = "daily-logs"
	SlugShiftScheduling = "shift-scheduling"
)

type Status string

const (
	StatusPresent  Status = "present"
	StatusLate     Status = "late"
	StatusAbsent   Status = "absent"
	StatusMismatch Status = "mismatch"
)

var Statuses = badge.NewMapping("attendance status", badge.Neutral, map[Status]badge.Badge{
	StatusPresent:  {Label: "Present", Tone: badge.ToneGreen, Icon: "✓"},
	StatusLate:     {Label: "Late", Tone: badge.ToneYellow, Icon: "◷"},
	StatusAbsent:   {Label: "Absent", Tone: badge.ToneRed, Icon: "✕"},
	StatusMismatch: {Label: "Mismatch", Tone: badge.ToneOrange, Icon: "⚠"},
})

// Method is how a check-in was captured.
type Method string

const (
	MethodFingerprint Method = "fingerprint"
	MethodFaceID      Method = "face_id"
	MethodWeb         Method = "web"
)

var Methods = badge.NewMapping("capture method", badge.Badge{Tone: badge.ToneSlate}, map[Method]badge.Badge{
	MethodFingerprint: {Label: "Bio", Tone: badge.ToneSlate, Icon: "⌘"},
	MethodFaceID:      {Label: "Face", Tone: badge.ToneSlate, Icon: "◉"},
	MethodWeb:         {Label: "Web", Tone: badge.ToneBlue, Icon: "▣"},
})

// MethodBadge renders unknown methods, including "none", as a dash.
func MethodBadge(method Method) badge.Badge {
	b, err := Methods.Lookup(method)
	if err != nil {
		return badge.Badge{Label: "-", Tone: badge.ToneSlate}
	}
	return b
}

type ShiftCode string

const (
	ShiftMorning ShiftCode = "M"
	ShiftEvening ShiftCode = "E"
	ShiftNight   ShiftCode = "N"
	ShiftOff     ShiftCode = "O"
)

type Shift struct {
	Label string
	Time  string
	Hours int
}

var Shifts = map[ShiftCode]Shift{
	ShiftMorning: {Label: "Morning", Time: "09:00 - 18:00", Hours: 9},
	ShiftEvening: {Label: "Evening", Time: "14:00 - 23:00", Hours: 9},
	ShiftNight:   {Label: "Night", Time: "22:00 - 07:00", Hours: 9},
	ShiftOff:     {Label: "Day Off", Time: "-", Hours: 0},
}

var ShiftBadges = badge.NewMapping("shift", badge.Neutral, map[ShiftCode]badge.Badge{
	ShiftMorning: {Label: "Morning", Tone: badge.ToneEmerald},
	ShiftEvening: {Label: "Evening", Tone: badge.ToneBlue},
	ShiftNight:   {Label: "Night", Tone: badge.TonePurple},
	ShiftOff:     {Label: "Day Off", Tone: badge.ToneSlate},
})

// WeekDays are the schedule keys in column order.
var WeekDays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var weekDayLabels = map[string]string{
	"mon": "Mon", "tue": "Tue", "wed": "Wed", "thu": "Thu", "fri": "Fri", "sat": "Sat", "sun": "Sun",
}
