package model

// TimeWindow is a floating (date-independent) window expressed as minutes
// from midnight. It applies on whichever date the target ends up scheduled.
type TimeWindow struct {
	StartMin int
	EndMin   int
}

// DateTimeWindow binds a target to a single specific date with an HH:MM window.
type DateTimeWindow struct {
	Date      string // "YYYY-MM-DD"
	StartHHMM string // "HH:MM"
	EndHHMM   string // "HH:MM"
}

// Target is a base input target. At most one of TimeWindow/DateTimeWindow is set.
//
// Required has no implicit default: the reference implementation this
// planner was ported from treats a target as required when the field is
// absent from its input. Go's zero value for bool is false, so callers
// translating from that shape must map a missing flag to true explicitly
// rather than relying on zero-value behavior.
type Target struct {
	ID             string
	Lat            float64
	Lon            float64
	StayMinutes    int
	Required       bool
	TimeWindow     *TimeWindow
	DateTimeWindow *DateTimeWindow
}

// Driver is available on whichever dates the caller's driversByDate map lists it for.
type Driver struct {
	ID       string
	StartMin int
	EndMin   int
}

// Branch is the depot: every route's start and end point.
type Branch struct {
	Lat float64
	Lon float64
}

// Vehicle is a derived (driver, date) pair: one CP-style "vehicle" per day a
// driver works, with absolute start/end offset by the date's index in the
// input date sequence (dayIdx*1440).
type Vehicle struct {
	DriverID string
	Date     string
	DayIdx   int
	AbsStart int
	AbsEnd   int
}

// ExpandedNode is one clone of a base target bound to one date, with an
// absolute time window. NodeID is an internal correlation key only; it never
// appears in a Plan.
type ExpandedNode struct {
	NodeID  string
	BaseID  string
	Date    string
	DayIdx  int
	Lat     float64
	Lon     float64
	Stay    int
	TWStart int // absolute minutes from day 0
	TWEnd   int // absolute minutes from day 0, already clamped for departure (the out-of-horizon fallback clone spans the whole horizon unclamped)
}

// RouteStop is one visit within a Route. TargetID is the base id (no @date suffix).
type RouteStop struct {
	TargetID      string
	ArrivalMin    float64
	DepartMin     float64
	TravelMinutes float64
	StayMinutes   float64
}

// Route is one driver's ordered visit list on one date.
type Route struct {
	DriverID            string
	Stops               []RouteStop
	TravelMinutes       float64
	StayMinutes         float64
	EndTime             float64
	OvertimeMinutes     float64
	ReturnTravelMinutes float64
}

// Schedule is one date's set of routes plus whatever stayed unassigned that day.
type Schedule struct {
	Date       string
	Status     string
	Routes     []Route
	Unassigned []string
}

// Plan is the final output of BuildGlobalPlan.
type Plan struct {
	Status     string
	Message    string
	Dates      []string
	Schedules  []Schedule
	Unassigned []string
	Warnings   []string
}

// Plan status values.
const (
	StatusSuccess    = "success"
	StatusNoSolution = "no_solution"
	StatusError      = "error"
)
