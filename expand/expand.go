package expand

import (
	"fmt"

	"github.com/fleetroute/vrptw/model"
	"github.com/google/uuid"
)

// vrptwNamespace seeds deterministic node-id generation; any fixed UUID
// works here since it only needs to be stable across runs of this module.
var vrptwNamespace = uuid.MustParse("6f6e8f1a-6e3a-4e3d-9d0b-0f6a3e2b9c10")

// Result is the flattened output of Expand: one Vehicle per (driver, date)
// pair and one ExpandedNode per target clone, plus the disjunction groups
// clones must share (at most one clone per group may be visited).
type Result struct {
	Vehicles     []model.Vehicle
	Nodes        []model.ExpandedNode
	Groups       map[string][]string // BaseID -> NodeIDs sharing a disjunction
	MissingDates []string            // dates with no drivers, carried as warnings
}

// Horizon returns the exclusive upper bound, in absolute minutes, of the
// whole multi-day schedule: (len(dates)+1)*1440, matching the original
// solver's slack allowance of one extra day past the last date.
func Horizon(dates []string) int {
	return (len(dates) + 1) * 1440
}

// Expand builds vehicles and expanded nodes for the given dates, drivers and
// targets. A target with neither a TimeWindow nor a DateTimeWindow gets one
// clone per date bound by that date's own day-work window - the union of
// its drivers' shifts (min start to max end), falling back to the full
// (0, 1440) day when the date has no drivers at all.
func Expand(dates []string, driversByDate map[string][]model.Driver, targets []model.Target) (Result, error) {
	dateOffset := make(map[string]int, len(dates))
	dayWindows := make(map[string]model.TimeWindow, len(dates))
	for i, d := range dates {
		dateOffset[d] = i * 1440
		dayWindows[d] = dayWorkWindow(driversByDate[d])
	}

	res := Result{Groups: make(map[string][]string)}

	for dayIdx, date := range dates {
		drv := driversByDate[date]
		if len(drv) == 0 {
			res.MissingDates = append(res.MissingDates, date)
			continue
		}
		for _, d := range drv {
			res.Vehicles = append(res.Vehicles, model.Vehicle{
				DriverID: d.ID,
				Date:     date,
				DayIdx:   dayIdx,
				AbsStart: dayIdx*1440 + d.StartMin,
				AbsEnd:   dayIdx*1440 + d.EndMin,
			})
		}
	}

	horizon := Horizon(dates)

	for _, t := range targets {
		switch {
		case t.DateTimeWindow != nil:
			if err := res.addDateTimeWindowClone(t, dateOffset, horizon); err != nil {
				return Result{}, err
			}

		case t.TimeWindow != nil:
			if err := res.addFloatingClones(t, dates); err != nil {
				return Result{}, err
			}

		default:
			if err := res.addUnconstrainedClones(t, dates, dayWindows); err != nil {
				return Result{}, err
			}
		}
	}

	return res, nil
}

// dayWorkWindow returns the union of a date's drivers' shifts (min start to
// max end), or the unconstrained full day if there are no drivers.
func dayWorkWindow(drivers []model.Driver) model.TimeWindow {
	if len(drivers) == 0 {
		return model.TimeWindow{StartMin: 0, EndMin: 1440}
	}
	w := model.TimeWindow{StartMin: drivers[0].StartMin, EndMin: drivers[0].EndMin}
	for _, d := range drivers[1:] {
		if d.StartMin < w.StartMin {
			w.StartMin = d.StartMin
		}
		if d.EndMin > w.EndMin {
			w.EndMin = d.EndMin
		}
	}
	return w
}

// addDateTimeWindowClone adds the single clone for a target bound to one
// specific date. A date outside the horizon falls back to an unconstrained
// clone spanning the whole horizon rather than dropping the target.
func (res *Result) addDateTimeWindowClone(t model.Target, dateOffset map[string]int, horizon int) error {
	offset, ok := dateOffset[t.DateTimeWindow.Date]
	if !ok {
		return res.addNode(t, t.ID, t.ID, 0, 0, horizon, t.DateTimeWindow.Date)
	}

	startMin, endMin, err := parseHHMMWindow(t.DateTimeWindow.StartHHMM, t.DateTimeWindow.EndHHMM)
	if err != nil {
		return err
	}
	start := offset + startMin
	end := clampEnd(start, offset+endMin, t.StayMinutes)
	return res.addNode(t, t.ID, t.ID, offset/1440, start, end, t.DateTimeWindow.Date)
}

// addFloatingClones adds one clone per date for a target with a floating
// (date-independent) time window; all clones share a disjunction group so at
// most one is ever visited.
func (res *Result) addFloatingClones(t model.Target, dates []string) error {
	end := clampEnd(t.TimeWindow.StartMin, t.TimeWindow.EndMin, t.StayMinutes)
	for dayIdx, date := range dates {
		offset := dayIdx * 1440
		nodeID := fmt.Sprintf("%s@%s", t.ID, date)
		if err := res.addNode(t, nodeID, t.ID, dayIdx, offset+t.TimeWindow.StartMin, offset+end, date); err != nil {
			return err
		}
	}
	return nil
}

// addUnconstrainedClones adds one clone per date for a target with neither
// window, each bound by that date's own day-work window.
func (res *Result) addUnconstrainedClones(t model.Target, dates []string, dayWindows map[string]model.TimeWindow) error {
	for dayIdx, date := range dates {
		offset := dayIdx * 1440
		w := dayWindows[date]
		nodeID := fmt.Sprintf("%s@%s", t.ID, date)
		if err := res.addNode(t, nodeID, t.ID, dayIdx, offset+w.StartMin, offset+clampEnd(w.StartMin, w.EndMin, t.StayMinutes), date); err != nil {
			return err
		}
	}
	return nil
}

func (res *Result) addNode(t model.Target, nodeKey, baseID string, dayIdx, twStart, twEnd int, date string) error {
	id, err := uuid.NewSHA1(vrptwNamespace, []byte(nodeKey)).MarshalText()
	if err != nil {
		return err
	}
	node := model.ExpandedNode{
		NodeID:  string(id),
		BaseID:  baseID,
		Date:    date,
		DayIdx:  dayIdx,
		Lat:     t.Lat,
		Lon:     t.Lon,
		Stay:    t.StayMinutes,
		TWStart: twStart,
		TWEnd:   twEnd,
	}
	res.Nodes = append(res.Nodes, node)
	res.Groups[baseID] = append(res.Groups[baseID], node.NodeID)
	return nil
}

// clampEnd enforces the original's max(start+1, end-stay) rule so a window
// never collapses to empty once service time is subtracted.
func clampEnd(start, end, stayMinutes int) int {
	adjusted := end - stayMinutes
	if start+1 > adjusted {
		return start + 1
	}
	return adjusted
}

func parseHHMMWindow(startHHMM, endHHMM string) (int, int, error) {
	start, err := parseHHMM(startHHMM)
	if err != nil {
		return 0, 0, err
	}
	end, err := parseHHMM(endHHMM)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseHHMM(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("expand: invalid HH:MM %q: %w", s, err)
	}
	return h*60 + m, nil
}
