package backfill

import "github.com/fleetroute/vrptw/model"

// TravelMinutesFunc computes travel time in minutes between two points,
// using the same speed/rounding as the main time matrix.
type TravelMinutesFunc func(from, to model.Branch) float64

// VehicleSlot identifies one (driver, date) vehicle a route in Routes
// corresponds to by index, in the same order used throughout the pipeline
// (dates in input order, drivers in input order within a date).
type VehicleSlot struct {
	DriverID string
	Date     string
	DayIdx   int
	AbsStart int
	AbsEnd   int
}

// Backfill gives every driver available on the earliest used day a route,
// pulling one stop at a time from donor routes per spec priority:
//  1. the last stop of any non-empty route on a later used day;
//  2. the last stop of any route on the first used day with more than one stop.
//
// coords resolves a target id to its point so a donor's new last stop's
// location can be found after a transplant; it must cover every id that
// could ever be a route's last stop. Returns the updated routes unchanged
// if there is no used day at all (nothing to backfill from).
func Backfill(slots []VehicleSlot, routes []model.Route, depot model.Branch, coords map[string]model.Branch, travel TravelMinutesFunc) []model.Route {
	out := make([]model.Route, len(routes))
	copy(out, routes)

	firstUsedDate, ok := firstUsedDay(slots, out)
	if !ok {
		return out
	}

	for i, slot := range slots {
		if slot.Date != firstUsedDate || len(out[i].Stops) > 0 {
			continue
		}

		donor, ok := findDonor(slots, out, firstUsedDate, i)
		if !ok {
			continue
		}

		stop, shrunk := popLastStop(out[donor])
		out[donor] = recompute(shrunk, slots[donor], depot, coords, travel)

		depart := float64(slot.AbsStart) + stop.StayMinutes
		if depart > float64(slot.AbsEnd) {
			depart = float64(slot.AbsEnd)
		}
		out[i] = model.Route{
			DriverID: slot.DriverID,
			Stops: []model.RouteStop{{
				TargetID:      stop.TargetID,
				ArrivalMin:    float64(slot.AbsStart),
				DepartMin:     depart,
				TravelMinutes: 0,
				StayMinutes:   stop.StayMinutes,
			}},
			StayMinutes: stop.StayMinutes,
		}
	}

	return out
}

func firstUsedDay(slots []VehicleSlot, routes []model.Route) (string, bool) {
	for i, slot := range slots {
		if len(routes[i].Stops) > 0 {
			return slot.Date, true
		}
	}
	return "", false
}

// findDonor implements the two-case priority order: later used days first,
// then same-day multi-stop routes. missingIdx is excluded from the search
// (it is the empty route we are trying to fill).
func findDonor(slots []VehicleSlot, routes []model.Route, firstUsedDate string, missingIdx int) (int, bool) {
	for i, slot := range slots {
		if i == missingIdx || slot.Date == firstUsedDate {
			continue
		}
		if len(routes[i].Stops) > 0 {
			return i, true
		}
	}
	for i, slot := range slots {
		if i == missingIdx || slot.Date != firstUsedDate {
			continue
		}
		if len(routes[i].Stops) > 1 {
			return i, true
		}
	}
	return -1, false
}

func popLastStop(route model.Route) (model.RouteStop, model.Route) {
	n := len(route.Stops)
	last := route.Stops[n-1]
	route.Stops = route.Stops[:n-1]
	route.StayMinutes -= last.StayMinutes
	// The arc into the removed stop is gone too - the route now ends (and
	// returns to depot from) whatever stop preceded it.
	route.TravelMinutes -= last.TravelMinutes
	return last, route
}

// recompute rebuilds a donor route's trailing totals after its last stop
// was pulled: the new last stop's own arrival/depart are untouched (only a
// trailing leg vanished), but travel, return travel, end time and overtime
// must reflect the shorter chain.
func recompute(route model.Route, slot VehicleSlot, depot model.Branch, coords map[string]model.Branch, travel TravelMinutesFunc) model.Route {
	if len(route.Stops) == 0 {
		return model.Route{DriverID: route.DriverID}
	}

	last := route.Stops[len(route.Stops)-1]
	lastPoint := coords[last.TargetID]
	returnTravel := travel(lastPoint, depot)

	route.TravelMinutes -= route.ReturnTravelMinutes
	route.ReturnTravelMinutes = returnTravel
	route.TravelMinutes += returnTravel
	route.EndTime = last.DepartMin + returnTravel
	if route.EndTime > float64(slot.AbsEnd) {
		route.OvertimeMinutes = route.EndTime - float64(slot.AbsEnd)
	} else {
		route.OvertimeMinutes = 0
	}
	return route
}
