package sweep

import "github.com/fleetroute/vrptw/model"

// TravelMinutesFunc computes travel time in minutes between two points,
// using the same speed/rounding as the main time matrix.
type TravelMinutesFunc func(from, to model.Branch) float64

// Candidate is a base target still unassigned after vrpsolve extraction.
// The sweeper places the base target directly wherever it fits; it does
// not re-expand it per date the way vrpsolve's clones do.
type Candidate struct {
	ID          string
	Lat         float64
	Lon         float64
	StayMinutes int
}

// VehicleSlot identifies one (driver, date) vehicle a route in Routes
// corresponds to by index.
type VehicleSlot struct {
	DriverID string
	Date     string
	DayIdx   int
	AbsStart int
	AbsEnd   int
}

// Sweep appends as many remaining candidates as fit to each vehicle's
// route, in slot order (dates in input order, drivers in input order
// within a date) and candidate order (sorted by id by the caller). A
// candidate that does not fit the current vehicle is left for the next
// one rather than aborting the scan for that vehicle.
//
// coords resolves a target id (base or already-placed) to its point, so
// the sweeper can compute travel from a route's last stop even though
// model.RouteStop itself carries no coordinates.
//
// Returns the updated routes (recomputed totals for any route a stop was
// appended to) and the ids that still could not be placed anywhere.
func Sweep(slots []VehicleSlot, routes []model.Route, remaining []Candidate, depot model.Branch, coords map[string]model.Branch, maxStopsPerVehicle int, travel TravelMinutesFunc) ([]model.Route, []string) {
	out := make([]model.Route, len(routes))
	copy(out, routes)

	pending := append([]Candidate(nil), remaining...)

	for i, slot := range slots {
		if len(pending) == 0 {
			break
		}
		route := out[i]
		touched := false

		prevLoc := depot
		prevDepart := float64(slot.AbsStart)
		if len(route.Stops) > 0 {
			last := route.Stops[len(route.Stops)-1]
			prevLoc = coords[last.TargetID]
			prevDepart = last.DepartMin
			// The route no longer ends at this stop once more are appended;
			// drop its stale return-to-depot leg so TravelMinutes isn't
			// double-counted once the new return leg is added below.
			route.TravelMinutes -= route.ReturnTravelMinutes
			route.ReturnTravelMinutes = 0
		}

		stillPending := pending[:0:0]
		for _, cand := range pending {
			if len(route.Stops) >= maxStopsPerVehicle {
				stillPending = append(stillPending, cand)
				continue
			}
			candPt := model.Branch{Lat: cand.Lat, Lon: cand.Lon}
			travelMin := travel(prevLoc, candPt)
			arrival := prevDepart + travelMin
			depart := arrival + float64(cand.StayMinutes)
			if depart > float64(slot.AbsEnd) {
				stillPending = append(stillPending, cand)
				continue
			}

			route.Stops = append(route.Stops, model.RouteStop{
				TargetID:      cand.ID,
				ArrivalMin:    arrival,
				DepartMin:     depart,
				TravelMinutes: travelMin,
				StayMinutes:   float64(cand.StayMinutes),
			})
			route.TravelMinutes += travelMin
			route.StayMinutes += float64(cand.StayMinutes)
			prevLoc = candPt
			prevDepart = depart
			touched = true
		}
		pending = stillPending

		if touched {
			returnTravel := travel(prevLoc, depot)
			route.ReturnTravelMinutes = returnTravel
			route.TravelMinutes += returnTravel
			route.EndTime = prevDepart + returnTravel
			if route.EndTime > float64(slot.AbsEnd) {
				route.OvertimeMinutes = route.EndTime - float64(slot.AbsEnd)
			} else {
				route.OvertimeMinutes = 0
			}
			route.DriverID = slot.DriverID
			out[i] = route
		}
	}

	stillUnassigned := make([]string, 0, len(pending))
	for _, cand := range pending {
		stillUnassigned = append(stillUnassigned, cand.ID)
	}
	return out, stillUnassigned
}
