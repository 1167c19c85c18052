package sweep_test

import (
	"testing"

	"github.com/fleetroute/vrptw/model"
	"github.com/fleetroute/vrptw/sweep"
	"github.com/stretchr/testify/require"
)

func straightLineMinutes(from, to model.Branch) float64 {
	dLat := from.Lat - to.Lat
	dLon := from.Lon - to.Lon
	if dLat < 0 {
		dLat = -dLat
	}
	if dLon < 0 {
		dLon = -dLon
	}
	return (dLat + dLon) * 60
}

func TestSweep_AppendsFittingCandidateToEmptyRoute(t *testing.T) {
	depot := model.Branch{Lat: 0, Lon: 0}
	slots := []sweep.VehicleSlot{{DriverID: "d1", Date: "2026-08-01", AbsStart: 0, AbsEnd: 1000}}
	routes := []model.Route{{DriverID: "d1"}}
	remaining := []sweep.Candidate{{ID: "t1", Lat: 0, Lon: 1, StayMinutes: 10}}

	updated, unassigned := sweep.Sweep(slots, routes, remaining, depot, map[string]model.Branch{}, 15, straightLineMinutes)
	require.Empty(t, unassigned)
	require.Len(t, updated[0].Stops, 1)
	require.Equal(t, "t1", updated[0].Stops[0].TargetID)
}

func TestSweep_CandidateTooFarLeftUnassigned(t *testing.T) {
	depot := model.Branch{Lat: 0, Lon: 0}
	slots := []sweep.VehicleSlot{{DriverID: "d1", Date: "2026-08-01", AbsStart: 0, AbsEnd: 30}}
	routes := []model.Route{{DriverID: "d1"}}
	remaining := []sweep.Candidate{{ID: "far", Lat: 0, Lon: 10, StayMinutes: 0}}

	_, unassigned := sweep.Sweep(slots, routes, remaining, depot, map[string]model.Branch{}, 15, straightLineMinutes)
	require.Equal(t, []string{"far"}, unassigned)
}

func TestSweep_ContinuesPastStopThatDoesNotFit(t *testing.T) {
	depot := model.Branch{Lat: 0, Lon: 0}
	slots := []sweep.VehicleSlot{{DriverID: "d1", Date: "2026-08-01", AbsStart: 0, AbsEnd: 30}}
	routes := []model.Route{{DriverID: "d1"}}
	remaining := []sweep.Candidate{
		{ID: "far", Lat: 0, Lon: 10, StayMinutes: 0},
		{ID: "near", Lat: 0, Lon: 0.1, StayMinutes: 0},
	}

	updated, unassigned := sweep.Sweep(slots, routes, remaining, depot, map[string]model.Branch{}, 15, straightLineMinutes)
	require.Equal(t, []string{"far"}, unassigned)
	require.Len(t, updated[0].Stops, 1)
	require.Equal(t, "near", updated[0].Stops[0].TargetID)
}
