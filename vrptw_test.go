package vrptw_test

import (
	"testing"

	"github.com/fleetroute/vrptw"
	"github.com/fleetroute/vrptw/model"
	"github.com/stretchr/testify/require"
)

func TestBuildGlobalPlan_AssignsAllTargetsWithinOneDriverDay(t *testing.T) {
	dates := []string{"2026-08-03"}
	branch := model.Branch{Lat: 0, Lon: 0}
	drivers := map[string][]model.Driver{
		"2026-08-03": {{ID: "d1", StartMin: 0, EndMin: 600}},
	}
	targets := []model.Target{
		{ID: "t1", Lat: 0.01, Lon: 0.0, StayMinutes: 10, Required: true},
		{ID: "t2", Lat: 0.0, Lon: 0.01, StayMinutes: 10, Required: true},
		{ID: "t3", Lat: -0.01, Lon: 0.0, StayMinutes: 10, Required: true},
	}

	plan := vrptw.BuildGlobalPlan(dates, branch, drivers, targets,
		vrptw.DefaultSpeedKMPH, vrptw.DefaultMaxSolveSeconds, vrptw.DefaultMaxStopsPerVehicle)

	require.Equal(t, model.StatusSuccess, plan.Status)
	require.Empty(t, plan.Unassigned)
	require.Len(t, plan.Schedules, 1)
	require.Equal(t, "2026-08-03", plan.Schedules[0].Date)

	visited := make(map[string]bool, 3)
	for _, r := range plan.Schedules[0].Routes {
		for _, s := range r.Stops {
			visited[s.TargetID] = true
		}
	}
	require.True(t, visited["t1"] && visited["t2"] && visited["t3"])
}

func TestBuildGlobalPlan_NoDatesIsError(t *testing.T) {
	plan := vrptw.BuildGlobalPlan(nil, model.Branch{}, nil, nil, 40.0, 1, 10)
	require.Equal(t, model.StatusError, plan.Status)
	require.NotEmpty(t, plan.Message)
}

func TestBuildGlobalPlan_NoDriversOnAnyDateIsError(t *testing.T) {
	dates := []string{"2026-08-03"}
	targets := []model.Target{{ID: "t1", Lat: 0, Lon: 0, StayMinutes: 5, Required: true}}

	plan := vrptw.BuildGlobalPlan(dates, model.Branch{}, map[string][]model.Driver{}, targets,
		vrptw.DefaultSpeedKMPH, vrptw.DefaultMaxSolveSeconds, vrptw.DefaultMaxStopsPerVehicle)

	require.Equal(t, model.StatusError, plan.Status)
}

func TestBuildGlobalPlan_UnreachableTargetFallsBackToUnassigned(t *testing.T) {
	dates := []string{"2026-08-03"}
	branch := model.Branch{Lat: 0, Lon: 0}
	drivers := map[string][]model.Driver{
		"2026-08-03": {{ID: "d1", StartMin: 0, EndMin: 60}},
	}
	// A time-windowed target whose window can never be reached at this speed,
	// alongside one easy target so the solver places something and never
	// falls back to the no-solution path.
	tw := model.TimeWindow{StartMin: 0, EndMin: 1}
	targets := []model.Target{
		{ID: "near", Lat: 0.001, Lon: 0, StayMinutes: 5, Required: true},
		{ID: "far", Lat: 10, Lon: 10, StayMinutes: 5, Required: false, TimeWindow: &tw},
	}

	plan := vrptw.BuildGlobalPlan(dates, branch, drivers, targets, 40.0, 1, 10)

	require.Equal(t, model.StatusSuccess, plan.Status)
	require.Contains(t, plan.Unassigned, "far")
}
