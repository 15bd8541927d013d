package profit

import (
	"slices"

	"github.com/napolitain/solver-estate/internal/models"
)

// plan walks the DP table back from n and returns the buildings of the
// chosen allocation in construction order. The last building occupies
// [t-duration, t]; the walk stops at the first zero allocation, whose
// time is idle.
func (s *Solver) plan(dp []state, n int) []models.BuildingAction {
	var actions []models.BuildingAction

	for t := n; t > 0 && dp[t].last != ""; {
		b := s.building(dp[t].last)
		start := t - b.Duration
		actions = append(actions, models.BuildingAction{
			BuildingType: b.Type,
			StartTime:    start,
			EndTime:      t,
			Earnings:     b.Rate * start,
		})
		t = start
	}

	slices.Reverse(actions)
	return actions
}

func (s *Solver) building(bt models.BuildingType) models.Building {
	for _, b := range s.buildings {
		if b.Type == bt {
			return b
		}
	}
	panic("profit: building " + string(bt) + " not in catalog")
}
