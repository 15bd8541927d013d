// Package profit computes the most profitable allocation of a time budget
// across the fixed building catalog.
package profit

import (
	"errors"
	"fmt"

	"github.com/napolitain/solver-estate/internal/models"
)

var (
	// ErrNegativeBudget is returned for budgets below zero
	ErrNegativeBudget = errors.New("time budget must not be negative")
	// ErrBudgetTooLarge is returned for budgets above the solver's MaxBudget
	ErrBudgetTooLarge = errors.New("time budget too large")
)

// state is one entry of the DP table
type state struct {
	earnings int
	counts   models.BuildingCounts
	last     models.BuildingType // building finishing at this index, "" for the zero allocation
}

// Solver finds the most profitable allocation for a time budget
type Solver struct {
	buildings []models.Building
	MaxBudget int
}

// NewSolver creates a solver over the fixed catalog with default limits
func NewSolver() *Solver {
	return &Solver{
		buildings: models.Catalog(),
		MaxBudget: models.DefaultMaxBudget,
	}
}

// NewSolverWithConfig creates a solver from the solver section of the config
func NewSolverWithConfig(cfg models.SolverConfig) *Solver {
	s := NewSolver()
	if cfg.MaxBudget > 0 {
		s.MaxBudget = cfg.MaxBudget
	}
	return s
}

// Solve returns the maximum earnings for budget n and one allocation reaching it
func (s *Solver) Solve(n int) (*models.Allocation, error) {
	if err := s.checkBudget(n); err != nil {
		return nil, err
	}
	return s.allocation(s.table(n), n), nil
}

// SolveRange returns the allocation for every budget in [from, to], computed
// from a single DP table.
func (s *Solver) SolveRange(from, to int) ([]*models.Allocation, error) {
	if err := s.checkBudget(from); err != nil {
		return nil, err
	}
	if err := s.checkBudget(to); err != nil {
		return nil, err
	}
	if from > to {
		return nil, fmt.Errorf("invalid budget range %d..%d", from, to)
	}

	dp := s.table(to)
	result := make([]*models.Allocation, 0, to-from+1)
	for n := from; n <= to; n++ {
		result = append(result, s.allocation(dp, n))
	}
	return result, nil
}

func (s *Solver) checkBudget(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeBudget, n)
	}
	if n > s.MaxBudget {
		return fmt.Errorf("%w: %d exceeds %d", ErrBudgetTooLarge, n, s.MaxBudget)
	}
	return nil
}

// table fills dp[0..n]. Each index starts at the zero allocation; for every
// building B that fits, B is tried as the last building finishing at t and is
// credited B.Rate*(t-B.Duration). Only strict improvements replace the best,
// so on ties the earlier building in catalog order wins.
func (s *Solver) table(n int) []state {
	dp := make([]state, n+1)

	for t := 1; t <= n; t++ {
		best := dp[t]

		for _, b := range s.buildings {
			if t < b.Duration {
				continue
			}
			prev := dp[t-b.Duration]
			earnings := prev.earnings + b.Rate*(t-b.Duration)
			if earnings > best.earnings {
				best = state{earnings: earnings, counts: prev.counts, last: b.Type}
				best.counts.Inc(b.Type)
			}
		}

		dp[t] = best
	}

	return dp
}

func (s *Solver) allocation(dp []state, n int) *models.Allocation {
	return &models.Allocation{
		Budget:          n,
		Earnings:        dp[n].earnings,
		Counts:          dp[n].counts,
		BuildingActions: s.plan(dp, n),
	}
}
