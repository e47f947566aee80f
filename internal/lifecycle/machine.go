// Package lifecycle holds the tournament state machine. Every state check in the
// service goes through this package; nothing compares state strings directly.
package lifecycle

import (
	"fmt"

	"github.com/osse101/tournament-rewards/internal/domain"
)

// transitions is the complete table of legal forward moves.
// ResetToCompleted is an administrative override and is not in the table.
var transitions = map[domain.LifecycleState][]domain.LifecycleState{
	domain.StateDraft:              {domain.StateSeekingCoordinator, domain.StateCancelled},
	domain.StateSeekingCoordinator: {domain.StateReadyForEnrollment, domain.StateCancelled},
	domain.StateReadyForEnrollment: {domain.StateEnrollmentOpen, domain.StateCancelled},
	domain.StateEnrollmentOpen:     {domain.StateInProgress, domain.StateCancelled},
	domain.StateInProgress:         {domain.StateCompleted, domain.StateCancelled},
	domain.StateCompleted:          {domain.StateRewardsDistributed},
	domain.StateRewardsDistributed: {},
	domain.StateCancelled:          {},
}

// States returns every known state in lifecycle order
func States() []domain.LifecycleState {
	return []domain.LifecycleState{
		domain.StateDraft,
		domain.StateSeekingCoordinator,
		domain.StateReadyForEnrollment,
		domain.StateEnrollmentOpen,
		domain.StateInProgress,
		domain.StateCompleted,
		domain.StateRewardsDistributed,
		domain.StateCancelled,
	}
}

// IsValid reports whether s is a known lifecycle state
func IsValid(s domain.LifecycleState) bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s
func IsTerminal(s domain.LifecycleState) bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// AllowedNext returns a copy of the states reachable from s in one step
func AllowedNext(s domain.LifecycleState) []domain.LifecycleState {
	next := transitions[s]
	out := make([]domain.LifecycleState, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether from -> to is in the transition table
func CanTransition(from, to domain.LifecycleState) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns ErrInvalidTransition when from -> to is not legal.
// Distribution is not a manual transition and must go through the reward orchestrator.
func ValidateTransition(from, to domain.LifecycleState) error {
	if !IsValid(to) {
		return fmt.Errorf("%w: unknown state %q", domain.ErrInvalidTransition, to)
	}
	if to == domain.StateRewardsDistributed {
		return fmt.Errorf("%w: %s is reached only by distributing rewards", domain.ErrInvalidTransition, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
	}
	return nil
}

// GuardDistribution is the single check consulted before any reward distribution.
// COMPLETED always passes; REWARDS_DISTRIBUTED passes only when force is set.
func GuardDistribution(tournamentID int64, current domain.LifecycleState, force bool) error {
	switch {
	case current == domain.StateCompleted:
		return nil
	case current == domain.StateRewardsDistributed && force:
		return nil
	}

	guard := &domain.StateGuardError{
		TournamentID: tournamentID,
		Operation:    OperationDistribute,
		Current:      current,
		Required:     DistributionStates(force),
	}
	if current == domain.StateRewardsDistributed {
		guard.Hint = HintForceRedistribution
	}
	return guard
}

// DistributionStates lists the states distribution may start from
func DistributionStates(force bool) []domain.LifecycleState {
	if force {
		return []domain.LifecycleState{domain.StateCompleted, domain.StateRewardsDistributed}
	}
	return []domain.LifecycleState{domain.StateCompleted}
}

// GuardReset checks the administrative REWARDS_DISTRIBUTED -> COMPLETED override
func GuardReset(tournamentID int64, current domain.LifecycleState) error {
	if current == domain.StateRewardsDistributed {
		return nil
	}
	return &domain.StateGuardError{
		TournamentID: tournamentID,
		Operation:    OperationReset,
		Current:      current,
		Required:     []domain.LifecycleState{domain.StateRewardsDistributed},
	}
}
