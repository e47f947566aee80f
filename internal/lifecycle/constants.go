package lifecycle

// Operation names carried on StateGuardError
const (
	OperationDistribute = "distribute_rewards"
	OperationReset      = "reset_to_completed"
	OperationTransition = "transition"
)

// HintForceRedistribution is appended when a non-forced run hits an already distributed tournament
const HintForceRedistribution = "rewards were already distributed; set force_redistribution to re-run"
