package claims

import (
	"errors"
	"math"

	"car_rental/internal/domain/entities"
)

// ErrCostUnclassified reports an estimated cost outside every
// adjudication band (a negative cost, in practice). The claim is still
// persisted with the fallback rejection disposition for auditability.
var ErrCostUnclassified = errors.New("claim cost outside all adjudication bands")

// Decision is the outcome of running a claim through the chain. The
// chain makes no writes itself; the caller persists the decision.
type Decision struct {
	Status  entities.ClaimStatus
	Handler string
	Message string
}

// band is one cost interval in the chain, inclusive on the lower edge
// and exclusive on the upper.
type band struct {
	name    string
	minCost float64
	maxCost float64
	status  entities.ClaimStatus
	message string
}

// chain is the strictly ordered adjudication sequence. The first band
// containing the estimated cost wins and terminates the walk.
var chain = []band{
	{
		name:    "MinorDamageHandler",
		minCost: 0,
		maxCost: 500,
		status:  entities.ClaimStatusApproved,
		message: "minor damage auto-approved",
	},
	{
		name:    "MajorDamageHandler",
		minCost: 500,
		maxCost: 3000,
		status:  entities.ClaimStatusPendingApproval,
		message: "major damage requires admin approval",
	},
	{
		name:    "InsuranceHandler",
		minCost: 3000,
		maxCost: math.Inf(1),
		status:  entities.ClaimStatusInsuranceClaim,
		message: "severe damage routed to insurance",
	},
}

// Adjudicate classifies an estimated damage cost into a disposition.
// Costs outside every band fall through to a terminal rejection with no
// handler assigned, reported alongside ErrCostUnclassified.
func Adjudicate(estimatedCost float64) (Decision, error) {
	for _, b := range chain {
		if estimatedCost >= b.minCost && estimatedCost < b.maxCost {
			return Decision{Status: b.status, Handler: b.name, Message: b.message}, nil
		}
	}
	return Decision{
		Status:  entities.ClaimStatusRejected,
		Message: "no handler available for this claim",
	}, ErrCostUnclassified
}
