/*
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package optimizer implements the public, one-call facade (spec §6.1):
// it wires DomainModel, InitialBuilder, AnnealingEngine (together with
// NeighborhoodOps/EnergyFunction/ConstraintOracle), RepairPasses, and
// ResultAssembler into the single `Optimize` contract, translating every
// internal error kind of spec §7 into Statistics.SolutionStatus rather
// than ever returning a bare Go error.
package optimizer

import (
	"context"
	"time"

	v1alpha1 "github.com/atc-roster/optimizer/api/v1alpha1"
	"github.com/atc-roster/optimizer/pkg/annealing"
	"github.com/atc-roster/optimizer/pkg/builder"
	"github.com/atc-roster/optimizer/pkg/constraints"
	"github.com/atc-roster/optimizer/pkg/domain"
	"github.com/atc-roster/optimizer/pkg/metrics"
	"github.com/atc-roster/optimizer/pkg/neighborhood"
	"github.com/atc-roster/optimizer/pkg/prng"
	"github.com/atc-roster/optimizer/pkg/repair"
	"github.com/atc-roster/optimizer/pkg/result"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Optimize is the single entrypoint described in spec §6.1. It never
// returns a Go error: every condition enumerated in spec §7 is encoded
// into the returned OptimizationResponse's Statistics.SolutionStatus.
func Optimize(ctx context.Context, in v1alpha1.OptimizerInput) v1alpha1.OptimizationResponse {
	return OptimizeWithLogger(ctx, in, zap.NewNop(), metrics.NewRegistry())
}

// OptimizeWithLogger is Optimize with an injected logger and metrics
// registry, for callers (cmd/optimizer, tests) that want to observe
// warnings and instrumentation the facade itself never requires.
func OptimizeWithLogger(ctx context.Context, in v1alpha1.OptimizerInput, log *zap.Logger, reg *metrics.Registry) v1alpha1.OptimizationResponse {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()
	in.SetDefaults()

	model, err := domain.New(&in)
	if err != nil {
		log.Warn("optimizer: invalid input", zap.Error(err))
		return errorResponse("Error")
	}

	oracle := constraints.New(model)
	if isInfeasibleShift(model, oracle) {
		log.Warn("optimizer: infeasible shift (no requirements or no eligible controller)")
		return errorResponse("Error")
	}

	rnd := prng.New(in.RandomSeed)
	initial := builder.Build(model, oracle, rnd, in.UseManualAssignments)

	gen := neighborhood.New(model, oracle, rnd, in.Settings.MoveRetryLimit)
	deadline := start.Add(in.MaxExecTime)
	engine := annealing.New(model, oracle, gen, rnd, in.Settings, deadline, reg, log)

	searchResult := engine.Run(ctx, initial)
	if searchResult.StopReason == annealing.StopDeadline {
		log.Info("optimizer: wall-clock deadline hit, returning best-so-far",
			zap.Duration("maxExecTime", in.MaxExecTime))
	}

	repaired := repair.Run(model, oracle, searchResult.Best, reg, log)
	if repaired.Warnings != nil {
		log.Warn("optimizer: repair passes reported warnings", zap.Error(repaired.Warnings))
	}

	status := solutionStatus(model, oracle, repaired.Assignment)
	assembler := result.New(model, oracle)
	return assembler.Assemble(repaired.Assignment, initial, repaired.InvariantOneViolations, status)
}

// isInfeasibleShift implements spec §7's InfeasibleShift condition: zero
// required sectors in every slot, or zero eligible controllers across the
// whole shift.
func isInfeasibleShift(model *domain.DomainModel, oracle *constraints.Oracle) bool {
	anyRequirement := false
	for t := range model.Slots {
		if len(model.ReqPositions(t)) > 0 {
			anyRequirement = true
			break
		}
	}
	if !anyRequirement {
		return true
	}

	for c := range model.Controllers {
		for t := range model.Slots {
			if oracle.IsEligible(c, t) {
				return false
			}
		}
	}
	return true
}

// solutionStatus implements spec §7: "Optimal" if zero shortage,
// "Feasible" otherwise.
func solutionStatus(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment) string {
	for t := range model.Slots {
		if len(oracle.UncoveredPositions(a, t)) > 0 {
			return "Feasible"
		}
	}
	return "Optimal"
}

func errorResponse(status string) v1alpha1.OptimizationResponse {
	return v1alpha1.OptimizationResponse{
		RunID:               uuid.NewString(),
		ConfigurationLabels: map[string]string{},
		Statistics:          v1alpha1.Statistics{SolutionStatus: status},
	}
}
