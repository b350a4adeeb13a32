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

// Package repair implements the RepairPasses component (spec §4.7): six
// deterministic fix-up passes, applied in a strict contractual order after
// annealing, that resolve whatever infeasibility the probabilistic search
// left behind.
package repair

import (
	"github.com/atc-roster/optimizer/pkg/constraints"
	"github.com/atc-roster/optimizer/pkg/domain"
	"github.com/atc-roster/optimizer/pkg/metrics"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Result is what RepairPasses hands to ResultAssembler.
type Result struct {
	Assignment             *domain.Assignment
	InvariantOneViolations int
	Warnings               error
}

// Run applies the six passes of spec §4.7 in their contractual order:
//  1. FixSectorRepetitions
//  2. FixSectorContinuityViolations
//  3. EnsureAllControllersAssigned
//  4. EnforceBreakRules
//  5. MaximizeUtilizationBetweenFlagSPeriods
//  6. FixSectorContinuityViolations + FixVremeStartViolations, then
//     ApplyFlagSRules, verified by TestFlagSRules.
//
// a is mutated in place; the ordering is contractual per spec §9's open
// question ("the ordering of passes is contractual and must be
// preserved") and must not be reshuffled even though some passes revisit
// ground earlier passes already covered.
func Run(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment, reg *metrics.Registry, log *zap.Logger) Result {
	if log == nil {
		log = zap.NewNop()
	}

	a = FixSectorRepetitions(model, oracle, a)
	a = FixSectorContinuityViolations(model, oracle, a)
	invariantOneViolations := EnsureAllControllersAssigned(model, oracle, a)
	a = EnforceBreakRules(a)
	a = MaximizeUtilizationBetweenFlagSPeriods(model, oracle, a)
	a = FixSectorContinuityViolations(model, oracle, a)
	a = FixVremeStartViolations(model, oracle, a)
	a = ApplyFlagSRules(model, oracle, a)
	flagSClean := TestFlagSRules(model, oracle, a)

	var warnings error
	if invariantOneViolations > 0 {
		warnings = multierr.Append(warnings, errors.Errorf(
			"%d controller(s) required a last-resort Invariant-1 deviation in EnsureAllControllersAssigned", invariantOneViolations))
		log.Warn("repair: Invariant-1 deviation taken", zap.Int("violations", invariantOneViolations))
		if reg != nil {
			reg.RepairWarnings.Add(float64(invariantOneViolations))
		}
	}
	if !flagSClean {
		warnings = multierr.Append(warnings, errors.New("Flag-S violations remained after ApplyFlagSRules"))
		log.Warn("repair: Flag-S violations survived ApplyFlagSRules")
		if reg != nil {
			reg.RepairWarnings.Inc()
		}
	}

	return Result{Assignment: a, InvariantOneViolations: invariantOneViolations, Warnings: warnings}
}
