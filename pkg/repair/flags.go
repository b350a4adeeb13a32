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

package repair

import (
	"github.com/atc-roster/optimizer/pkg/constraints"
	"github.com/atc-roster/optimizer/pkg/domain"
)

// FixFlagSViolations forces every (c,t) where c has flag S covering t onto
// a break, in place (spec Invariant 3, §4.6 "passed through ... before
// scoring"). It is idempotent: running it twice in a row is a no-op the
// second time.
func FixFlagSViolations(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment) *domain.Assignment {
	for c := range model.Controllers {
		for t := 0; t < a.NumSlots(); t++ {
			if oracle.HasFlagS(c, t) && !a.At(c, t).Break {
				a.Clear(c, t)
			}
		}
	}
	return a
}

// ApplyFlagSRules is spec §4.7 pass 6's idempotent Flag-S enforcement; it
// is the same operation as FixFlagSViolations, named per the repair-pass
// contract rather than the annealing one.
func ApplyFlagSRules(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment) *domain.Assignment {
	return FixFlagSViolations(model, oracle, a)
}

// TestFlagSRules verifies no Flag-S violation remains after ApplyFlagSRules
// (spec §4.7 pass 6 "verify with TestFlagSRules").
func TestFlagSRules(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment) bool {
	for c := range model.Controllers {
		for t := 0; t < a.NumSlots(); t++ {
			if oracle.HasFlagS(c, t) && !a.At(c, t).Break {
				return false
			}
		}
	}
	return true
}

// FixVremeStartViolations demotes any cell assigned before the controller's
// shift start (or past an M-shift's end-of-shift cutoff) to a break (spec
// Invariant 2). Construction and NeighborhoodOps already avoid producing
// these, but RepairPasses re-checks after continuity edits may have moved
// a sector boundary (spec §4.7 pass 6).
func FixVremeStartViolations(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment) *domain.Assignment {
	for c := range model.Controllers {
		for t := 0; t < a.NumSlots(); t++ {
			if !a.At(c, t).Break && !oracle.IsEligible(c, t) {
				a.Clear(c, t)
			}
		}
	}
	return a
}
