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

// tryReassignSector looks for an idle, eligible, non-Flag-S controller that
// can take sp at slot t without breaking continuity, and assigns the first
// one found. Used by FixSectorRepetitions and FixSectorContinuityViolations
// wherever the spec says "attempt TryReassignSector" (§4.7 passes 1-2).
func tryReassignSector(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment, t int, sp domain.SectorPosition) bool {
	for c := range model.Controllers {
		if !oracle.IsIdle(a, c, t) || !oracle.IsEligible(c, t) || oracle.HasFlagS(c, t) {
			continue
		}
		if oracle.WouldBreakContinuity(a, c, t, sp) {
			continue
		}
		a.Set(c, t, domain.Working(sp))
		return true
	}
	return false
}
