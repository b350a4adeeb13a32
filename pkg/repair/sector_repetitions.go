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

// FixSectorRepetitions implements spec §4.7 pass 1: scan each slot; where a
// sector-position appears on more than one controller, keep the first
// occurrence (lowest controller index) and clear the rest; demote any cell
// that violates eligibility or sector validity; finally try to reassign
// the newly-idled controllers onto whatever is still uncovered in the same
// slot.
func FixSectorRepetitions(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment) *domain.Assignment {
	for t := 0; t < a.NumSlots(); t++ {
		for _, controllers := range oracle.DuplicateSectors(a, t) {
			for _, c := range controllers[1:] {
				a.Clear(c, t)
			}
		}

		for c := range model.Controllers {
			cell := a.At(c, t)
			if cell.Break {
				continue
			}
			if !oracle.IsEligible(c, t) || !oracle.IsValidSector(cell.Sector, t) {
				a.Clear(c, t)
			}
		}

		for _, sp := range oracle.UncoveredPositions(a, t) {
			tryReassignSector(model, oracle, a, t, sp)
		}
	}
	return a
}
