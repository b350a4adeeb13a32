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

// FixSectorContinuityViolations implements spec §4.7 pass 2 (and is
// re-run as the first half of pass 6): for each controller, walk the
// timeline; whenever the sector base changes across two adjacent
// non-break slots, clear the second slot and attempt to reassign its
// sector-position to another eligible idle controller.
func FixSectorContinuityViolations(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment) *domain.Assignment {
	for c := range model.Controllers {
		for t := 1; t < a.NumSlots(); t++ {
			prev := a.At(c, t-1)
			cur := a.At(c, t)
			if prev.Break || cur.Break || prev.Sector.BaseID == cur.Sector.BaseID {
				continue
			}
			sp := cur.Sector
			a.Clear(c, t)
			tryReassignSector(model, oracle, a, t, sp)
		}
	}
	return a
}
