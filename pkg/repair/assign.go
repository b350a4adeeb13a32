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

// EnsureAllControllersAssigned implements spec §4.7 pass 3: a controller
// whose entire row is break is given work by, in order of preference, (a) a
// first eligible slot mapped to an uncovered requirement, (b) preempting a
// slot from the most-loaded other working controller in that slot
// (workload >= 2), or (c) as a documented last resort, joining an
// already-covered sector-position (an Invariant-1 deviation). It returns
// the count of (c) occurrences, for Statistics.InvariantOneViolations.
func EnsureAllControllersAssigned(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment) int {
	violations := 0

	for c := range model.Controllers {
		if !isEntirelyIdle(a, c) {
			continue
		}

		if assignToUncovered(model, oracle, a, c) {
			continue
		}
		if preemptFromMostLoaded(model, oracle, a, c) {
			continue
		}
		if joinCoveredSector(model, oracle, a, c) {
			violations++
		}
	}

	return violations
}

func isEntirelyIdle(a *domain.Assignment, c int) bool {
	for t := 0; t < a.NumSlots(); t++ {
		if !a.At(c, t).Break {
			return false
		}
	}
	return true
}

func assignToUncovered(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment, c int) bool {
	for t := 0; t < a.NumSlots(); t++ {
		if !oracle.IsEligible(c, t) || oracle.HasFlagS(c, t) {
			continue
		}
		uncovered := oracle.UncoveredPositions(a, t)
		if len(uncovered) == 0 {
			continue
		}
		a.Set(c, t, domain.Working(uncovered[0]))
		return true
	}
	return false
}

func preemptFromMostLoaded(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment, c int) bool {
	for t := 0; t < a.NumSlots(); t++ {
		if !oracle.IsEligible(c, t) || oracle.HasFlagS(c, t) {
			continue
		}
		victim, sp, ok := mostLoadedWorkingController(a, t, c)
		if !ok {
			continue
		}
		a.Clear(victim, t)
		a.Set(c, t, domain.Working(sp))
		return true
	}
	return false
}

func joinCoveredSector(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment, c int) bool {
	for t := 0; t < a.NumSlots(); t++ {
		if !oracle.IsEligible(c, t) || oracle.HasFlagS(c, t) {
			continue
		}
		sp, ok := anyWorkingSector(a, t)
		if !ok {
			continue
		}
		a.Set(c, t, domain.Working(sp))
		return true
	}
	return false
}

func workload(a *domain.Assignment, c int) int {
	n := 0
	for t := 0; t < a.NumSlots(); t++ {
		if !a.At(c, t).Break {
			n++
		}
	}
	return n
}

// mostLoadedWorkingController returns the working controller (other than
// exclude) in slot t with the highest total workload, provided it is at
// least 2 (spec §4.7 pass 3 "preempts a slot from the most-loaded other
// controller (>=2 assignments)").
func mostLoadedWorkingController(a *domain.Assignment, t, exclude int) (victim int, sp domain.SectorPosition, ok bool) {
	best, bestLoad := -1, -1
	a.ForEachInSlot(t, func(cc int, cell domain.Cell) {
		if cc == exclude {
			return
		}
		load := workload(a, cc)
		if load >= 2 && load > bestLoad {
			best, bestLoad, sp = cc, load, cell.Sector
		}
	})
	if best == -1 {
		return 0, domain.SectorPosition{}, false
	}
	return best, sp, true
}

func anyWorkingSector(a *domain.Assignment, t int) (domain.SectorPosition, bool) {
	var sp domain.SectorPosition
	found := false
	a.ForEachInSlot(t, func(_ int, cell domain.Cell) {
		if !found {
			sp = cell.Sector
			found = true
		}
	})
	return sp, found
}
