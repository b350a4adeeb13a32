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

package neighborhood

import (
	v1alpha1 "github.com/atc-roster/optimizer/api/v1alpha1"
	"github.com/atc-roster/optimizer/pkg/domain"
)

// sameSectorRuns returns the maximal contiguous slot ranges in which
// controller c works the same sector base without interruption, as
// [start, end) ranges. Breaks and sector-base changes both end a run.
func sameSectorRuns(a *domain.Assignment, c int) [][2]int {
	var runs [][2]int
	start := -1
	var base int32
	for t := 0; t < a.NumSlots(); t++ {
		cell := a.At(c, t)
		if cell.Break {
			if start != -1 {
				runs = append(runs, [2]int{start, t})
				start = -1
			}
			continue
		}
		switch {
		case start == -1:
			start, base = t, cell.Sector.BaseID
		case cell.Sector.BaseID != base:
			runs = append(runs, [2]int{start, t})
			start, base = t, cell.Sector.BaseID
		}
	}
	if start != -1 {
		runs = append(runs, [2]int{start, a.NumSlots()})
	}
	return runs
}

// switchPositionOnSameSector implements spec §4.4 move 6: within one
// contiguous same-sector run for a controller, flip a single slot's
// position letter (E<->P).
func (g *Generator) switchPositionOnSameSector(current *domain.Assignment) *domain.Assignment {
	c := g.Rand.Intn(len(g.Model.Controllers))
	runs := sameSectorRuns(current, c)
	if len(runs) == 0 {
		return nil
	}
	run := runs[g.Rand.Intn(len(runs))]
	t := run[0] + g.Rand.Intn(run[1]-run[0])

	cell := current.At(c, t)
	newPos := byte(v1alpha1.PositionExecutive)
	if cell.Sector.Position == byte(v1alpha1.PositionExecutive) {
		newPos = byte(v1alpha1.PositionPlanner)
	}

	cand := current.Clone()
	cand.Set(c, t, domain.Working(domain.SectorPosition{BaseID: cell.Sector.BaseID, Position: newPos}))
	return cand
}
