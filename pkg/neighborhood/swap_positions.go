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

// swapPositions implements spec §4.4 move 3: find an (E,P) pair on the
// same sector base in one slot and swap their position letters, rejecting
// the move if it would break either controller's sector continuity in the
// adjacent slots.
func (g *Generator) swapPositions(current *domain.Assignment) *domain.Assignment {
	t := g.Rand.Intn(current.NumSlots())

	byBase := map[int32]map[byte]int{}
	current.ForEachInSlot(t, func(c int, cell domain.Cell) {
		if byBase[cell.Sector.BaseID] == nil {
			byBase[cell.Sector.BaseID] = map[byte]int{}
		}
		byBase[cell.Sector.BaseID][cell.Sector.Position] = c
	})

	var bases []int32
	for base, positions := range byBase {
		_, hasE := positions[byte(v1alpha1.PositionExecutive)]
		_, hasP := positions[byte(v1alpha1.PositionPlanner)]
		if hasE && hasP {
			bases = append(bases, base)
		}
	}
	if len(bases) == 0 {
		return nil
	}
	base := bases[g.Rand.Intn(len(bases))]
	cE := byBase[base][byte(v1alpha1.PositionExecutive)]
	cP := byBase[base][byte(v1alpha1.PositionPlanner)]

	newE := domain.SectorPosition{BaseID: base, Position: byte(v1alpha1.PositionPlanner)}
	newP := domain.SectorPosition{BaseID: base, Position: byte(v1alpha1.PositionExecutive)}

	if g.Oracle.WouldBreakContinuity(current, cE, t, newE) ||
		g.Oracle.WouldBreakContinuity(current, cP, t, newP) {
		return nil
	}

	cand := current.Clone()
	cand.Set(cE, t, domain.Working(newE))
	cand.Set(cP, t, domain.Working(newP))
	return cand
}
