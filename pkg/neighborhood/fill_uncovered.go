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

import "github.com/atc-roster/optimizer/pkg/domain"

// fillUncoveredSectors implements spec §4.4 move 5: for one slot, assign
// currently-idle eligible controllers onto uncovered required
// sector-positions. Regular controllers are tried before SS ones, and an
// SS controller is only used when no SUP is already working the slot
// (Invariant 6).
func (g *Generator) fillUncoveredSectors(current *domain.Assignment) *domain.Assignment {
	t := g.Rand.Intn(current.NumSlots())

	uncovered := g.Oracle.UncoveredPositions(current, t)
	if len(uncovered) == 0 {
		return nil
	}

	idle := idleEligibleControllers(g.Model, g.Oracle, current, t)
	if len(idle) == 0 {
		return nil
	}

	var regular, ss []int
	for _, c := range idle {
		if g.Model.Controllers[c].Tag == "SS" {
			ss = append(ss, c)
		} else {
			regular = append(regular, c)
		}
	}
	hasSUP := g.Oracle.SlotHasSUP(current, t)

	cand := current.Clone()
	filled := false
	for _, sp := range uncovered {
		chosen := -1
		switch {
		case len(regular) > 0:
			chosen, regular = regular[0], regular[1:]
		case !hasSUP && len(ss) > 0:
			chosen, ss = ss[0], ss[1:]
		}
		if chosen == -1 {
			continue
		}
		cand.Set(chosen, t, domain.Working(sp))
		filled = true
	}
	if !filled {
		return nil
	}
	return cand
}
