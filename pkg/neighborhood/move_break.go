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

// breakRuns returns the maximal contiguous break runs for controller c, as
// [start, end) slot ranges, mirroring domain.Assignment.WorkBlocks.
func breakRuns(a *domain.Assignment, c int) [][2]int {
	var runs [][2]int
	inRun := false
	start := 0
	for t := 0; t < a.NumSlots(); t++ {
		broken := a.At(c, t).Break
		switch {
		case broken && !inRun:
			inRun = true
			start = t
		case !broken && inRun:
			inRun = false
			runs = append(runs, [2]int{start, t})
		}
	}
	if inRun {
		runs = append(runs, [2]int{start, a.NumSlots()})
	}
	return runs
}

// eligibleRange returns the first and last slot index for which c is
// eligible. Eligibility is monotone in slot order (spec Invariant 2), so
// the eligible slots always form one contiguous range.
func (g *Generator) eligibleRange(c int) (first, last int, ok bool) {
	first, last = -1, -1
	for t := 0; t < len(g.Model.Slots); t++ {
		if g.Oracle.IsEligible(c, t) {
			if first == -1 {
				first = t
			}
			last = t
		}
	}
	return first, last, first != -1
}

// moveBreak implements spec §4.4 move 2: relocate one existing break run
// for a controller to a new start position within the controller's shift
// window, restoring the adjacent sector into the vacated slots.
func (g *Generator) moveBreak(current *domain.Assignment) *domain.Assignment {
	c := g.Rand.Intn(len(g.Model.Controllers))
	runs := breakRuns(current, c)
	if len(runs) == 0 {
		return nil
	}
	run := runs[g.Rand.Intn(len(runs))]
	bs, be := run[0], run[1]
	length := be - bs

	first, last, ok := g.eligibleRange(c)
	if !ok {
		return nil
	}
	maxStart := last - length + 1
	if maxStart < first {
		return nil
	}
	ns := first + g.Rand.Intn(maxStart-first+1)
	if ns == bs {
		return nil
	}

	var fill domain.SectorPosition
	haveFill := false
	if bs > 0 {
		if prev := current.At(c, bs-1); !prev.Break {
			fill, haveFill = prev.Sector, true
		}
	}
	if !haveFill && be < current.NumSlots() {
		if next := current.At(c, be); !next.Break {
			fill, haveFill = next.Sector, true
		}
	}
	if !haveFill {
		return nil
	}

	cand := current.Clone()
	for t := bs; t < be; t++ {
		cand.Set(c, t, domain.Working(fill))
	}
	for t := ns; t < ns+length; t++ {
		cand.Set(c, t, domain.BreakCell)
	}
	return cand
}
