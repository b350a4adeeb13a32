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

// flagSUtilizationTarget is the spec §4.7 pass 5 threshold ("if
// utilization <75%").
const flagSUtilizationTarget = 0.75

// MaximizeUtilizationBetweenFlagSPeriods implements spec §4.7 pass 5: for
// each controller, compute the gaps between (and before the first, after
// the last) contiguous Flag-S intervals; where a gap's utilization falls
// below 75%, greedily fill idle slots in it with uncovered sectors,
// respecting continuity and the 4-slot work cap.
func MaximizeUtilizationBetweenFlagSPeriods(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment) *domain.Assignment {
	for c, ctrl := range model.Controllers {
		for _, gap := range flagSGaps(model, ctrl) {
			fillGapIfUnderutilized(model, oracle, a, c, gap[0], gap[1])
		}
	}
	return a
}

func flagSGaps(model *domain.DomainModel, ctrl domain.Controller) [][2]int {
	n := len(model.Slots)
	if len(ctrl.FlagSIntervals) == 0 {
		return [][2]int{{0, n}}
	}

	var gaps [][2]int
	cursor := 0
	for _, iv := range ctrl.FlagSIntervals {
		ivStart := model.SlotIndexAtOrAfter(iv.Start)
		if ivStart > cursor {
			gaps = append(gaps, [2]int{cursor, ivStart})
		}
		cursor = model.SlotIndexAtOrAfter(iv.End)
	}
	if cursor < n {
		gaps = append(gaps, [2]int{cursor, n})
	}
	return gaps
}

func fillGapIfUnderutilized(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment, c, start, end int) {
	if end <= start || utilizationOfRange(a, c, start, end) >= flagSUtilizationTarget {
		return
	}
	for t := start; t < end; t++ {
		if !a.At(c, t).Break || !oracle.IsEligible(c, t) || oracle.HasFlagS(c, t) {
			continue
		}
		if !oracle.CanRunLonger(a, c, t) {
			continue
		}
		for _, sp := range oracle.UncoveredPositions(a, t) {
			if oracle.WouldBreakContinuity(a, c, t, sp) {
				continue
			}
			a.Set(c, t, domain.Working(sp))
			break
		}
	}
}

func utilizationOfRange(a *domain.Assignment, c, start, end int) float64 {
	if end <= start {
		return 0
	}
	working := 0
	for t := start; t < end; t++ {
		if !a.At(c, t).Break {
			working++
		}
	}
	return float64(working) / float64(end-start)
}
