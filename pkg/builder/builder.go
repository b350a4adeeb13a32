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

// Package builder implements the InitialBuilder component (spec §4.5): a
// deterministic, left-to-right greedy seeding pass that produces the first
// Assignment AnnealingEngine starts its search from.
package builder

import (
	v1alpha1 "github.com/atc-roster/optimizer/api/v1alpha1"
	"github.com/atc-roster/optimizer/pkg/constraints"
	"github.com/atc-roster/optimizer/pkg/domain"
	"github.com/atc-roster/optimizer/pkg/prng"
)

// Build produces the initial Assignment. For each slot, in order, it
// computes the idle/eligible/non-Flag-S pool, shuffles it, and pops
// controllers onto uncovered required sector-positions until either Req(t)
// is covered or the pool is exhausted (spec §4.5: "Never over-assigns").
//
// When useManualAssignments is set, a controller with a recorded manual
// sector for slot t is seeded onto that sector first (skipping the pool
// entirely for that cell) whenever doing so keeps the cell eligible and
// the sector a member of Req(t); the greedy pass then fills whatever Req(t)
// still lacks from the remaining idle pool.
func Build(model *domain.DomainModel, oracle *constraints.Oracle, rnd prng.Source, useManualAssignments bool) *domain.Assignment {
	a := model.NewAssignment()

	for t := 0; t < len(model.Slots); t++ {
		covered := map[domain.SectorPosition]bool{}

		if useManualAssignments {
			seedManual(model, oracle, a, t, covered)
		}

		pool := eligiblePool(model, oracle, a, t)
		rnd.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

		for _, sp := range model.ReqPositions(t) {
			if covered[sp] {
				continue
			}
			if len(pool) == 0 {
				break
			}
			c := pool[0]
			pool = pool[1:]
			a.Set(c, t, domain.Working(sp))
			covered[sp] = true
		}
	}

	return a
}

// seedManual assigns controllers onto their recorded manual sector for
// slot t, picking whichever position (E first, then P) is both required
// and not yet covered.
func seedManual(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment, t int, covered map[domain.SectorPosition]bool) {
	for c := range model.Controllers {
		if !oracle.IsIdle(a, c, t) || !oracle.IsEligible(c, t) || oracle.HasFlagS(c, t) {
			continue
		}
		seed := model.ManualSeed(c, t)
		if seed == "" || seed == v1alpha1.BreakSector {
			continue
		}
		base := model.InternSector(seed)
		for _, pos := range []byte{byte(v1alpha1.PositionExecutive), byte(v1alpha1.PositionPlanner)} {
			sp := domain.SectorPosition{BaseID: base, Position: pos}
			if covered[sp] || !oracle.IsValidSector(sp, t) {
				continue
			}
			a.Set(c, t, domain.Working(sp))
			covered[sp] = true
			break
		}
	}
}

func eligiblePool(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment, t int) []int {
	var pool []int
	for c := range model.Controllers {
		if oracle.IsIdle(a, c, t) && oracle.IsEligible(c, t) && !oracle.HasFlagS(c, t) {
			pool = append(pool, c)
		}
	}
	return pool
}
