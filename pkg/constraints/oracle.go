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

// Package constraints implements the ConstraintOracle component (spec
// §4.2): pure queries against a DomainModel and the current Assignment.
// Per-slot and per-controller lookups are memoized with
// github.com/patrickmn/go-cache the way the teacher memoizes its own
// hot-path eligibility checks (pkg/cache/unavailableofferings.go), since a
// DomainModel never changes for the lifetime of a run (spec §4.12).
package constraints

import (
	"fmt"

	"github.com/atc-roster/optimizer/pkg/domain"
	cache "github.com/patrickmn/go-cache"
)

// Oracle answers eligibility/feasibility/continuity queries in O(1) or
// O(|C|) per slot, as required by spec §4.2.
type Oracle struct {
	model *domain.DomainModel
	cache *cache.Cache
}

// New builds an Oracle over model. The cache never expires entries (the
// model is immutable for the run); NoExpiration/0 cleanup interval mirrors
// that intent directly rather than configuring a TTL that would never fire.
func New(model *domain.DomainModel) *Oracle {
	return &Oracle{
		model: model,
		cache: cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

// IsEligible reports shift-window eligibility for (c, t): Invariant 2.
func (o *Oracle) IsEligible(c, t int) bool {
	key := fmt.Sprintf("elig:%d:%d", c, t)
	if v, ok := o.cache.Get(key); ok {
		return v.(bool)
	}
	ctrl := o.model.Controllers[c]
	slot := o.model.Slots[t]
	eligible := !slot.Start.Before(ctrl.VremeStart)
	if eligible && ctrl.Shift == "M" {
		eligible = t < len(o.model.Slots)-2
	}
	o.cache.SetDefault(key, eligible)
	return eligible
}

// HasFlagS reports whether controller c is flagged restricted at slot t:
// Invariant 3.
func (o *Oracle) HasFlagS(c, t int) bool {
	key := fmt.Sprintf("flags:%d:%d", c, t)
	if v, ok := o.cache.Get(key); ok {
		return v.(bool)
	}
	ctrl := o.model.Controllers[c]
	slotStart := o.model.Slots[t].Start
	flagged := false
	for _, iv := range ctrl.FlagSIntervals {
		if iv.Contains(slotStart) {
			flagged = true
			break
		}
	}
	o.cache.SetDefault(key, flagged)
	return flagged
}

// IsValidSector reports whether sp's sector base is a member of Req(t):
// Invariant 4 ("sector base must appear in the requirement set for t").
func (o *Oracle) IsValidSector(sp domain.SectorPosition, t int) bool {
	_, ok := o.model.ReqBaseIDs(t)[sp.BaseID]
	return ok
}

// WouldBreakContinuity reports whether setting A(c,t)=sp would place a
// different sector base adjacent (t-1 or t+1) to a non-break run not
// separated by a break: Invariant 5.
func (o *Oracle) WouldBreakContinuity(a *domain.Assignment, c, t int, sp domain.SectorPosition) bool {
	if t > 0 {
		prev := a.At(c, t-1)
		if !prev.Break && prev.Sector.BaseID != sp.BaseID {
			return true
		}
	}
	if t < a.NumSlots()-1 {
		next := a.At(c, t+1)
		if !next.Break && next.Sector.BaseID != sp.BaseID {
			return true
		}
	}
	return false
}

// CanRunLonger reports whether taking c from break to work at t keeps the
// sliding work-window <= 4 consecutive slots (the cap RepairPasses later
// enforces unconditionally via EnforceBreakRules).
func (o *Oracle) CanRunLonger(a *domain.Assignment, c, t int) bool {
	run := 1
	for back := t - 1; back >= 0 && !a.At(c, back).Break; back-- {
		run++
	}
	for fwd := t + 1; fwd < a.NumSlots() && !a.At(c, fwd).Break; fwd++ {
		run++
	}
	return run <= 4
}

// SlotHasSS/SlotHasSUP report whether any controller with the given
// operative workplace tag is working in slot t: Invariant 6 support.
func (o *Oracle) SlotHasSS(a *domain.Assignment, t int) bool  { return o.slotHasTag(a, t, "SS") }
func (o *Oracle) SlotHasSUP(a *domain.Assignment, t int) bool { return o.slotHasTag(a, t, "SUP") }

func (o *Oracle) slotHasTag(a *domain.Assignment, t int, tag string) bool {
	found := false
	a.ForEachInSlot(t, func(c int, _ domain.Cell) {
		if o.model.Controllers[c].Tag == tag {
			found = true
		}
	})
	return found
}

// DuplicateSectors returns the sector-positions assigned to more than one
// controller in slot t (Invariant 1 violation detection, used by
// FixSectorRepetitions).
func (o *Oracle) DuplicateSectors(a *domain.Assignment, t int) map[domain.SectorPosition][]int {
	byPosition := map[domain.SectorPosition][]int{}
	a.ForEachInSlot(t, func(c int, cell domain.Cell) {
		byPosition[cell.Sector] = append(byPosition[cell.Sector], c)
	})
	dups := map[domain.SectorPosition][]int{}
	for sp, controllers := range byPosition {
		if len(controllers) > 1 {
			dups[sp] = controllers
		}
	}
	return dups
}

// UncoveredPositions returns the required sector-positions for slot t that
// no controller currently covers.
func (o *Oracle) UncoveredPositions(a *domain.Assignment, t int) []domain.SectorPosition {
	covered := map[domain.SectorPosition]bool{}
	a.ForEachInSlot(t, func(_ int, cell domain.Cell) { covered[cell.Sector] = true })
	var uncovered []domain.SectorPosition
	for _, sp := range o.model.ReqPositions(t) {
		if !covered[sp] {
			uncovered = append(uncovered, sp)
		}
	}
	return uncovered
}

// IsIdle reports whether controller c is on a break at slot t.
func (o *Oracle) IsIdle(a *domain.Assignment, c, t int) bool {
	return a.At(c, t).Break
}

// Model exposes the underlying DomainModel for callers (NeighborhoodOps,
// RepairPasses) that need direct lookup access alongside oracle queries.
func (o *Oracle) Model() *domain.DomainModel { return o.model }
