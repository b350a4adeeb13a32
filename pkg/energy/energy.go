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

// Package energy implements the EnergyFunction component (spec §4.3): a
// real-valued, weighted penalty sum where lower is better, plus the hard
// invariant check NeighborhoodOps re-rolls against (spec §4.4 "If the
// produced candidate fails IsValidSolution").
package energy

import (
	"math"

	"github.com/atc-roster/optimizer/pkg/constraints"
	"github.com/atc-roster/optimizer/pkg/domain"
)

// Counts tallies every violation/reward term in §4.3's table once each, so
// Score and IsValidSolution can share a single pass over the assignment
// instead of computing the same adjacency/coverage facts twice.
type Counts struct {
	DuplicateSector      int
	UncoveredPosition    int
	SectorChangeNoBreak  int
	BlockTooShort        int
	BlockTooLongSlots    int     // sum of (len-4) over long blocks
	StabilityPairs       int     // sum of floor(len/2) over blocks >= 2
	EligibilityViolation int
	StartTimeViolation   int
	FlagSViolation       int
	SSAndSUPSameSlot     int
	SSWorking            int
	UtilizationReward    float64 // sum of per-gap utilization fractions
	WorkloadVariance     float64
}

// Count walks the assignment once and tallies every term in §4.3.
func Count(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment) Counts {
	var c Counts

	for t := 0; t < a.NumSlots(); t++ {
		for _, controllers := range oracle.DuplicateSectors(a, t) {
			c.DuplicateSector += len(controllers) - 1
		}
		c.UncoveredPosition += len(oracle.UncoveredPositions(a, t))

		hasSS := oracle.SlotHasSS(a, t)
		hasSUP := oracle.SlotHasSUP(a, t)
		if hasSS && hasSUP {
			c.SSAndSUPSameSlot++
		}
		if hasSS {
			c.SSWorking++
		}
	}

	workloads := make([]float64, len(model.Controllers))
	for ci, ctrl := range model.Controllers {
		workload := 0
		for t := 0; t < a.NumSlots(); t++ {
			cell := a.At(ci, t)
			if cell.Break {
				continue
			}
			workload++
			if t > 0 {
				prev := a.At(ci, t-1)
				if !prev.Break && prev.Sector.BaseID != cell.Sector.BaseID {
					c.SectorChangeNoBreak++
				}
			}
			if !oracle.IsEligible(ci, t) {
				if model.Slots[t].Start.Before(ctrl.VremeStart) {
					c.StartTimeViolation++
				} else {
					c.EligibilityViolation++
				}
			}
			if oracle.HasFlagS(ci, t) {
				c.FlagSViolation++
			}
		}
		workloads[ci] = float64(workload)

		for _, block := range a.WorkBlocks(ci) {
			length := block[1] - block[0]
			switch {
			case length < 2:
				c.BlockTooShort++
			case length > 4:
				c.BlockTooLongSlots += length - 4
			}
			if length >= 2 {
				c.StabilityPairs += length / 2
			}
		}

		c.UtilizationReward += utilizationBetweenFlagSGaps(model, a, ci)
	}

	c.WorkloadVariance = variance(workloads)

	return c
}

// utilizationBetweenFlagSGaps computes the reward term for the gaps before,
// between, and after controller c's Flag-S windows (spec §3 soft
// objective "Reward utilization between successive Flag-S windows").
func utilizationBetweenFlagSGaps(model *domain.DomainModel, a *domain.Assignment, c int) float64 {
	ctrl := model.Controllers[c]
	if len(ctrl.FlagSIntervals) == 0 {
		return utilizationOfRange(a, c, 0, a.NumSlots())
	}

	total := 0.0
	gapStart := 0
	for _, iv := range ctrl.FlagSIntervals {
		flagStartSlot := model.SlotIndexAtOrAfter(iv.Start)
		if flagStartSlot > gapStart {
			total += utilizationOfRange(a, c, gapStart, flagStartSlot)
		}
		gapStart = model.SlotIndexAtOrAfter(iv.End)
	}
	if gapStart < a.NumSlots() {
		total += utilizationOfRange(a, c, gapStart, a.NumSlots())
	}
	return total
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

func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	sumSq := 0.0
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return sumSq / float64(len(xs))
}

// Score computes the scalar energy (lower is better), per §4.3's weight
// table, plus sqrt(var(workload)).
func Score(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment) float64 {
	c := Count(model, oracle, a)
	return score(c)
}

func score(c Counts) float64 {
	e := 0.0
	e += WeightDuplicateSector * float64(c.DuplicateSector)
	e += WeightUncoveredPosition * float64(c.UncoveredPosition)
	e += WeightSectorChangeNoBreak * float64(c.SectorChangeNoBreak)
	e += WeightBlockTooShort * float64(c.BlockTooShort)
	e += WeightBlockTooLongPerSlot * float64(c.BlockTooLongSlots)
	e += WeightStabilityRewardPerTwo * float64(c.StabilityPairs)
	e += WeightEligibilityViolation * float64(c.EligibilityViolation)
	e += WeightStartTimeViolation * float64(c.StartTimeViolation)
	e += WeightFlagSViolation * float64(c.FlagSViolation)
	e += WeightSSAndSUPSameSlot * float64(c.SSAndSUPSameSlot)
	e += WeightSSWorking * float64(c.SSWorking)
	e += WeightUtilizationReward * c.UtilizationReward
	e += math.Sqrt(c.WorkloadVariance)
	return e
}

// IsValidSolution reports whether a satisfies the hard invariants (1-6,
// excluding the documented last-resort Invariant-1 deviation which only
// RepairPasses' EnsureAllControllersAssigned is permitted to take). This
// is the check NeighborhoodOps re-rolls a candidate against (spec §4.4).
func IsValidSolution(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment) bool {
	c := Count(model, oracle, a)
	return c.DuplicateSector == 0 &&
		c.SectorChangeNoBreak == 0 &&
		c.EligibilityViolation == 0 &&
		c.StartTimeViolation == 0 &&
		c.FlagSViolation == 0 &&
		c.SSAndSUPSameSlot == 0
}
