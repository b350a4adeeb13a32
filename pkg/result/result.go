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

// Package result implements the ResultAssembler component (spec §4.8):
// turns the repaired Assignment (and the pre-search initial Assignment)
// into the wire-shaped OptimizationResponse, including Statistics,
// SlotShortages, and ConfigurationLabels.
package result

import (
	v1alpha1 "github.com/atc-roster/optimizer/api/v1alpha1"
	"github.com/atc-roster/optimizer/pkg/constraints"
	"github.com/atc-roster/optimizer/pkg/domain"
	"github.com/google/uuid"
)

// Assembler wraps the read-only model/oracle pair every output field is
// derived from.
type Assembler struct {
	Model  *domain.DomainModel
	Oracle *constraints.Oracle
}

// New builds an Assembler.
func New(model *domain.DomainModel, oracle *constraints.Oracle) *Assembler {
	return &Assembler{Model: model, Oracle: oracle}
}

// Assemble produces the full OptimizationResponse (spec §4.8, §6) from the
// final (post-repair) Assignment and the pre-search initial Assignment.
// invariantOneViolations and solutionStatus come from RepairPasses/the
// caller's error-kind classification (spec §7).
func (r *Assembler) Assemble(final, initial *domain.Assignment, invariantOneViolations int, solutionStatus string) v1alpha1.OptimizationResponse {
	optimized := r.project(final, func(c, t int) bool { return r.Oracle.IsEligible(c, t) })
	nonOptimized := r.project(final, func(c, t int) bool { return !r.Oracle.IsEligible(c, t) })
	all := r.project(final, nil)
	var initialAssignments []v1alpha1.OptimizedResult
	if initial != nil {
		initialAssignments = r.project(initial, nil)
	}

	stats := r.computeStatistics(final, invariantOneViolations)
	stats.SolutionStatus = solutionStatus

	return v1alpha1.OptimizationResponse{
		RunID:               uuid.NewString(),
		OptimizedResults:    optimized,
		NonOptimizedResults: nonOptimized,
		AllResults:          all,
		InitialAssignments:  initialAssignments,
		ConfigurationLabels: r.configurationLabels(),
		SlotShortages:       r.slotShortages(final),
		Statistics:          stats,
	}
}

func (r *Assembler) project(a *domain.Assignment, filter func(c, t int) bool) []v1alpha1.OptimizedResult {
	var out []v1alpha1.OptimizedResult
	for c, ctrl := range r.Model.Controllers {
		for t, slot := range r.Model.Slots {
			if filter != nil && !filter(c, t) {
				continue
			}
			cell := a.At(c, t)
			var sector *string
			if !cell.Break {
				s := r.Model.FormatSectorPosition(cell.Sector)
				sector = &s
			}
			out = append(out, v1alpha1.OptimizedResult{
				Sifra:     ctrl.Sifra,
				SlotStart: slot.Start,
				SlotEnd:   slot.End,
				Sector:    sector,
			})
		}
	}
	return out
}

func (r *Assembler) configurationLabels() map[string]string {
	labels := make(map[string]string, len(r.Model.Slots))
	for t, slot := range r.Model.Slots {
		labels[slot.Key()] = r.Model.ConfigLabel(t).String()
	}
	return labels
}

func (r *Assembler) slotShortages(a *domain.Assignment) []v1alpha1.SlotShortage {
	var shortages []v1alpha1.SlotShortage
	for t, slot := range r.Model.Slots {
		n := len(r.Oracle.UncoveredPositions(a, t))
		if n == 0 {
			continue
		}
		shortages = append(shortages, v1alpha1.SlotShortage{SlotKey: slot.Key(), Shortage: n})
	}
	return shortages
}
