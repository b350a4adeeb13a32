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

// Package annealing implements the AnnealingEngine component (spec §4.6):
// the temperature loop and Metropolis acceptance criterion driving
// NeighborhoodOps over an Assignment, bounded by outer-iteration cap,
// wall-clock deadline, minimum temperature, and stall detection.
package annealing

import (
	"context"
	"math"
	"time"

	v1alpha1 "github.com/atc-roster/optimizer/api/v1alpha1"
	"github.com/atc-roster/optimizer/pkg/constraints"
	"github.com/atc-roster/optimizer/pkg/domain"
	"github.com/atc-roster/optimizer/pkg/energy"
	"github.com/atc-roster/optimizer/pkg/metrics"
	"github.com/atc-roster/optimizer/pkg/neighborhood"
	"github.com/atc-roster/optimizer/pkg/prng"
	"github.com/atc-roster/optimizer/pkg/repair"
	"go.uber.org/zap"
)

// StopReason names which of §4.6's four termination conditions fired.
type StopReason int

const (
	StopOuterCap StopReason = iota
	StopDeadline
	StopMinTemperature
	StopStall
)

func (r StopReason) String() string {
	switch r {
	case StopOuterCap:
		return "outer-iteration-cap"
	case StopDeadline:
		return "deadline"
	case StopMinTemperature:
		return "min-temperature"
	case StopStall:
		return "stall"
	default:
		return "unknown"
	}
}

// Result is what one annealing run hands to RepairPasses.
type Result struct {
	Best       *domain.Assignment
	BestEnergy float64
	StopReason StopReason
	Iterations int
}

// Engine owns the search loop's dependencies. It never mutates Model; it
// mutates its own internal current/best Assignments only.
type Engine struct {
	Model      *domain.DomainModel
	Oracle     *constraints.Oracle
	Generator  *neighborhood.Generator
	Rand       prng.Source
	Settings   v1alpha1.OptimizationSettings
	Deadline   time.Time
	Metrics    *metrics.Registry
	Log        *zap.Logger
}

// New builds an Engine. settings must already have SetDefaults applied.
func New(model *domain.DomainModel, oracle *constraints.Oracle, gen *neighborhood.Generator, rnd prng.Source, settings v1alpha1.OptimizationSettings, deadline time.Time, reg *metrics.Registry, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		Model:     model,
		Oracle:    oracle,
		Generator: gen,
		Rand:      rnd,
		Settings:  settings,
		Deadline:  deadline,
		Metrics:   reg,
		Log:       log,
	}
}

// Run drives the temperature loop starting from initial, returning the
// best Assignment found (spec §4.6, §5 "returns best Assignment found").
// initial is never mutated; the engine works on independent clones.
func (e *Engine) Run(ctx context.Context, initial *domain.Assignment) Result {
	start := time.Now()
	if e.Metrics != nil {
		defer func() { e.Metrics.SearchDuration.Observe(time.Since(start).Seconds()) }()
	}

	current := initial.Clone()
	best := initial.Clone()
	bestEnergy := energy.Score(e.Model, e.Oracle, current)
	currentEnergy := bestEnergy

	temperature := e.Settings.InitialTemperature
	stallCount := 0
	outer := 0
	reason := StopOuterCap

	for outer = 0; outer < e.Settings.OuterIterationCap; outer++ {
		if time.Now().After(e.Deadline) || ctx.Err() != nil {
			reason = StopDeadline
			break
		}
		if temperature < e.Settings.MinTemperature {
			reason = StopMinTemperature
			break
		}

		prevBestEnergy := bestEnergy

		for inner := 0; inner < e.Settings.InnerIterations; inner++ {
			candidate, _ := e.Generator.Propose(current)
			// spec §4.6: "Each produced candidate is passed through
			// FixSectorRepetitions and FixFlagSViolations before scoring"
			// to avoid trapping the search in obvious-infeasibility basins.
			candidate = repair.FixSectorRepetitions(e.Model, e.Oracle, candidate)
			candidate = repair.FixFlagSViolations(e.Model, e.Oracle, candidate)
			candidateEnergy := energy.Score(e.Model, e.Oracle, candidate)

			delta := candidateEnergy - currentEnergy
			accept := delta < 0
			if !accept {
				accept = e.Rand.Float64() < math.Exp(-delta/temperature)
			}

			if accept {
				current = candidate
				currentEnergy = candidateEnergy
				if e.Metrics != nil {
					e.Metrics.MovesAccepted.Inc()
				}
			} else if e.Metrics != nil {
				e.Metrics.MovesRejected.Inc()
			}

			if currentEnergy < bestEnergy {
				best = current.Clone()
				bestEnergy = currentEnergy
			}
		}

		if bestEnergy == prevBestEnergy {
			stallCount++
		} else {
			stallCount = 0
		}
		if stallCount >= e.Settings.StallLimit {
			reason = StopStall
			break
		}

		temperature *= e.Settings.CoolingFactor
	}

	return Result{Best: best, BestEnergy: bestEnergy, StopReason: reason, Iterations: outer}
}
