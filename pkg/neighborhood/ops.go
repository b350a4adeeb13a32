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

// Package neighborhood implements the six move generators of spec §4.4,
// picked uniformly per iteration, each returning a new candidate
// Assignment (a clone of the current one, mutated). A move that yields an
// invalid candidate (per energy.IsValidSolution) is retried with
// github.com/avast/retry-go up to Settings.MoveRetryLimit times before the
// caller falls back to the unchanged current Assignment (spec §4.4).
package neighborhood

import (
	"github.com/atc-roster/optimizer/pkg/constraints"
	"github.com/atc-roster/optimizer/pkg/domain"
	"github.com/atc-roster/optimizer/pkg/energy"
	"github.com/atc-roster/optimizer/pkg/prng"
	"github.com/avast/retry-go"
	"github.com/pkg/errors"
)

// Kind names one of the six operators, used for metrics/logging labels.
type Kind int

const (
	SwapControllersInSlot Kind = iota
	MoveBreak
	SwapPositions
	SwapTimeBlock
	FillUncoveredSectors
	SwitchPositionOnSameSector
	numKinds
)

func (k Kind) String() string {
	switch k {
	case SwapControllersInSlot:
		return "SwapControllersInSlot"
	case MoveBreak:
		return "MoveBreak"
	case SwapPositions:
		return "SwapPositions"
	case SwapTimeBlock:
		return "SwapTimeBlock"
	case FillUncoveredSectors:
		return "FillUncoveredSectors"
	case SwitchPositionOnSameSector:
		return "SwitchPositionOnSameSector"
	default:
		return "Unknown"
	}
}

// errNoMove signals a single attempt found nothing to mutate (e.g. no two
// working controllers in the chosen slot); it is retried like any other
// invalid candidate.
var errNoMove = errors.New("neighborhood: no applicable move found")

// Generator produces one candidate move from the current Assignment.
type Generator struct {
	Model   *domain.DomainModel
	Oracle  *constraints.Oracle
	Rand    prng.Source
	Retries uint
}

// New builds a Generator. retries is Settings.MoveRetryLimit (spec §4.4:
// "up to 30 times").
func New(model *domain.DomainModel, oracle *constraints.Oracle, rnd prng.Source, retries int) *Generator {
	if retries <= 0 {
		retries = 1
	}
	return &Generator{Model: model, Oracle: oracle, Rand: rnd, Retries: uint(retries)}
}

// Propose picks a move kind uniformly and applies it, retrying on an
// invalid result up to Retries times. It returns the unchanged current
// assignment (cloned, so callers always own an independent copy) if every
// attempt produced an invalid candidate.
func (g *Generator) Propose(current *domain.Assignment) (*domain.Assignment, Kind) {
	kind := Kind(g.Rand.Intn(int(numKinds)))
	var result *domain.Assignment

	err := retry.Do(
		func() error {
			candidate := g.apply(kind, current)
			if candidate == nil {
				return errNoMove
			}
			if !energy.IsValidSolution(g.Model, g.Oracle, candidate) {
				return errNoMove
			}
			result = candidate
			return nil
		},
		retry.Attempts(g.Retries),
		retry.LastErrorOnly(true),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(0),
	)
	if err != nil || result == nil {
		return current.Clone(), kind
	}
	return result, kind
}

func (g *Generator) apply(kind Kind, current *domain.Assignment) *domain.Assignment {
	switch kind {
	case SwapControllersInSlot:
		return g.swapControllersInSlot(current)
	case MoveBreak:
		return g.moveBreak(current)
	case SwapPositions:
		return g.swapPositions(current)
	case SwapTimeBlock:
		return g.swapTimeBlock(current)
	case FillUncoveredSectors:
		return g.fillUncoveredSectors(current)
	case SwitchPositionOnSameSector:
		return g.switchPositionOnSameSector(current)
	default:
		return nil
	}
}

func workingControllersInSlot(a *domain.Assignment, t int) []int {
	var out []int
	a.ForEachInSlot(t, func(c int, _ domain.Cell) { out = append(out, c) })
	return out
}

func idleEligibleControllers(model *domain.DomainModel, oracle *constraints.Oracle, a *domain.Assignment, t int) []int {
	var out []int
	for c := range model.Controllers {
		if oracle.IsIdle(a, c, t) && oracle.IsEligible(c, t) && !oracle.HasFlagS(c, t) {
			out = append(out, c)
		}
	}
	return out
}

func intMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
