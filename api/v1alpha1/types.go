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

// Package v1alpha1 defines the wire contract for a single optimizer run:
// the tabular rows a DataSource would hand the optimizer, the recognized
// run options, and the OptimizationResponse returned to a RosterService.
package v1alpha1

import "time"

// ConfigType distinguishes the two independent requirement families that
// can declare active sector-positions for a time window.
type ConfigType string

const (
	ConfigTypeTX ConfigType = "TX"
	ConfigTypeLU ConfigType = "LU"
)

// ShiftType is a controller's personal shift metadata, which drives
// end-of-shift eligibility rules (spec Invariant 2).
type ShiftType string

const (
	ShiftJ     ShiftType = "J"
	ShiftM     ShiftType = "M"
	ShiftOther ShiftType = "other"
)

// BreakSector is the reserved sentinel sector-position meaning "break".
const BreakSector = "111"

// Position is the E/P suffix of a SectorPosition.
type Position byte

const (
	PositionExecutive Position = 'E'
	PositionPlanner   Position = 'P'
)

// ConfigurationRow is one row of the `configurations` table: a time-bounded
// declaration that a sector is active under a named TX/LU configuration.
type ConfigurationRow struct {
	DatumOd       time.Time  `json:"datumOd"`
	DatumDo       time.Time  `json:"datumDo"`
	ConfigType    ConfigType `json:"configType"`
	Konfiguracija string     `json:"konfiguracija"`
	Sektor        string     `json:"sektor"`
}

// InitialScheduleRow is one row of the `initialSchedule` table: personal
// shift metadata and a Flag-S style restriction for one controller.
type InitialScheduleRow struct {
	Sifra      string    `json:"sifra"`
	PrezimeIme string    `json:"prezimeIme"`
	Smena      ShiftType `json:"smena"`
	ORM        string    `json:"orm"` // operative workplace tag: SS, SUP, regular, ...
	Redosled   int       `json:"redosled"`
	Par        string    `json:"par"`
	Datum      time.Time `json:"datum"`
	VremeStart time.Time `json:"vremeStart"`
	DatumOd    time.Time `json:"datumOd"`
	DatumDo    time.Time `json:"datumDo"`
	Sektor     string    `json:"sektor"`
	Flag       string    `json:"flag"` // non-empty (e.g. "S") marks the [datumOd,datumDo) window restricted
}

// OptimizationSettings holds the one configuration knob the spec names
// explicitly (slot duration) plus the annealing constants, which are
// contractually fixed but remain overridable for tests/tuning.
type OptimizationSettings struct {
	SlotDurationMinutes int `json:"slotDurationMinutes"`

	InitialTemperature float64 `json:"initialTemperature"`
	CoolingFactor      float64 `json:"coolingFactor"`
	OuterIterationCap  int     `json:"outerIterationCap"`
	InnerIterations    int     `json:"innerIterations"`
	MinTemperature     float64 `json:"minTemperature"`
	StallLimit         int     `json:"stallLimit"`
	MoveRetryLimit     int     `json:"moveRetryLimit"`
}

// OptimizerInput is the single-call envelope described in spec §6.
type OptimizerInput struct {
	Smena                       string        `json:"smena"`
	Datum                       time.Time     `json:"datum"`
	MaxExecTime                 time.Duration `json:"maxExecTime"`
	MaxOptimalSolutions         *int          `json:"maxOptimalSolutions,omitempty"`
	MaxZeroShortageSlots        *int          `json:"maxZeroShortageSlots,omitempty"`
	UseLNS                      bool          `json:"useLNS"`
	UseSimulatedAnnealing       bool          `json:"useSimulatedAnnealing"`
	UseManualAssignments        bool          `json:"useManualAssignments"`
	RandomSeed                  *int64        `json:"randomSeed,omitempty"`
	UseRandomization            bool          `json:"useRandomization"`
	SelectedOperativeWorkplaces []string      `json:"selectedOperativeWorkplaces,omitempty"`
	SelectedEmployees           []string      `json:"selectedEmployees,omitempty"`

	Configurations  []ConfigurationRow   `json:"configurations"`
	InitialSchedule []InitialScheduleRow `json:"initialSchedule"`
	TimeSlots       []time.Time          `json:"timeSlots"`

	Settings OptimizationSettings `json:"settings"`
}

// OptimizedResult is one record per (controller, slot) within the
// controller's shift window, per spec §4.8.
type OptimizedResult struct {
	Sifra     string    `json:"sifra"`
	SlotStart time.Time `json:"slotStart"`
	SlotEnd   time.Time `json:"slotEnd"`
	Sector    *string   `json:"sector"` // nil for a break cell
}

// SlotShortage records the number of required-but-unfilled sector-positions
// for one slot.
type SlotShortage struct {
	SlotKey  string `json:"slotKey"`
	Shortage int    `json:"shortage"`
}

// Statistics is the §4.8 statistics block.
type Statistics struct {
	SuccessRate              float64 `json:"successRate"`
	SlotsWithShortage        int     `json:"slotsWithShortage"`
	SlotsWithExcess          int     `json:"slotsWithExcess"`
	MaxMinWorkloadGapHours   float64 `json:"maxMinWorkloadGapHours"`
	BreakCompliance          float64 `json:"breakCompliance"`
	RotationCompliance       float64 `json:"rotationCompliance"`
	UnderUtilizedControllers int     `json:"underUtilizedControllers"`
	MissingExecutorPeak      int     `json:"missingExecutorPeak"`

	// InvariantOneViolations counts cells where EnsureAllControllersAssigned
	// took the documented last-resort deviation from Invariant 1 (spec §4.7
	// item 3, open question in spec §9 — surfaced here, see DESIGN.md).
	InvariantOneViolations int `json:"invariantOneViolations"`

	SolutionStatus string `json:"solutionStatus"` // "Optimal" | "Feasible" | "Error"
}

// OptimizationResponse is the full §6 output contract.
type OptimizationResponse struct {
	RunID               string            `json:"runId"`
	OptimizedResults    []OptimizedResult `json:"optimizedResults"`
	NonOptimizedResults []OptimizedResult `json:"nonOptimizedResults"`
	AllResults          []OptimizedResult `json:"allResults"`
	InitialAssignments  []OptimizedResult `json:"initialAssignments"`
	ConfigurationLabels map[string]string `json:"configurationLabels"`
	SlotShortages       []SlotShortage    `json:"slotShortages"`
	Statistics          Statistics        `json:"statistics"`
}
