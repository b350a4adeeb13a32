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

// Package domain holds the DomainModel component (spec §4.1): controllers
// indexed 0..|C|-1, precomputed per-controller (start, shiftType), the
// set of Flag-S intervals per controller, and a slot-indexed
// materialization of Req(t) and SectorsByTime. Construction fails with
// api.ErrInvalidInput if any required column is missing, matching the
// spec's InvalidInput error kind (§7).
package domain

import (
	"sort"
	"time"

	v1alpha1 "github.com/atc-roster/optimizer/api/v1alpha1"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Interval is a half-open time window [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Controller is the interned, typed form of spec §3's Controller (C).
type Controller struct {
	Sifra          string
	Index          int
	Shift          v1alpha1.ShiftType
	VremeStart     time.Time
	Tag            string // operative workplace tag: SS, SUP, regular, ...
	FlagSIntervals []Interval
}

// TimeSlot is one ordered half-open interval of the shift (spec §3).
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// Key renders the stable "yyyy-MM-dd HH:mm:ss|yyyy-MM-dd HH:mm:ss" slot key
// used throughout ResultAssembler (spec §4.8).
func (s TimeSlot) Key() string {
	const layout = "2006-01-02 15:04:05"
	return s.Start.Format(layout) + "|" + s.End.Format(layout)
}

// ConfigLabel is the per-slot "TX:<code> | LU:<code>" composed label.
type ConfigLabel struct {
	TX string
	LU string
}

func (l ConfigLabel) String() string {
	return "TX:" + l.TX + " | LU:" + l.LU
}

// DomainModel is the read-only, immutable-after-construction model shared
// freely across the search (spec §5 "Shared resources").
type DomainModel struct {
	Controllers []Controller
	Slots       []TimeSlot

	interner *sectorInterner

	// reqPositions[t] is the sorted, deduplicated set of required
	// sector-positions for slot t (spec §3 "Configuration requirement").
	reqPositions [][]SectorPosition
	// reqBases[t] is the set of sector bases appearing in reqPositions[t],
	// used by the looser "valid sector" check of Invariant 4.
	reqBases []map[int32]struct{}
	// configLabels[t] is the composed TX/LU label for slot t.
	configLabels []ConfigLabel

	// manualSector[c][t], populated only when UseManualAssignments is set,
	// carries the pre-existing Sektor value from the initialSchedule row
	// whose window covers slot t, for InitialBuilder to seed from.
	manualSector [][]string
}

// New builds the DomainModel from one OptimizerInput, applying the
// selection filters (selectedEmployees / selectedOperativeWorkplaces) and
// the slot duration from Settings.
func New(in *v1alpha1.OptimizerInput) (*DomainModel, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	slots := buildSlots(in.TimeSlots, time.Duration(in.Settings.SlotDurationMinutes)*time.Minute)
	if len(slots) == 0 {
		return nil, errors.Wrap(v1alpha1.ErrInvalidInput, "no time slots derived from input")
	}

	dm := &DomainModel{
		Slots:    slots,
		interner: newSectorInterner(),
	}

	if err := dm.buildControllers(in); err != nil {
		return nil, err
	}
	dm.buildRequirements(in)
	dm.buildManualSeeds(in)

	if len(dm.Controllers) == 0 {
		return nil, errors.Wrap(v1alpha1.ErrInvalidInput, "no controllers remain after selection filters")
	}

	return dm, nil
}

func buildSlots(timeSlots []time.Time, delta time.Duration) []TimeSlot {
	slots := make([]TimeSlot, 0, len(timeSlots))
	for _, start := range timeSlots {
		slots = append(slots, TimeSlot{Start: start, End: start.Add(delta)})
	}
	return slots
}

func (dm *DomainModel) buildControllers(in *v1alpha1.OptimizerInput) error {
	employeeFilter := toSet(in.SelectedEmployees)
	workplaceFilter := toSet(in.SelectedOperativeWorkplaces)

	rowsBySifra := lo.GroupBy(in.InitialSchedule, func(r v1alpha1.InitialScheduleRow) string { return r.Sifra })

	// Preserve first-appearance order so results are deterministic across
	// runs for identical input, independent of map iteration order.
	var order []string
	seen := map[string]bool{}
	for _, r := range in.InitialSchedule {
		if !seen[r.Sifra] {
			seen[r.Sifra] = true
			order = append(order, r.Sifra)
		}
	}

	for _, sifra := range order {
		rows := rowsBySifra[sifra]
		if len(employeeFilter) > 0 && !employeeFilter[sifra] {
			continue
		}
		head := rows[0]
		if len(workplaceFilter) > 0 && !workplaceFilter[head.ORM] {
			continue
		}
		if head.VremeStart.IsZero() {
			return errors.Wrapf(v1alpha1.ErrInvalidInput, "controller %s: missing vremeStart", sifra)
		}

		c := Controller{
			Sifra:      sifra,
			Index:      len(dm.Controllers),
			Shift:      head.Smena,
			VremeStart: head.VremeStart,
			Tag:        head.ORM,
		}
		for _, r := range rows {
			if r.Flag == "S" && !r.DatumOd.IsZero() && !r.DatumDo.IsZero() {
				c.FlagSIntervals = append(c.FlagSIntervals, Interval{Start: r.DatumOd, End: r.DatumDo})
			}
		}
		sort.Slice(c.FlagSIntervals, func(i, j int) bool {
			return c.FlagSIntervals[i].Start.Before(c.FlagSIntervals[j].Start)
		})
		dm.Controllers = append(dm.Controllers, c)
	}
	return nil
}

func (dm *DomainModel) buildRequirements(in *v1alpha1.OptimizerInput) {
	n := len(dm.Slots)
	dm.reqPositions = make([][]SectorPosition, n)
	dm.reqBases = make([]map[int32]struct{}, n)
	dm.configLabels = make([]ConfigLabel, n)

	for t, slot := range dm.Slots {
		baseSet := map[int32]struct{}{}
		var txCodes, luCodes []string
		for _, row := range in.Configurations {
			if row.DatumDo.Before(row.DatumOd) {
				continue
			}
			if slot.Start.Before(row.DatumOd) || !slot.Start.Before(row.DatumDo) {
				continue
			}
			id := dm.interner.intern(row.Sektor)
			baseSet[id] = struct{}{}
			switch row.ConfigType {
			case v1alpha1.ConfigTypeTX:
				txCodes = append(txCodes, row.Konfiguracija)
			case v1alpha1.ConfigTypeLU:
				luCodes = append(luCodes, row.Konfiguracija)
			}
		}

		ids := make([]int32, 0, len(baseSet))
		for id := range baseSet {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		positions := make([]SectorPosition, 0, 2*len(ids))
		for _, id := range ids {
			positions = append(positions, SectorPosition{BaseID: id, Position: byte(v1alpha1.PositionExecutive)})
			positions = append(positions, SectorPosition{BaseID: id, Position: byte(v1alpha1.PositionPlanner)})
		}

		dm.reqPositions[t] = positions
		dm.reqBases[t] = baseSet
		dm.configLabels[t] = ConfigLabel{TX: joinUnique(txCodes), LU: joinUnique(luCodes)}
	}
}

func (dm *DomainModel) buildManualSeeds(in *v1alpha1.OptimizerInput) {
	if !in.UseManualAssignments {
		return
	}
	dm.manualSector = make([][]string, len(dm.Controllers))
	rowsBySifra := lo.GroupBy(in.InitialSchedule, func(r v1alpha1.InitialScheduleRow) string { return r.Sifra })
	for _, c := range dm.Controllers {
		seeds := make([]string, len(dm.Slots))
		for _, row := range rowsBySifra[c.Sifra] {
			if row.Sektor == "" || row.DatumOd.IsZero() || row.DatumDo.IsZero() {
				continue
			}
			for t, slot := range dm.Slots {
				if !slot.Start.Before(row.DatumOd) && slot.Start.Before(row.DatumDo) {
					seeds[t] = row.Sektor
				}
			}
		}
		dm.manualSector[c.Index] = seeds
	}
}

func joinUnique(codes []string) string {
	uniq := lo.Uniq(codes)
	sort.Strings(uniq)
	out := ""
	for i, c := range uniq {
		if i > 0 {
			out += ","
		}
		out += c
	}
	return out
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	out := make(map[string]bool, len(items))
	for _, it := range items {
		out[it] = true
	}
	return out
}

// ReqPositions returns the required sector-positions for slot t.
func (dm *DomainModel) ReqPositions(t int) []SectorPosition { return dm.reqPositions[t] }

// ReqBaseIDs returns the set of required sector-base IDs for slot t, used
// by the "valid sector" check (Invariant 4).
func (dm *DomainModel) ReqBaseIDs(t int) map[int32]struct{} { return dm.reqBases[t] }

// ConfigLabel returns the composed TX/LU label for slot t.
func (dm *DomainModel) ConfigLabel(t int) ConfigLabel { return dm.configLabels[t] }

// ManualSeed returns the manually-recorded sector string for (c, t), or ""
// if none was recorded (only populated when UseManualAssignments was set).
func (dm *DomainModel) ManualSeed(c, t int) string {
	if dm.manualSector == nil {
		return ""
	}
	return dm.manualSector[c][t]
}

// SectorName resolves an interned sector-base ID back to its wire string.
func (dm *DomainModel) SectorName(id int32) string { return dm.interner.name(id) }

// InternSector interns (or looks up) a sector-base string, exposed so
// RepairPasses/NeighborhoodOps can construct SectorPosition values from
// wire strings (e.g. a manual seed) without reaching into the interner
// directly.
func (dm *DomainModel) InternSector(base string) int32 { return dm.interner.intern(base) }

// FormatSectorPosition renders a SectorPosition back to its wire string.
func (dm *DomainModel) FormatSectorPosition(sp SectorPosition) string { return dm.interner.Format(sp) }

// SlotIndexAtOrAfter returns the smallest slot index whose start is >= t,
// or len(Slots) if none. Slots are always chronologically ordered (spec §3
// "ordered sequence of half-open intervals").
func (dm *DomainModel) SlotIndexAtOrAfter(t time.Time) int {
	for i, slot := range dm.Slots {
		if !slot.Start.Before(t) {
			return i
		}
	}
	return len(dm.Slots)
}

// NewAssignment allocates a fresh, all-break assignment sized for this model.
func (dm *DomainModel) NewAssignment() *Assignment {
	return NewAssignment(len(dm.Controllers), len(dm.Slots))
}
