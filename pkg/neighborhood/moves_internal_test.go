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

import (
	"time"

	v1alpha1 "github.com/atc-roster/optimizer/api/v1alpha1"
	"github.com/atc-roster/optimizer/pkg/constraints"
	"github.com/atc-roster/optimizer/pkg/domain"
	"github.com/atc-roster/optimizer/pkg/prng"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func twoControllerFixture() (*domain.DomainModel, *constraints.Oracle) {
	start := time.Date(2026, 7, 30, 6, 0, 0, 0, time.UTC)
	slots := []time.Time{start, start.Add(30 * time.Minute), start.Add(time.Hour), start.Add(90 * time.Minute), start.Add(2 * time.Hour)}
	in := &v1alpha1.OptimizerInput{
		TimeSlots: slots,
		Settings:  v1alpha1.OptimizationSettings{SlotDurationMinutes: 30},
		InitialSchedule: []v1alpha1.InitialScheduleRow{
			{Sifra: "001", VremeStart: start},
			{Sifra: "002", VremeStart: start},
		},
		Configurations: []v1alpha1.ConfigurationRow{
			{ConfigType: v1alpha1.ConfigTypeTX, Konfiguracija: "K1", Sektor: "5",
				DatumOd: start, DatumDo: start.Add(3 * time.Hour)},
		},
	}
	model, err := domain.New(in)
	Expect(err).NotTo(HaveOccurred())
	return model, constraints.New(model)
}

var _ = Describe("swapControllersInSlot", func() {
	It("exchanges two working controllers' cells, whichever slot is chosen", func() {
		model, oracle := twoControllerFixture()
		base := model.InternSector("5")
		a := model.NewAssignment()
		for t := 0; t < len(model.Slots); t++ {
			a.Set(0, t, domain.Working(domain.SectorPosition{BaseID: base, Position: 'E'}))
			a.Set(1, t, domain.Working(domain.SectorPosition{BaseID: base, Position: 'P'}))
		}

		seed := int64(1)
		g := &Generator{Model: model, Oracle: oracle, Rand: prng.New(&seed)}
		cand := g.swapControllersInSlot(a)
		Expect(cand).NotTo(BeNil())

		// whichever slot was picked, the two controllers' cells are now swapped
		swapped := false
		for t := 0; t < len(model.Slots); t++ {
			if cand.At(0, t) != a.At(0, t) {
				Expect(cand.At(0, t)).To(Equal(a.At(1, t)))
				Expect(cand.At(1, t)).To(Equal(a.At(0, t)))
				swapped = true
			}
		}
		Expect(swapped).To(BeTrue())
	})

	It("returns nil when fewer than two controllers work the chosen slot", func() {
		model, oracle := twoControllerFixture()
		a := model.NewAssignment()
		seed := int64(1)
		g := &Generator{Model: model, Oracle: oracle, Rand: prng.New(&seed)}
		Expect(g.swapControllersInSlot(a)).To(BeNil())
	})
})

var _ = Describe("moveBreak", func() {
	It("relocates a break run and restores the vacated cells from an adjacent sector", func() {
		model, oracle := twoControllerFixture()
		base := model.InternSector("5")
		a := model.NewAssignment()
		sp := domain.SectorPosition{BaseID: base, Position: 'E'}
		// controller 0 works every slot except a break at slot 2
		for t := 0; t < len(model.Slots); t++ {
			if t == 2 {
				continue
			}
			a.Set(0, t, domain.Working(sp))
		}

		seed := int64(1)
		g := &Generator{Model: model, Oracle: oracle, Rand: prng.New(&seed)}
		var cand *domain.Assignment
		for i := 0; i < 50 && cand == nil; i++ {
			cand = g.moveBreak(a)
		}
		Expect(cand).NotTo(BeNil())
		// the vacated break slot is now filled from an adjacent sector
		Expect(cand.At(0, 2).Break).To(BeFalse())
	})

	It("returns nil for a controller with no break run at all", func() {
		model, oracle := twoControllerFixture()
		base := model.InternSector("5")
		a := model.NewAssignment()
		sp := domain.SectorPosition{BaseID: base, Position: 'E'}
		for t := 0; t < len(model.Slots); t++ {
			a.Set(0, t, domain.Working(sp))
			a.Set(1, t, domain.Working(sp))
		}
		seed := int64(1)
		g := &Generator{Model: model, Oracle: oracle, Rand: prng.New(&seed)}
		Expect(g.moveBreak(a)).To(BeNil())
	})
})

var _ = Describe("swapPositions", func() {
	It("swaps the E/P letters of a same-base pair without breaking continuity", func() {
		model, oracle := twoControllerFixture()
		base := model.InternSector("5")
		a := model.NewAssignment()
		for t := 0; t < len(model.Slots); t++ {
			a.Set(0, t, domain.Working(domain.SectorPosition{BaseID: base, Position: 'E'}))
			a.Set(1, t, domain.Working(domain.SectorPosition{BaseID: base, Position: 'P'}))
		}

		seed := int64(1)
		g := &Generator{Model: model, Oracle: oracle, Rand: prng.New(&seed)}
		cand := g.swapPositions(a)
		Expect(cand).NotTo(BeNil())

		flipped := false
		for t := 0; t < len(model.Slots); t++ {
			if cand.At(0, t).Sector.Position != a.At(0, t).Sector.Position {
				Expect(cand.At(0, t).Sector.Position).To(Equal(byte('P')))
				Expect(cand.At(1, t).Sector.Position).To(Equal(byte('E')))
				flipped = true
			}
		}
		Expect(flipped).To(BeTrue())
	})
})

var _ = Describe("switchPositionOnSameSector", func() {
	It("flips a single slot's position within a same-sector run", func() {
		model, oracle := twoControllerFixture()
		base := model.InternSector("5")
		a := model.NewAssignment()
		for t := 0; t < len(model.Slots); t++ {
			a.Set(0, t, domain.Working(domain.SectorPosition{BaseID: base, Position: 'E'}))
			a.Set(1, t, domain.Working(domain.SectorPosition{BaseID: base, Position: 'P'}))
		}
		seed := int64(1)
		g := &Generator{Model: model, Oracle: oracle, Rand: prng.New(&seed)}
		cand := g.switchPositionOnSameSector(a)
		Expect(cand).NotTo(BeNil())

		flips := 0
		for c := 0; c < 2; c++ {
			for t := 0; t < len(model.Slots); t++ {
				if cand.At(c, t).Sector.Position != a.At(c, t).Sector.Position {
					flips++
				}
			}
		}
		Expect(flips).To(Equal(1))
	})
})

var _ = Describe("fillUncoveredSectors", func() {
	It("fills an uncovered slot from the idle pool", func() {
		model, oracle := twoControllerFixture()
		a := model.NewAssignment()
		seed := int64(1)
		g := &Generator{Model: model, Oracle: oracle, Rand: prng.New(&seed)}
		cand := g.fillUncoveredSectors(a)
		Expect(cand).NotTo(BeNil())

		anyFilled := false
		for t := 0; t < len(model.Slots); t++ {
			if len(oracle.UncoveredPositions(cand, t)) < len(oracle.UncoveredPositions(a, t)) {
				anyFilled = true
			}
		}
		Expect(anyFilled).To(BeTrue())
	})

	It("returns nil when nothing is uncovered", func() {
		model, oracle := twoControllerFixture()
		base := model.InternSector("5")
		a := model.NewAssignment()
		a.Set(0, 0, domain.Working(domain.SectorPosition{BaseID: base, Position: 'E'}))
		a.Set(1, 0, domain.Working(domain.SectorPosition{BaseID: base, Position: 'P'}))
		for t := 1; t < len(model.Slots); t++ {
			a.Set(0, t, domain.Working(domain.SectorPosition{BaseID: base, Position: 'E'}))
			a.Set(1, t, domain.Working(domain.SectorPosition{BaseID: base, Position: 'P'}))
		}
		seed := int64(1)
		g := &Generator{Model: model, Oracle: oracle, Rand: prng.New(&seed)}
		// every slot is fully covered, so every attempt is a nil no-op
		for i := 0; i < 10; i++ {
			Expect(g.fillUncoveredSectors(a)).To(BeNil())
		}
	})
})

var _ = Describe("sameSectorRuns", func() {
	It("splits runs at both breaks and sector-base changes", func() {
		model, _ := twoControllerFixture()
		a := model.NewAssignment()
		base5 := model.InternSector("5")
		base6 := model.InternSector("6")
		a.Set(0, 0, domain.Working(domain.SectorPosition{BaseID: base5, Position: 'E'}))
		a.Set(0, 1, domain.Working(domain.SectorPosition{BaseID: base5, Position: 'E'}))
		// slot 2 left on break
		a.Set(0, 3, domain.Working(domain.SectorPosition{BaseID: base6, Position: 'E'}))

		runs := sameSectorRuns(a, 0)
		Expect(runs).To(Equal([][2]int{{0, 2}, {3, 4}}))
	})
})
