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

package domain_test

import (
	"time"

	v1alpha1 "github.com/atc-roster/optimizer/api/v1alpha1"
	"github.com/atc-roster/optimizer/pkg/domain"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("sector interning", func() {
	It("round-trips a sector-position through FormatSectorPosition", func() {
		base := time.Date(2026, 7, 30, 6, 0, 0, 0, time.UTC)
		in := &v1alpha1.OptimizerInput{
			TimeSlots: []time.Time{base},
			Settings:  v1alpha1.OptimizationSettings{SlotDurationMinutes: 30},
			InitialSchedule: []v1alpha1.InitialScheduleRow{
				{Sifra: "001", VremeStart: base},
			},
			Configurations: []v1alpha1.ConfigurationRow{
				{ConfigType: v1alpha1.ConfigTypeTX, Konfiguracija: "K1", Sektor: "5",
					DatumOd: base.Add(-time.Hour), DatumDo: base.Add(time.Hour)},
			},
		}
		model, err := domain.New(in)
		Expect(err).NotTo(HaveOccurred())

		positions := model.ReqPositions(0)
		Expect(positions).To(ContainElement(domain.SectorPosition{BaseID: model.InternSector("5"), Position: 'E'}))
		Expect(model.FormatSectorPosition(domain.SectorPosition{BaseID: model.InternSector("5"), Position: 'E'})).To(Equal("5E"))
	})

	It("interns the same base string to the same ID every time", func() {
		base := time.Date(2026, 7, 30, 6, 0, 0, 0, time.UTC)
		in := &v1alpha1.OptimizerInput{
			TimeSlots: []time.Time{base},
			Settings:  v1alpha1.OptimizationSettings{SlotDurationMinutes: 30},
			InitialSchedule: []v1alpha1.InitialScheduleRow{
				{Sifra: "001", VremeStart: base},
			},
		}
		model, err := domain.New(in)
		Expect(err).NotTo(HaveOccurred())

		first := model.InternSector("5")
		second := model.InternSector("5")
		Expect(second).To(Equal(first))
		Expect(model.InternSector("6")).NotTo(Equal(first))
	})
})
