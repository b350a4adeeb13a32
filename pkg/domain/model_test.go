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

func baseInput() v1alpha1.OptimizerInput {
	start := time.Date(2026, 7, 30, 6, 0, 0, 0, time.UTC)
	slots := []time.Time{start, start.Add(30 * time.Minute), start.Add(time.Hour), start.Add(90 * time.Minute)}
	return v1alpha1.OptimizerInput{
		TimeSlots: slots,
		Settings:  v1alpha1.OptimizationSettings{SlotDurationMinutes: 30},
		InitialSchedule: []v1alpha1.InitialScheduleRow{
			{Sifra: "001", Smena: v1alpha1.ShiftJ, ORM: "regular", VremeStart: start},
			{Sifra: "002", Smena: v1alpha1.ShiftJ, ORM: "regular", VremeStart: start},
		},
		Configurations: []v1alpha1.ConfigurationRow{
			{ConfigType: v1alpha1.ConfigTypeTX, Konfiguracija: "K1", Sektor: "5",
				DatumOd: start, DatumDo: start.Add(2 * time.Hour)},
		},
	}
}

var _ = Describe("DomainModel construction", func() {
	It("builds one slot per timestamp and one controller per distinct sifra", func() {
		in := baseInput()
		model, err := domain.New(&in)
		Expect(err).NotTo(HaveOccurred())
		Expect(model.Slots).To(HaveLen(4))
		Expect(model.Controllers).To(HaveLen(2))
	})

	It("fails with ErrInvalidInput when required columns are missing", func() {
		in := v1alpha1.OptimizerInput{}
		_, err := domain.New(&in)
		Expect(err).To(HaveOccurred())
	})

	It("filters controllers by selectedEmployees", func() {
		in := baseInput()
		in.SelectedEmployees = []string{"001"}
		model, err := domain.New(&in)
		Expect(err).NotTo(HaveOccurred())
		Expect(model.Controllers).To(HaveLen(1))
		Expect(model.Controllers[0].Sifra).To(Equal("001"))
	})

	It("fails when every controller is filtered out", func() {
		in := baseInput()
		in.SelectedEmployees = []string{"does-not-exist"}
		_, err := domain.New(&in)
		Expect(err).To(HaveOccurred())
	})

	It("materializes Req(t) as every active sector's (E,P) pair", func() {
		in := baseInput()
		model, err := domain.New(&in)
		Expect(err).NotTo(HaveOccurred())
		Expect(model.ReqPositions(0)).To(HaveLen(2))
	})

	It("collects Flag-S intervals only for rows with Flag \"S\"", func() {
		in := baseInput()
		start := in.TimeSlots[0]
		in.InitialSchedule = append(in.InitialSchedule, v1alpha1.InitialScheduleRow{
			Sifra: "001", VremeStart: start, Flag: "S",
			DatumOd: start.Add(30 * time.Minute), DatumDo: start.Add(time.Hour),
		})
		model, err := domain.New(&in)
		Expect(err).NotTo(HaveOccurred())
		Expect(model.Controllers[0].FlagSIntervals).To(HaveLen(1))
		Expect(model.Controllers[1].FlagSIntervals).To(BeEmpty())
	})

	It("SlotIndexAtOrAfter finds the first slot at or after a timestamp", func() {
		in := baseInput()
		model, err := domain.New(&in)
		Expect(err).NotTo(HaveOccurred())
		Expect(model.SlotIndexAtOrAfter(in.TimeSlots[2])).To(Equal(2))
		Expect(model.SlotIndexAtOrAfter(in.TimeSlots[3].Add(time.Minute))).To(Equal(4))
	})

	It("seeds manual assignments only when UseManualAssignments is set", func() {
		in := baseInput()
		start := in.TimeSlots[0]
		in.InitialSchedule[0].Sektor = "5"
		in.InitialSchedule[0].DatumOd = start
		in.InitialSchedule[0].DatumDo = start.Add(30 * time.Minute)

		without, err := domain.New(&in)
		Expect(err).NotTo(HaveOccurred())
		Expect(without.ManualSeed(0, 0)).To(Equal(""))

		in.UseManualAssignments = true
		with, err := domain.New(&in)
		Expect(err).NotTo(HaveOccurred())
		Expect(with.ManualSeed(0, 0)).To(Equal("5"))
	})
})
