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

package v1alpha1_test

import (
	"time"

	v1alpha1 "github.com/atc-roster/optimizer/api/v1alpha1"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("OptimizerInput.Validate", func() {
	var in v1alpha1.OptimizerInput

	BeforeEach(func() {
		in = v1alpha1.OptimizerInput{
			TimeSlots: []time.Time{time.Now()},
			InitialSchedule: []v1alpha1.InitialScheduleRow{
				{Sifra: "001", VremeStart: time.Now()},
			},
		}
	})

	It("accepts a minimally well-formed input", func() {
		Expect(in.Validate()).To(Succeed())
	})

	It("rejects an empty initialSchedule", func() {
		in.InitialSchedule = nil
		err := in.Validate()
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, v1alpha1.ErrInvalidInput)).To(BeTrue())
	})

	It("rejects an empty timeSlots", func() {
		in.TimeSlots = nil
		Expect(in.Validate()).To(HaveOccurred())
	})

	It("rejects a controller row missing sifra", func() {
		in.InitialSchedule[0].Sifra = ""
		Expect(in.Validate()).To(HaveOccurred())
	})

	It("rejects a controller row missing vremeStart", func() {
		in.InitialSchedule[0].VremeStart = time.Time{}
		Expect(in.Validate()).To(HaveOccurred())
	})

	It("rejects a controller row whose datumDo precedes datumOd", func() {
		in.InitialSchedule[0].DatumOd = time.Now()
		in.InitialSchedule[0].DatumDo = time.Now().Add(-time.Hour)
		Expect(in.Validate()).To(HaveOccurred())
	})

	It("rejects a configuration row with an unrecognized configType", func() {
		in.Configurations = []v1alpha1.ConfigurationRow{
			{ConfigType: "bogus", Sektor: "5", DatumOd: time.Now(), DatumDo: time.Now().Add(time.Hour)},
		}
		Expect(in.Validate()).To(HaveOccurred())
	})

	It("rejects a configuration row with datumDo before datumOd", func() {
		in.Configurations = []v1alpha1.ConfigurationRow{
			{ConfigType: v1alpha1.ConfigTypeTX, Sektor: "5", DatumOd: time.Now(), DatumDo: time.Now().Add(-time.Hour)},
		}
		Expect(in.Validate()).To(HaveOccurred())
	})

	It("rejects a configuration row missing sektor", func() {
		in.Configurations = []v1alpha1.ConfigurationRow{
			{ConfigType: v1alpha1.ConfigTypeTX, DatumOd: time.Now(), DatumDo: time.Now().Add(time.Hour)},
		}
		Expect(in.Validate()).To(HaveOccurred())
	})

	It("accumulates multiple failures instead of stopping at the first", func() {
		in.InitialSchedule[0].Sifra = ""
		in.TimeSlots = nil
		err := in.Validate()
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, v1alpha1.ErrInvalidInput)).To(BeTrue())
	})
})
