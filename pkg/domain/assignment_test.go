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
	"testing"

	"github.com/atc-roster/optimizer/pkg/domain"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDomain(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "pkg/domain")
}

var _ = Describe("Assignment", func() {
	It("starts every cell on break", func() {
		a := domain.NewAssignment(2, 3)
		for c := 0; c < 2; c++ {
			for t := 0; t < 3; t++ {
				Expect(a.At(c, t).Break).To(BeTrue())
			}
		}
	})

	It("round-trips Set/At", func() {
		a := domain.NewAssignment(1, 1)
		sp := domain.SectorPosition{BaseID: 7, Position: 'E'}
		a.Set(0, 0, domain.Working(sp))
		Expect(a.At(0, 0)).To(Equal(domain.Working(sp)))
	})

	It("Clear resets a cell to the canonical break cell", func() {
		a := domain.NewAssignment(1, 1)
		a.Set(0, 0, domain.Working(domain.SectorPosition{BaseID: 1, Position: 'P'}))
		a.Clear(0, 0)
		Expect(a.At(0, 0)).To(Equal(domain.BreakCell))
	})

	It("Clone is independent of its source", func() {
		a := domain.NewAssignment(1, 1)
		cp := a.Clone()
		cp.Set(0, 0, domain.Working(domain.SectorPosition{BaseID: 3, Position: 'E'}))
		Expect(a.At(0, 0).Break).To(BeTrue())
		Expect(cp.At(0, 0).Break).To(BeFalse())
	})

	It("CopyFrom overwrites in place without reallocating", func() {
		a := domain.NewAssignment(1, 2)
		src := domain.NewAssignment(1, 2)
		src.Set(0, 1, domain.Working(domain.SectorPosition{BaseID: 9, Position: 'E'}))
		a.CopyFrom(src)
		Expect(a.At(0, 1)).To(Equal(src.At(0, 1)))
	})

	It("ForEachInSlot visits only working controllers", func() {
		a := domain.NewAssignment(3, 1)
		a.Set(0, 0, domain.Working(domain.SectorPosition{BaseID: 1, Position: 'E'}))
		a.Set(2, 0, domain.Working(domain.SectorPosition{BaseID: 2, Position: 'P'}))

		var seen []int
		a.ForEachInSlot(0, func(c int, _ domain.Cell) { seen = append(seen, c) })
		Expect(seen).To(ConsistOf(0, 2))
	})

	Describe("WorkBlocks", func() {
		It("reports no blocks for an all-break row", func() {
			a := domain.NewAssignment(1, 4)
			Expect(a.WorkBlocks(0)).To(BeEmpty())
		})

		It("reports one block spanning the full row", func() {
			a := domain.NewAssignment(1, 4)
			sp := domain.SectorPosition{BaseID: 1, Position: 'E'}
			for t := 0; t < 4; t++ {
				a.Set(0, t, domain.Working(sp))
			}
			Expect(a.WorkBlocks(0)).To(Equal([][2]int{{0, 4}}))
		})

		It("splits blocks across an interior break", func() {
			a := domain.NewAssignment(1, 5)
			sp := domain.SectorPosition{BaseID: 1, Position: 'E'}
			a.Set(0, 0, domain.Working(sp))
			a.Set(0, 1, domain.Working(sp))
			// slot 2 left on break
			a.Set(0, 3, domain.Working(sp))
			a.Set(0, 4, domain.Working(sp))
			Expect(a.WorkBlocks(0)).To(Equal([][2]int{{0, 2}, {3, 5}}))
		})

		It("closes a block still open at the end of the row", func() {
			a := domain.NewAssignment(1, 3)
			sp := domain.SectorPosition{BaseID: 1, Position: 'E'}
			a.Set(0, 1, domain.Working(sp))
			a.Set(0, 2, domain.Working(sp))
			Expect(a.WorkBlocks(0)).To(Equal([][2]int{{1, 3}}))
		})
	})
})
