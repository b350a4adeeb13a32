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

import "github.com/atc-roster/optimizer/pkg/domain"

// maxBlockSwapLength is the spec §4.4 move 4 upper bound ("1 ≤ L ≤ 3").
const maxBlockSwapLength = 3

// swapTimeBlock implements spec §4.4 move 4: swap a contiguous window of
// assignments (any mix of working/break cells) between two distinct
// controllers, requiring both to be eligible throughout the window.
func (g *Generator) swapTimeBlock(current *domain.Assignment) *domain.Assignment {
	nControllers := len(g.Model.Controllers)
	if nControllers < 2 {
		return nil
	}
	c1 := g.Rand.Intn(nControllers)
	c2 := g.Rand.Intn(nControllers)
	if c1 == c2 {
		return nil
	}

	nSlots := current.NumSlots()
	length := intMin(1+g.Rand.Intn(maxBlockSwapLength), nSlots)
	if length <= 0 {
		return nil
	}
	start := g.Rand.Intn(nSlots - length + 1)

	for t := start; t < start+length; t++ {
		if !g.Oracle.IsEligible(c1, t) || !g.Oracle.IsEligible(c2, t) {
			return nil
		}
	}

	cand := current.Clone()
	for t := start; t < start+length; t++ {
		cell1, cell2 := cand.At(c1, t), cand.At(c2, t)
		cand.Set(c1, t, cell2)
		cand.Set(c2, t, cell1)
	}
	return cand
}
