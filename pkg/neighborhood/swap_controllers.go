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

// swapControllersInSlot implements spec §4.4 move 1: pick a random slot,
// pick two distinct working controllers in it who are both eligible, and
// exchange their cell values.
func (g *Generator) swapControllersInSlot(current *domain.Assignment) *domain.Assignment {
	t := g.Rand.Intn(current.NumSlots())
	working := workingControllersInSlot(current, t)
	if len(working) < 2 {
		return nil
	}

	i := g.Rand.Intn(len(working))
	j := g.Rand.Intn(len(working) - 1)
	if j >= i {
		j++
	}
	c1, c2 := working[i], working[j]
	if !g.Oracle.IsEligible(c1, t) || !g.Oracle.IsEligible(c2, t) {
		return nil
	}

	cand := current.Clone()
	cell1, cell2 := cand.At(c1, t), cand.At(c2, t)
	cand.Set(c1, t, cell2)
	cand.Set(c2, t, cell1)
	return cand
}
