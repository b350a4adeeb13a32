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

package repair

import "github.com/atc-roster/optimizer/pkg/domain"

// EnforceBreakRules implements spec §4.7 pass 4: per controller, after 4
// consecutive work slots, force the next 2 slots (if still within the
// shift) onto a break.
func EnforceBreakRules(a *domain.Assignment) *domain.Assignment {
	for c := 0; c < a.NumControllers(); c++ {
		run := 0
		for t := 0; t < a.NumSlots(); t++ {
			if a.At(c, t).Break {
				run = 0
				continue
			}
			run++
			if run == 4 {
				for k := 1; k <= 2 && t+k < a.NumSlots(); k++ {
					a.Clear(c, t+k)
				}
				run = 0
				t += 2
			}
		}
	}
	return a
}
