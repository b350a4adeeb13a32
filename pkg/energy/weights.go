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

package energy

// Weights, per spec §4.3. Order of magnitude matters for Metropolis
// acceptance behavior, so these are named constants rather than a
// computed table — the table in §4.3 is the authoritative spec, and this
// file reproduces it exactly (see DESIGN.md: "accidental double counting"
// open question resolved by *not* reproducing it).
const (
	WeightDuplicateSector       = 1e6
	WeightUncoveredPosition     = 1e4
	WeightSectorChangeNoBreak   = 1e5
	WeightBlockTooShort         = 1e3
	WeightBlockTooLongPerSlot   = 1e2
	WeightStabilityRewardPerTwo = -50
	WeightEligibilityViolation  = 1e6
	WeightStartTimeViolation    = 1e6
	WeightFlagSViolation        = 1e6
	WeightSSAndSUPSameSlot      = 5e5
	WeightSSWorking             = 1e2
	WeightUtilizationReward     = -2000
)
