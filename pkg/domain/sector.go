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

package domain

import "fmt"

// SectorPosition is the interned form of a "<sector-base><position>" string
// (spec §3 "SectorPosition (S)"). BaseID indexes into DomainModel's interned
// base-name table; Position is 'E' or 'P'.
type SectorPosition struct {
	BaseID   int32
	Position byte
}

// sectorInterner assigns small, stable integer IDs to sector-base strings
// so equality and cloning over Assignment stay cheap (spec §9 "Replacing
// cell-addressed dense 3-D storage").
type sectorInterner struct {
	idByName []string
	nameByID map[string]int32
}

func newSectorInterner() *sectorInterner {
	return &sectorInterner{nameByID: map[string]int32{}}
}

func (s *sectorInterner) intern(base string) int32 {
	if id, ok := s.nameByID[base]; ok {
		return id
	}
	id := int32(len(s.idByName))
	s.idByName = append(s.idByName, base)
	s.nameByID[base] = id
	return id
}

func (s *sectorInterner) name(id int32) string {
	if id < 0 || int(id) >= len(s.idByName) {
		return ""
	}
	return s.idByName[id]
}

// Format renders a SectorPosition back to its wire string, e.g. "5E".
func (s *sectorInterner) Format(sp SectorPosition) string {
	return fmt.Sprintf("%s%c", s.name(sp.BaseID), sp.Position)
}
