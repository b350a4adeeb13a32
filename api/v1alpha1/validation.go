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

package v1alpha1

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ErrInvalidInput wraps every validation failure produced by Validate, so
// callers can distinguish an InvalidInput condition (spec §7) from any
// other error class with errors.Is.
var ErrInvalidInput = errors.New("invalid optimizer input")

// Validate enforces the column-presence and timestamp-ordering checks that
// back the InvalidInput error kind (spec §7): missing required columns,
// inconsistent timestamps, or an empty controller pool.
func (in *OptimizerInput) Validate() error {
	var err error

	if len(in.InitialSchedule) == 0 {
		err = multierr.Append(err, errors.Wrap(ErrInvalidInput, "initialSchedule has no controllers"))
	}
	if len(in.TimeSlots) == 0 {
		err = multierr.Append(err, errors.Wrap(ErrInvalidInput, "timeSlots is empty"))
	}

	for i, row := range in.InitialSchedule {
		if row.Sifra == "" {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidInput, "initialSchedule[%d]: missing sifra", i))
		}
		if row.VremeStart.IsZero() {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidInput, "initialSchedule[%d]: missing vremeStart", i))
		}
		if !row.DatumDo.IsZero() && !row.DatumOd.IsZero() && row.DatumDo.Before(row.DatumOd) {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidInput, "initialSchedule[%d]: datumDo before datumOd", i))
		}
	}

	for i, row := range in.Configurations {
		if row.ConfigType != ConfigTypeTX && row.ConfigType != ConfigTypeLU {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidInput, "configurations[%d]: unrecognized configType %q", i, row.ConfigType))
		}
		if row.DatumDo.Before(row.DatumOd) {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidInput, "configurations[%d]: datumDo before datumOd", i))
		}
		if row.Sektor == "" {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidInput, "configurations[%d]: missing sektor", i))
		}
	}

	return err
}
