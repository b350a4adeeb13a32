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

// Package logging configures the process-wide structured logger. It
// mirrors the teacher entrypoint's approach (karpenter/main.go): a
// development encoder behind a verbose flag, a production JSON encoder
// otherwise, built once and threaded down explicitly rather than reached
// for as a package-level global from inside library code.
package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. verbose selects zap's development config
// (human-readable, debug-level, stack traces on warn+), matching the
// teacher's "-verbose" flag behavior.
func New(verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return logger, nil
}

// NewNop returns a logger that discards everything, for tests and for
// callers of pkg/optimizer that don't want to configure zap themselves.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
