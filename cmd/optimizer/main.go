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

// Command optimizer is a minimal, file-based stand-in for the out-of-scope
// RosterService + DataSource: it reads one JSON OptimizerInput document,
// invokes the optimizer contract, and writes the OptimizationResponse as
// JSON. It is a harness, not a service: no sessions, no persistence, no
// multi-run history.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	v1alpha1 "github.com/atc-roster/optimizer/api/v1alpha1"
	"github.com/atc-roster/optimizer/pkg/logging"
	"github.com/atc-roster/optimizer/pkg/metrics"
	"github.com/atc-roster/optimizer/pkg/optimizer"
	"go.uber.org/zap"
)

type options struct {
	Verbose bool
	Input   string
	Output  string
}

func main() {
	var opts options
	flag.BoolVar(&opts.Verbose, "verbose", false, "Enable verbose logging.")
	flag.StringVar(&opts.Input, "input", "", "Path to the JSON OptimizerInput document (default: stdin).")
	flag.StringVar(&opts.Output, "output", "", "Path to write the JSON OptimizationResponse (default: stdout).")
	flag.Parse()

	logger, err := logging.New(opts.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(opts, logger); err != nil {
		logger.Error("optimizer: run failed", zap.Error(err))
		os.Exit(1)
	}
}

// run handles only I/O failures with a non-zero exit; an in-domain
// SolutionStatus="Error" response is still a successful CLI invocation
// and is written out like any other response (spec SPEC_FULL.md §6.1).
func run(opts options, logger *zap.Logger) error {
	raw, err := readInput(opts.Input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var in v1alpha1.OptimizerInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	reg := metrics.NewRegistry()
	resp := optimizer.OptimizeWithLogger(context.Background(), in, logger, reg)

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling response: %w", err)
	}
	out = append(out, '\n')

	if err := writeOutput(opts.Output, out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
