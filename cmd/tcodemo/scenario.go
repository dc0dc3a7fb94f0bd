// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/tramp/factorial"
)

// Scenario is one demo run declared in a scenario file.
type Scenario struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
	N       uint64 `yaml:"n"`
	Trace   bool   `yaml:"trace"`
	Checked bool   `yaml:"checked"`
}

// ScenarioFile is the top-level document of a scenario file.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios parses a scenario file.
func LoadScenarios(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	for i, s := range file.Scenarios {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("scenario %d (%q): %w", i, s.Name, err)
		}
	}
	return &file, nil
}

func (s Scenario) validate() error {
	switch s.Variant {
	case "naive", "tailrec", "trampoline", "cps":
	case "":
		return fmt.Errorf("missing variant")
	default:
		return fmt.Errorf("unknown variant %q", s.Variant)
	}
	if s.Checked && s.Variant != "trampoline" {
		return fmt.Errorf("checked is only supported by the trampoline variant")
	}
	if s.Trace && s.Variant != "trampoline" && s.Variant != "cps" {
		return fmt.Errorf("trace is not supported by the %s variant", s.Variant)
	}
	return nil
}

// Run executes the scenario and returns the computed value.
func (s Scenario) Run(log *zap.Logger) (uint64, error) {
	switch s.Variant {
	case "naive":
		return factorial.Naive(s.N), nil
	case "tailrec":
		return factorial.TailRec(s.N), nil
	case "trampoline":
		if s.Checked {
			return eitherResult(factorial.Checked(s.N))
		}
		if s.Trace {
			v, trace := factorial.Traced(s.N)
			log.Info("trace recorded", zap.Int("frames", trace.Len()))
			return v, nil
		}
		return factorial.Trampolined(s.N), nil
	case "cps":
		if s.Checked {
			return 0, fmt.Errorf("checked is only supported by the trampoline variant")
		}
		if s.Trace {
			return tracedDescent(log).RunBounced(s.N), nil
		}
		return factorial.CPSBounced(s.N), nil
	}
	return 0, fmt.Errorf("unknown variant %q", s.Variant)
}

func runScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenarios.yaml>",
		Short: "execute a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := LoadScenarios(args[0])
			if err != nil {
				return err
			}
			for _, s := range file.Scenarios {
				log := logger.With(zap.String("scenario", s.Name), zap.String("variant", s.Variant), zap.Uint64("n", s.N))
				log.Info("running")
				v, err := s.Run(log)
				if err != nil {
					return fmt.Errorf("scenario %q: %w", s.Name, err)
				}
				log.Info("done", zap.Uint64("result", v))
			}
			return nil
		},
	}
}
