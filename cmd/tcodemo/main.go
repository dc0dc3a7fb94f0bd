// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command tcodemo exercises the trampoline engine with four renditions of
// factorial. The naive variant exists to show the failure mode the engine
// removes: for large -n it exhausts the stack and the process dies
// abnormally, while the trampolined variants stay at constant stack depth.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"code.hybscloud.com/tramp"
	"code.hybscloud.com/tramp/factorial"
)

var (
	verbose   bool
	n         uint64
	withTrace bool
	checked   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tcodemo",
	Short: "tail-call trampoline demos",
	Long: `tcodemo computes factorial four ways: naive recursion, tail-recursive
recursion, the iterative trampoline, and continuation-passing style.

The naive and tailrec variants grow real stack per step (Go performs no
tail-call elimination); large -n terminates the process abnormally.
The trampoline and cps variants run at constant physical stack depth
for any -n.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewDevelopmentConfig()
		if verbose || withTrace {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// traceSink streams engine snapshots into the logger, one line per virtual
// call frame.
type traceSink struct {
	log *zap.Logger
}

func (s traceSink) Record(e tramp.Entry[factorial.State]) {
	s.log.Debug("frame",
		zap.Uint64("depth", e.Depth),
		zap.Uint64("n", e.State.N),
		zap.Uint64("acc", e.State.Acc),
	)
}

func newVariantCmd(name, short string, run func() (uint64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Info("computing factorial", zap.String("variant", name), zap.Uint64("n", n))
			v, err := run()
			if err != nil {
				return err
			}
			logger.Info("done", zap.String("variant", name), zap.Uint64("n", n), zap.Uint64("result", v))
			return nil
		},
	}
}

func runTrampoline() (uint64, error) {
	if checked {
		return eitherResult(factorial.Checked(n))
	}
	if withTrace {
		v := tramp.RunObserved[factorial.State, uint64](traceSink{log: logger},
			factorial.State{N: n, Acc: 1},
			func(s factorial.State) factorial.State {
				return factorial.State{N: s.N - 1, Acc: s.Acc * s.N}
			},
			func(s factorial.State) bool { return s.N <= 1 },
			func(s factorial.State) uint64 { return s.Acc },
		)
		return v, nil
	}
	return factorial.Trampolined(n), nil
}

// tracedDescent narrates the CPS evaluation the way the original demo did:
// the base case reports first, then each pending multiplication in reverse
// construction order.
func tracedDescent(log *zap.Logger) tramp.Descent[uint64, uint64] {
	return tramp.Descent[uint64, uint64]{
		IsBase: func(m uint64) bool { return m <= 1 },
		Base: func(uint64) uint64 {
			log.Debug("base case", zap.Uint64("result", 1))
			return 1
		},
		Shrink: func(m uint64) uint64 { return m - 1 },
		Combine: func(m, sub uint64) uint64 {
			log.Debug("combine", zap.Uint64("n", m), zap.Uint64("sub", sub), zap.Uint64("product", m*sub))
			return m * sub
		},
	}
}

// rejectFlags refuses flag combinations the variant does not implement
// instead of silently ignoring them.
func rejectFlags(variant string) error {
	if checked && variant != "trampoline" {
		return fmt.Errorf("--checked is only supported by the trampoline variant")
	}
	if withTrace && variant != "trampoline" && variant != "cps" {
		return fmt.Errorf("--trace is not supported by the %s variant", variant)
	}
	return nil
}

func runCPS() (uint64, error) {
	if err := rejectFlags("cps"); err != nil {
		return 0, err
	}
	if withTrace {
		return tracedDescent(logger).RunBounced(n), nil
	}
	return factorial.CPSBounced(n), nil
}

func eitherResult(e tramp.Either[error, uint64]) (uint64, error) {
	var err error
	v := tramp.MatchEither(e,
		func(e error) uint64 { err = e; return 0 },
		func(v uint64) uint64 { return v },
	)
	return v, err
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Uint64VarP(&n, "n", "n", 20, "operand")
	rootCmd.PersistentFlags().BoolVar(&withTrace, "trace", false, "log one line per virtual call frame")
	rootCmd.PersistentFlags().BoolVar(&checked, "checked", false, "fail on accumulator overflow instead of wrapping")

	rootCmd.AddCommand(
		newVariantCmd("naive", "plain recursion (stack grows per step)", func() (uint64, error) {
			if err := rejectFlags("naive"); err != nil {
				return 0, err
			}
			return factorial.Naive(n), nil
		}),
		newVariantCmd("tailrec", "accumulator-passing recursion (no TCO in Go)", func() (uint64, error) {
			if err := rejectFlags("tailrec"); err != nil {
				return 0, err
			}
			return factorial.TailRec(n), nil
		}),
		newVariantCmd("trampoline", "iterative trampoline (constant stack)", runTrampoline),
		newVariantCmd("cps", "continuation-passing style on the bounce trampoline", runCPS),
		runScenariosCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
