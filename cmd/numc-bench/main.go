// Command numc-bench drives the numc engine from the command line: it
// builds arrays of a chosen kind and shape, runs one operation over them
// some number of times, and reports elapsed time. It contains no engine
// logic of its own -- every subcommand is a thin wrapper over the numc
// package, in the spirit of a smoke-test/benchmark driver binary.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/csotherden/numc/numc"
)

var (
	flagShape   []int
	flagKind    string
	flagIters   int
	flagWorkers int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "numc-bench",
		Short: "Exercise and time numc array operations",
	}
	root.PersistentFlags().IntSliceVar(&flagShape, "shape", []int{1024, 1024}, "array extents")
	root.PersistentFlags().StringVar(&flagKind, "kind", "float64", "element kind (int8..uint64, float32, float64)")
	root.PersistentFlags().IntVar(&flagIters, "iters", 10, "number of iterations to time")
	root.PersistentFlags().IntVar(&flagWorkers, "workers", 1, "worker goroutines (1 disables parallel dispatch)")

	root.AddCommand(newAddCmd(), newSumCmd(), newInfoCmd())
	return root
}

func parseKind(name string) (numc.Kind, error) {
	switch name {
	case "int8":
		return numc.Int8, nil
	case "int16":
		return numc.Int16, nil
	case "int32":
		return numc.Int32, nil
	case "int64":
		return numc.Int64, nil
	case "uint8":
		return numc.Uint8, nil
	case "uint16":
		return numc.Uint16, nil
	case "uint32":
		return numc.Uint32, nil
	case "uint64":
		return numc.Uint64, nil
	case "float32":
		return numc.Float32, nil
	case "float64":
		return numc.Float64, nil
	}
	return 0, fmt.Errorf("unknown kind %q", name)
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Time elementwise Add over --shape elements, --iters times",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(flagKind)
			if err != nil {
				return err
			}
			ctx := numc.NewContext(numc.WithWorkers(flagWorkers))
			defer ctx.Free()
			a, err := numc.Fill(ctx, kind, flagShape, 1)
			if err != nil {
				return err
			}
			b, err := numc.Fill(ctx, kind, flagShape, 2)
			if err != nil {
				return err
			}
			out, err := numc.Zeros(ctx, kind, flagShape)
			if err != nil {
				return err
			}
			start := time.Now()
			for i := 0; i < flagIters; i++ {
				if err := numc.Add(a, b, out); err != nil {
					return err
				}
			}
			elapsed := time.Since(start)
			fmt.Printf("add: shape=%v kind=%s iters=%d workers=%d total=%s per_iter=%s\n",
				flagShape, kind, flagIters, flagWorkers, elapsed, elapsed/time.Duration(flagIters))
			return nil
		},
	}
}

func newSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum",
		Short: "Time a full Sum reduction over --shape elements, --iters times",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(flagKind)
			if err != nil {
				return err
			}
			ctx := numc.NewContext(numc.WithWorkers(flagWorkers))
			defer ctx.Free()
			a, err := numc.Fill(ctx, kind, flagShape, 1)
			if err != nil {
				return err
			}
			out, err := numc.Zeros(ctx, kind, []int{1})
			if err != nil {
				return err
			}
			start := time.Now()
			for i := 0; i < flagIters; i++ {
				if err := numc.Sum(a, out, numc.FullAxis, false); err != nil {
					return err
				}
			}
			elapsed := time.Since(start)
			fmt.Printf("sum: shape=%v kind=%s iters=%d total=%s per_iter=%s\n",
				flagShape, kind, flagIters, elapsed, elapsed/time.Duration(flagIters))
			return nil
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the element size and properties of --kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(flagKind)
			if err != nil {
				return err
			}
			fmt.Printf("kind=%s size=%d signed=%v unsigned=%v float=%v integer=%v\n",
				kind, kind.Size(), kind.IsSigned(), kind.IsUnsigned(), kind.IsFloat(), kind.IsInteger())
			return nil
		},
	}
}
