package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/joshuapare/llkit/alloc"
	"github.com/joshuapare/llkit/internal/logger"
	"github.com/joshuapare/llkit/list"
	"github.com/spf13/cobra"
)

var (
	runInit    uint32
	runAdd     []uint
	runDel     []uint
	runHeapCap int
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().Uint32Var(&runInit, "init", 1, "Value of the first node")
	cmd.Flags().UintSliceVar(&runAdd, "add", []uint{2, 3, 4, 5, 6, 7}, "Values appended in order")
	cmd.Flags().UintSliceVar(&runDel, "del", []uint{3}, "Values deleted in order")
	cmd.Flags().IntVar(&runHeapCap, "heap-cap", 0, "Maximum live nodes (0 = unbounded, negative is rejected)")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build, edit, walk and free a list",
		Long: `The run command initializes a list, appends values, deletes values,
prints the resulting chain and frees it. It then frees an empty list and
reports the heap accounting.

Example:
  llctl run
  llctl run --add 2,3,4 --del 1
  llctl run --heap-cap 4 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun()
		},
	}
	return cmd
}

// DelResult is the outcome of one deletion.
type DelResult struct {
	Value   uint32 `json:"value"`
	Removed bool   `json:"removed"`
}

// RunReport is the JSON form of a run.
type RunReport struct {
	Values     []uint32    `json:"values"`
	Rejected   []uint32    `json:"rejected,omitempty"`
	Deleted    []DelResult `json:"deleted"`
	Freed      int         `json:"freed"`
	FreedEmpty int         `json:"freed_empty"`
	HeapCap    int         `json:"heap_cap,omitempty"`
	Heap       alloc.Stats `json:"heap"`
}

// errLeak reports nodes that survived the final free.
var errLeak = errors.New("nodes still live after free")

func runRun() error {
	adds, err := toU32(runAdd)
	if err != nil {
		return fmt.Errorf("--add: %w", err)
	}
	dels, err := toU32(runDel)
	if err != nil {
		return fmt.Errorf("--del: %w", err)
	}

	if runHeapCap < 0 {
		return fmt.Errorf("--heap-cap: %d is negative", runHeapCap)
	}

	var report RunReport

	var heap alloc.Heap[list.Node] = alloc.NewRuntime[list.Node]()
	if runHeapCap > 0 {
		bounded := alloc.NewBounded(heap, runHeapCap)
		report.HeapCap = bounded.Limit()
		heap = bounded
		printVerbose("Heap capped at %d nodes\n", report.HeapCap)
	}
	m := list.New(list.WithHeap(heap), list.WithLogger(logger.L))

	var head *list.Node
	cur, err := m.Init(&head, runInit)
	if err != nil {
		return fmt.Errorf("init %d: %w", runInit, err)
	}
	printVerbose("Init %d\n", runInit)

	for _, v := range adds {
		n, err := m.Add(cur, v)
		if errors.Is(err, list.ErrAlloc) {
			printText("Node not allocated: %d\n", v)
			report.Rejected = append(report.Rejected, v)
			continue
		}
		if err != nil {
			return fmt.Errorf("add %d: %w", v, err)
		}
		cur = n
		printVerbose("Add %d\n", v)
	}

	for _, v := range dels {
		removed := m.Del(&head, v)
		report.Deleted = append(report.Deleted, DelResult{Value: v, Removed: removed})
		if removed {
			printText("Node removed: %d\n", v)
		} else {
			printText("Node not found: %d\n", v)
		}
	}

	report.Values = list.Values(head)
	if !jsonOut && !quiet {
		printInfo("Iterate\n")
		if err := list.Dump(os.Stdout, head); err != nil {
			return fmt.Errorf("dump: %w", err)
		}
	}

	report.Freed = m.Free(&head)
	printText("head freed %d\n", report.Freed)

	var empty *list.Node
	report.FreedEmpty = m.Free(&empty)
	printText("NULL freed %d\n", report.FreedEmpty)

	report.Heap = m.Stats()
	logger.Info("run complete", "freed", report.Freed, "allocs", report.Heap.Allocs)

	if jsonOut {
		if err := printJSON(report); err != nil {
			return err
		}
		return checkLeak(report.Heap)
	}

	printInfo("\nHeap Statistics:\n")
	if report.HeapCap > 0 {
		printInfo("  Cap:    %s\n", formatNumber(report.HeapCap))
	}
	printInfo("  Allocs: %s\n", formatNumber(report.Heap.Allocs))
	printInfo("  Frees:  %s\n", formatNumber(report.Heap.Frees))
	printInfo("  Live:   %s\n", formatNumber(report.Heap.Live))
	printInfo("  Peak:   %s\n", formatNumber(report.Heap.Peak))
	return checkLeak(report.Heap)
}

// checkLeak fails the run when the heap still holds nodes.
func checkLeak(st alloc.Stats) error {
	if st.Live != 0 {
		return fmt.Errorf("%d %w", st.Live, errLeak)
	}
	return nil
}

// printText prints a step of the run unless the report goes out as JSON.
func printText(format string, args ...any) {
	if !jsonOut {
		printInfo(format, args...)
	}
}

func toU32(vals []uint) ([]uint32, error) {
	out := make([]uint32, 0, len(vals))
	for _, v := range vals {
		if v > math.MaxUint32 {
			return nil, fmt.Errorf("value %d does not fit in 32 bits", v)
		}
		out = append(out, uint32(v))
	}
	return out, nil
}
