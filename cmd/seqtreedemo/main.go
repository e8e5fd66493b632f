// Command seqtreedemo exercises array.Tree end to end from the command
// line: building a sequence, running a batch of inserts/erases against it,
// and dumping its shape before and after. It is a thin CLI wrapper, not
// part of the library's contract (SPEC_FULL.md §2).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/alexkupri/array"
)

func main() {
	n := flag.Int("n", 20, "number of initial elements, 0..n-1")
	erase := flag.String("erase", "", "half-open range to erase, e.g. 5:10")
	insertAt := flag.Int("insert-at", -1, "position to insert -value at (-1 disables)")
	value := flag.Int("value", 999, "value to insert at -insert-at")
	verify := flag.Bool("verify", true, "run Check() after every mutation")
	flag.Parse()

	cfg := array.Config[int]{}
	t, err := array.NewFill(cfg, *n, 0)
	if err != nil {
		fatal(err)
	}
	for i := 0; i < *n; i++ {
		if err := t.Set(i, i); err != nil {
			fatal(err)
		}
	}

	fmt.Println(color.CyanString("initial:"))
	fmt.Println(t.DumpString())

	if *insertAt >= 0 {
		if err := t.Insert(*insertAt, *value); err != nil {
			fatal(err)
		}
		fmt.Println(color.CyanString("after insert:"))
		fmt.Println(t.DumpString())
	}

	if *erase != "" {
		var lo, hi int
		if _, err := fmt.Sscanf(*erase, "%d:%d", &lo, &hi); err != nil {
			fatal(fmt.Errorf("bad -erase range %q: %w", *erase, err))
		}
		if err := t.Erase(lo, hi); err != nil {
			fatal(err)
		}
		fmt.Println(color.CyanString("after erase:"))
		fmt.Println(t.DumpString())
	}

	if *verify {
		if err := t.Check(); err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("invariant violation: %v", err))
			os.Exit(1)
		}
		fmt.Println(color.GreenString("invariants hold, len=%d", t.Len()))
	}

	fmt.Println(t.DumpTree())
	fmt.Println(color.CyanString("sum: %d", sumTree(t)))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("seqtreedemo: %v", err))
	os.Exit(1)
}
