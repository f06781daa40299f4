package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"brickwork/internal/core"
	_ "brickwork/internal/fill"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	rows := flag.Int("rows", 48, "grid rows")
	cols := flag.Int("cols", 64, "grid columns")
	program := flag.String("program", "", "run a single program instead of all")
	limitFactor := flag.Int("limit-factor", 8, "update budget as a multiple of the cell count")
	var overrides kvList
	flag.Var(&overrides, "set", "program option in key=value form (repeatable)")
	flag.Parse()

	opts := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		opts[parts[0]] = parts[1]
	}

	names := core.Programs()
	if *program != "" {
		if _, ok := core.Lookup(*program); !ok {
			log.Fatalf("unknown program %q (have %s)", *program, strings.Join(names, ", "))
		}
		names = []string{*program}
	}

	fmt.Printf("Tracing %d program(s) on a %dx%d grid\n", len(names), *rows, *cols)
	for _, name := range names {
		runTrace(name, *rows, *cols, *limitFactor, opts)
	}
}

// runTrace drives one program to completion and reports its update count
// and final coverage.
func runTrace(name string, rows, cols, limitFactor int, opts map[string]string) {
	factory, _ := core.Lookup(name)
	grid := core.NewGrid(rows, cols)
	p := factory(grid, opts)
	p.Reset()

	total := grid.Rows * grid.Cols
	limit := limitFactor * total
	if limit < 4096 {
		limit = 4096
	}

	updates := 0
	for !p.Done() && updates < limit {
		p.Update()
		updates++
	}

	bricks := 0
	for _, c := range grid.Cells() {
		if c == core.Brick {
			bricks++
		}
	}

	status := "ok"
	switch {
	case !p.Done():
		status = "hit update limit"
	case bricks != total:
		status = "incomplete coverage"
	}
	fmt.Printf("  %-16s updates=%-6d bricks=%d/%d %s\n", name, updates, bricks, total, status)
}
