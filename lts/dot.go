package lts

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rfielding/csp-lts/process"
)

type frontierNode struct {
	p     process.Process
	depth int
}

// WriteDOT writes a Graphviz DOT rendering of the LTS reachable from seed,
// walked lazily via Initials/Afters up to maxDepth transitions from seed
// (§4.7). Unlike the teacher's flat-map exporter this package walks the
// process graph directly, since there is no precomputed transition table:
// the LTS only exists implicitly, one call to Afters at a time.
func WriteDOT(w io.Writer, seed process.Process, maxDepth int) error {
	if _, err := fmt.Fprintln(w, "digraph LTS {"); err != nil {
		return err
	}
	fmt.Fprintln(w, `  rankdir="LR";`)
	fmt.Fprintln(w, `  node [shape=box, fontname="monospace"];`)

	visited := process.NewSet()
	visited.Add(seed)
	queue := []frontierNode{{seed, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		fmt.Fprintf(w, "  n%d [label=%q];\n", cur.p.Index(), process.String(cur.p))
		if cur.depth >= maxDepth {
			continue
		}

		targets := map[int]process.Process{}
		names := map[int][]string{}
		bag := process.NewBag()
		var order []int

		for _, a := range process.InitialsSet(cur.p).Sorted() {
			for _, q := range process.AftersSet(cur.p, a).Sorted() {
				if _, seen := targets[q.Index()]; !seen {
					order = append(order, q.Index())
					targets[q.Index()] = q
				}
				names[q.Index()] = append(names[q.Index()], a.Name())
				bag.Add(q)
				if !visited.Has(q) {
					visited.Add(q)
					queue = append(queue, frontierNode{q, cur.depth + 1})
				}
			}
		}

		sort.Ints(order)
		for _, idx := range order {
			q := targets[idx]
			label := strings.Join(names[idx], ",")
			if n := bag.Count(q); n > 1 {
				label = fmt.Sprintf("%s ×%d", label, n)
			}
			fmt.Fprintf(w, "  n%d -> n%d [label=%q];\n", cur.p.Index(), idx, label)
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
