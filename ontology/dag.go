package ontology

import (
	"fmt"
	"sync"

	"github.com/Phenomics/annotation-simulator/termid"
)

// Vertex coloring markers for Validate's cycle scan.
const (
	white = iota // unvisited
	gray         // on the current walk
	black        // fully processed
)

// DAG is an in-memory Ontology backed by child→parent adjacency.
//
// Assemble with AddTerm/MarkObsolete, then call Validate once; after that
// the value is intended to be treated as read-only. Queries are safe for
// concurrent use; mutation is not safe concurrently with queries.
type DAG struct {
	mu       sync.RWMutex
	root     termid.TermID
	parents  map[termid.TermID][]termid.TermID
	obsolete map[termid.TermID]struct{}
}

// compile-time conformance check
var _ Ontology = (*DAG)(nil)

// NewDAG creates an empty DAG whose designated root is root.
func NewDAG(root termid.TermID) *DAG {
	d := &DAG{
		root:     root,
		parents:  make(map[termid.TermID][]termid.TermID),
		obsolete: make(map[termid.TermID]struct{}),
	}
	d.parents[root] = nil

	return d
}

// AddTerm registers id with zero or more parent links. Unknown parents are
// created implicitly, so terms may arrive in any order. Repeated calls for
// the same id accumulate parents (duplicates ignored).
// Returns ErrRootHasParents when id is the root and parents is non-empty.
func (d *DAG) AddTerm(id termid.TermID, parents ...termid.TermID) error {
	if id == d.root && len(parents) > 0 {
		return fmt.Errorf("%w: %s", ErrRootHasParents, id)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.parents[id]; !ok {
		d.parents[id] = nil
	}
	for _, p := range parents {
		if p == id {
			continue // self-links carry no hierarchy information
		}
		if _, ok := d.parents[p]; !ok {
			d.parents[p] = nil
		}
		if !termid.Contains(d.parents[id], p) {
			d.parents[id] = append(d.parents[id], p)
		}
	}

	return nil
}

// MarkObsolete flags id as obsolete, registering it if unknown.
// Obsolete terms stay queryable but are excluded from NonObsoleteTermIDs.
func (d *DAG) MarkObsolete(id termid.TermID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.parents[id]; !ok {
		d.parents[id] = nil
	}
	d.obsolete[id] = struct{}{}
}

// Root returns the designated root term.
func (d *DAG) Root() termid.TermID {
	return d.root
}

// Contains reports whether id has been registered.
func (d *DAG) Contains(id termid.TermID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.parents[id]

	return ok
}

// IsObsolete reports whether id is flagged obsolete.
func (d *DAG) IsObsolete(id termid.TermID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.obsolete[id]

	return ok
}

// TermCount returns the number of registered terms, root included.
func (d *DAG) TermCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.parents)
}

// NonObsoleteTermIDs enumerates every registered, non-obsolete term, sorted.
func (d *DAG) NonObsoleteTermIDs() []termid.TermID {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]termid.TermID, 0, len(d.parents))
	for id := range d.parents {
		if _, obs := d.obsolete[id]; !obs {
			out = append(out, id)
		}
	}
	termid.SortIDs(out)

	return out
}

// Ancestors returns the strict ancestors of id, sorted.
// The root is included only when includeRoot is true.
func (d *DAG) Ancestors(id termid.TermID, includeRoot bool) []termid.TermID {
	d.mu.RLock()
	defer d.mu.RUnlock()

	seen := make(map[termid.TermID]struct{})
	d.ascend(id, seen)

	return d.collect(seen, includeRoot)
}

// AncestorsOfSet returns the reflexive-transitive ancestor closure of ids:
// every known query term plus all strict ancestors, sorted and deduplicated.
// The root is included only when includeRoot is true.
func (d *DAG) AncestorsOfSet(ids []termid.TermID, includeRoot bool) []termid.TermID {
	d.mu.RLock()
	defer d.mu.RUnlock()

	seen := make(map[termid.TermID]struct{})
	for _, id := range ids {
		if _, ok := d.parents[id]; !ok {
			continue // unknown terms contribute nothing
		}
		seen[id] = struct{}{}
		d.ascend(id, seen)
	}

	return d.collect(seen, includeRoot)
}

// ascend walks parent links breadth-first from id, adding every strict
// ancestor to seen. The visited check keeps the walk finite even on a graph
// that has not passed Validate. Caller holds at least a read lock.
func (d *DAG) ascend(id termid.TermID, seen map[termid.TermID]struct{}) {
	queue := append([]termid.TermID(nil), d.parents[id]...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, ok := seen[cur]; ok {
			continue
		}
		seen[cur] = struct{}{}
		queue = append(queue, d.parents[cur]...)
	}
}

// collect materializes seen as a sorted slice, optionally dropping the root.
// Caller holds at least a read lock.
func (d *DAG) collect(seen map[termid.TermID]struct{}, includeRoot bool) []termid.TermID {
	out := make([]termid.TermID, 0, len(seen))
	for id := range seen {
		if !includeRoot && id == d.root {
			continue
		}
		out = append(out, id)
	}
	termid.SortIDs(out)

	return out
}

// Validate checks the two structural invariants: parent links are acyclic,
// and every non-root, non-obsolete term reaches the root. Obsolete terms
// are exempt from the reachability check — retired terms routinely keep no
// parent links. Returns ErrCycleDetected or ErrNoPathToRoot wrapped with
// the offending term.
func (d *DAG) Validate() error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	// Deterministic scan order keeps the reported term stable.
	terms := make([]termid.TermID, 0, len(d.parents))
	for id := range d.parents {
		terms = append(terms, id)
	}
	termid.SortIDs(terms)

	state := make(map[termid.TermID]int, len(terms))
	for _, id := range terms {
		if state[id] == white {
			if err := d.visit(id, state); err != nil {
				return err
			}
		}
	}

	for _, id := range terms {
		if id == d.root {
			continue
		}
		if _, obs := d.obsolete[id]; obs {
			continue
		}
		seen := make(map[termid.TermID]struct{})
		d.ascend(id, seen)
		if _, ok := seen[d.root]; !ok {
			return fmt.Errorf("%w: %s", ErrNoPathToRoot, id)
		}
	}

	return nil
}

// visit performs an iterative coloring DFS along parent links from id,
// returning ErrCycleDetected on the first back edge.
func (d *DAG) visit(id termid.TermID, state map[termid.TermID]int) error {
	type frame struct {
		id   termid.TermID
		next int
	}
	stack := []frame{{id: id}}
	state[id] = gray

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		ps := d.parents[top.id]
		if top.next < len(ps) {
			p := ps[top.next]
			top.next++
			switch state[p] {
			case gray:
				return fmt.Errorf("%w: via %s", ErrCycleDetected, p)
			case white:
				state[p] = gray
				stack = append(stack, frame{id: p})
			}

			continue
		}
		state[top.id] = black
		stack = stack[:len(stack)-1]
	}

	return nil
}
