package obo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Phenomics/annotation-simulator/ontology"
	"github.com/Phenomics/annotation-simulator/termid"
)

// Sentinel errors for structural problems in the input file.
var (
	// ErrBadStanza is returned for a [Term] stanza without an id tag.
	ErrBadStanza = errors.New("obo: term stanza without id")

	// ErrNoRoot is returned when no non-obsolete term lacks a parent.
	ErrNoRoot = errors.New("obo: no root term found")

	// ErrMultipleRoots is returned when several non-obsolete terms lack a
	// parent; the file is a forest, not a single-rooted ontology.
	ErrMultipleRoots = errors.New("obo: multiple root candidates")
)

// termStanza accumulates the tags of one [Term] block.
type termStanza struct {
	id       termid.TermID
	name     string
	parents  []termid.TermID
	obsolete bool
	hasID    bool
}

// Parse reads an OBO document and assembles the ontology.
// The second result maps every term to its "name" tag (empty when absent),
// for presentation purposes.
func Parse(r io.Reader) (*ontology.DAG, map[termid.TermID]string, error) {
	stanzas, err := scan(r)
	if err != nil {
		return nil, nil, err
	}

	root, err := findRoot(stanzas)
	if err != nil {
		return nil, nil, err
	}

	dag := ontology.NewDAG(root)
	names := make(map[termid.TermID]string, len(stanzas))
	for _, st := range stanzas {
		names[st.id] = st.name
		if st.id == root {
			continue
		}
		if err := dag.AddTerm(st.id, st.parents...); err != nil {
			return nil, nil, fmt.Errorf("obo: term %s: %w", st.id, err)
		}
		if st.obsolete {
			dag.MarkObsolete(st.id)
		}
	}

	if err := dag.Validate(); err != nil {
		return nil, nil, fmt.Errorf("obo: %w", err)
	}

	return dag, names, nil
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string) (*ontology.DAG, map[termid.TermID]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("obo: open: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// scan splits the document into [Term] stanzas, line by line.
func scan(r io.Reader) ([]termStanza, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		stanzas []termStanza
		cur     *termStanza
		inTerm  bool
		lineNo  int
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		if !cur.hasID {
			return fmt.Errorf("%w (ending at line %d)", ErrBadStanza, lineNo)
		}
		stanzas = append(stanzas, *cur)
		cur = nil

		return nil
	}

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "!"):
			continue
		case strings.HasPrefix(line, "["):
			if err := flush(); err != nil {
				return nil, err
			}
			inTerm = line == "[Term]"
			if inTerm {
				cur = &termStanza{}
			}
		case inTerm:
			if err := applyTag(cur, line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obo: reading: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return stanzas, nil
}

// applyTag folds one "tag: value" line into the current stanza.
func applyTag(st *termStanza, line string) error {
	tag, value, ok := strings.Cut(line, ":")
	if !ok {
		return nil // free-form line, ignore
	}
	value = stripComment(strings.TrimSpace(value))

	switch strings.TrimSpace(tag) {
	case "id":
		id, err := termid.Parse(value)
		if err != nil {
			return err
		}
		st.id = id
		st.hasID = true
	case "name":
		st.name = value
	case "is_a":
		parent, err := termid.Parse(value)
		if err != nil {
			return err
		}
		st.parents = append(st.parents, parent)
	case "is_obsolete":
		st.obsolete = value == "true"
	}

	return nil
}

// stripComment drops a trailing "! label" comment.
func stripComment(value string) string {
	if idx := strings.Index(value, "!"); idx >= 0 {
		value = value[:idx]
	}

	return strings.TrimSpace(value)
}

// findRoot returns the unique non-obsolete, parentless term.
func findRoot(stanzas []termStanza) (termid.TermID, error) {
	var (
		root  termid.TermID
		count int
	)
	for _, st := range stanzas {
		if st.obsolete || len(st.parents) > 0 {
			continue
		}
		count++
		if count == 1 || st.id.Less(root) {
			root = st.id
		}
	}

	switch count {
	case 0:
		return termid.TermID{}, ErrNoRoot
	case 1:
		return root, nil
	default:
		return termid.TermID{}, fmt.Errorf("%w: %d candidates", ErrMultipleRoots, count)
	}
}
