package disease

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/Phenomics/annotation-simulator/termid"
)

// phenotype_annotation.tab column layout (only the leading columns are
// consumed; trailing evidence/frequency columns are ignored).
const (
	colDatabase = iota
	colObjectID
	colName
	colQualifier
	colTermID
	minColumns
)

// ParseAnnotations reads tab-separated disease annotation rows from r and
// merges them into one Annotated record per disease. Lines starting with
// '#' are skipped. Any malformed line aborts the parse with a wrapped
// sentinel (ErrBadRow, ErrUnknownDatabase, termid.ErrMalformedID) carrying
// the line number.
func ParseAnnotations(r io.Reader) (map[ID]*Annotated, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1 // trailing columns vary by release

	builders := make(map[ID]*Builder)
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("disease: reading annotations: %w", err)
		}

		line, _ := cr.FieldPos(0)
		row, err := parseRow(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		b, ok := builders[row.DiseaseID]
		if !ok {
			b = &Builder{}
			builders[row.DiseaseID] = b
		}
		if err := b.Process(row); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	out := make(map[ID]*Annotated, len(builders))
	for id, b := range builders {
		out[id] = b.Build()
	}

	return out, nil
}

// ParseAnnotationFile opens path and delegates to ParseAnnotations.
func ParseAnnotationFile(path string) (map[ID]*Annotated, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("disease: open annotations: %w", err)
	}
	defer f.Close()

	return ParseAnnotations(f)
}

// parseRow converts one field slice into a Row.
func parseRow(fields []string) (Row, error) {
	if len(fields) < minColumns {
		return Row{}, fmt.Errorf("%w: %d columns, need %d", ErrBadRow, len(fields), minColumns)
	}

	db, err := ParseDatabase(fields[colDatabase])
	if err != nil {
		return Row{}, err
	}
	term, err := termid.Parse(fields[colTermID])
	if err != nil {
		return Row{}, err
	}

	return Row{
		DiseaseID:   ID{Database: db, Local: fields[colObjectID]},
		DiseaseName: fields[colName],
		Qualifier:   fields[colQualifier],
		TermID:      term,
	}, nil
}
