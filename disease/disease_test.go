package disease_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Phenomics/annotation-simulator/disease"
	"github.com/Phenomics/annotation-simulator/termid"
)

// TestParseDatabase covers tokens, case folding, and rejection.
func TestParseDatabase(t *testing.T) {
	for token, want := range map[string]disease.Database{
		"OMIM":     disease.OMIM,
		"decipher": disease.DECIPHER,
		" Orpha ":  disease.ORPHA,
		"MESH":     disease.MESH,
		"DO":       disease.DO,
		"MGI":      disease.MGI,
	} {
		got, err := disease.ParseDatabase(token)
		require.NoError(t, err, "token %q", token)
		require.Equal(t, want, got, "token %q", token)
	}

	_, err := disease.ParseDatabase("HGNC")
	require.ErrorIs(t, err, disease.ErrUnknownDatabase)
}

// TestParseID covers the "DB:LOCAL" shape and its failure modes.
func TestParseID(t *testing.T) {
	id, err := disease.ParseID("OMIM:154700")
	require.NoError(t, err)
	require.Equal(t, disease.ID{Database: disease.OMIM, Local: "154700"}, id)
	require.Equal(t, "OMIM:154700", id.String())

	_, err = disease.ParseID("154700")
	require.ErrorIs(t, err, disease.ErrMalformedID)

	_, err = disease.ParseID("NOPE:1")
	require.ErrorIs(t, err, disease.ErrUnknownDatabase)
}

// TestID_Ordering: database dominates, then the local part.
func TestID_Ordering(t *testing.T) {
	a := disease.ID{Database: disease.OMIM, Local: "9"}
	b := disease.ID{Database: disease.DECIPHER, Local: "1"}
	require.True(t, a.Less(b), "OMIM orders before DECIPHER")
	require.Zero(t, a.Compare(a))
}

func row(dbLocal, name, qualifier, term string) disease.Row {
	id, err := disease.ParseID(dbLocal)
	if err != nil {
		panic(err)
	}
	tid, err := termid.Parse(term)
	if err != nil {
		panic(err)
	}

	return disease.Row{DiseaseID: id, DiseaseName: name, Qualifier: qualifier, TermID: tid}
}

// TestBuilder_MergeAndConsolidate verifies NOT routing, file-order
// preservation, and duplicate consolidation of positive term IDs.
func TestBuilder_MergeAndConsolidate(t *testing.T) {
	var b disease.Builder
	require.NoError(t, b.Process(row("OMIM:1", "Marfan", "", "HP:0001250")))
	require.NoError(t, b.Process(row("OMIM:1", "Marfan", "NOT", "HP:0000707")))
	require.NoError(t, b.Process(row("OMIM:1", "Marfan", "", "HP:0004322")))
	require.NoError(t, b.Process(row("OMIM:1", "Marfan", "", "HP:0001250"))) // duplicate
	b.AddAlternativeName("zeta")
	b.AddAlternativeName("alpha")

	a := b.Build()
	require.Equal(t, "Marfan", a.Name())
	require.Equal(t, "OMIM:1", a.ID().String())
	require.Equal(t, []string{"alpha", "zeta"}, a.AlternativeNames())

	wantPos := []termid.TermID{termid.New("HP", "0001250"), termid.New("HP", "0004322")}
	require.Equal(t, wantPos, a.PositiveTermIDs(), "ordered, duplicate-free")

	neg := a.NegativeAnnotations()
	require.Len(t, neg, 1)
	require.Equal(t, termid.New("HP", "0000707"), neg[0].TermID)
	require.True(t, neg[0].Negated)
	require.Len(t, a.PositiveAnnotations(), 3, "raw positives keep the duplicate")
}

// TestBuilder_Conflicts rejects rows that disagree on identity.
func TestBuilder_Conflicts(t *testing.T) {
	var b disease.Builder
	require.NoError(t, b.Process(row("OMIM:1", "Marfan", "", "HP:0001250")))

	err := b.Process(row("OMIM:2", "Marfan", "", "HP:0001250"))
	require.ErrorIs(t, err, disease.ErrConflict)

	err = b.Process(row("OMIM:1", "Other name", "", "HP:0001250"))
	require.ErrorIs(t, err, disease.ErrConflict)
}

const sampleTab = `# comment line
OMIM	154700	Marfan syndrome		HP:0001250	ref	IEA
OMIM	154700	Marfan syndrome	NOT	HP:0000707	ref	IEA
DECIPHER	2	Angelman syndrome		HP:0004322	ref	TAS
OMIM	154700	Marfan syndrome		HP:0001250	ref2	IEA
`

// TestParseAnnotations reads a miniature annotation file end to end.
func TestParseAnnotations(t *testing.T) {
	records, err := disease.ParseAnnotations(strings.NewReader(sampleTab))
	require.NoError(t, err)
	require.Len(t, records, 2)

	marfanID, _ := disease.ParseID("OMIM:154700")
	marfan, ok := records[marfanID]
	require.True(t, ok)
	require.Equal(t, "Marfan syndrome", marfan.Name())
	require.Equal(t,
		[]termid.TermID{termid.New("HP", "0001250")},
		marfan.PositiveTermIDs(), "duplicate row consolidated")
	require.Len(t, marfan.NegativeAnnotations(), 1)

	ids := disease.SortedIDs(records)
	require.Equal(t, "OMIM:154700", ids[0].String())
	require.Equal(t, "DECIPHER:2", ids[1].String())
}

// TestParseAnnotations_BadRows verifies wrapped sentinels with line context.
func TestParseAnnotations_BadRows(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"short row", "OMIM\t1\tname\n", disease.ErrBadRow},
		{"unknown db", "WHO\t1\tname\t\tHP:1\n", disease.ErrUnknownDatabase},
		{"bad term", "OMIM\t1\tname\t\tnocolon\n", termid.ErrMalformedID},
		{"conflicting name", "OMIM\t1\tA\t\tHP:1\nOMIM\t1\tB\t\tHP:2\n", disease.ErrConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := disease.ParseAnnotations(strings.NewReader(tc.input))
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
