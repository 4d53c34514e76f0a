package obo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Phenomics/annotation-simulator/obo"
	"github.com/Phenomics/annotation-simulator/ontology"
	"github.com/Phenomics/annotation-simulator/termid"
)

const sampleOBO = `format-version: 1.2
ontology: hp

[Term]
id: HP:0000001
name: All

[Term]
id: HP:0000707
name: Abnormality of the nervous system
is_a: HP:0000001 ! All

[Term]
id: HP:0001250
name: Seizure
is_a: HP:0000707 ! Abnormality of the nervous system

[Term]
id: HP:0200134
name: Epileptic encephalopathy
is_a: HP:0001250 ! Seizure
is_a: HP:0000707 ! Abnormality of the nervous system

[Term]
id: HP:0009999
name: Retired finding
is_obsolete: true

[Typedef]
id: part_of
name: part of
`

func hp(local string) termid.TermID { return termid.New("HP", local) }

// TestParse_Sample reads a miniature hp.obo end to end.
func TestParse_Sample(t *testing.T) {
	dag, names, err := obo.Parse(strings.NewReader(sampleOBO))
	require.NoError(t, err)

	require.Equal(t, hp("0000001"), dag.Root())
	require.Equal(t, 5, dag.TermCount())
	require.Equal(t, "Seizure", names[hp("0001250")])
	require.True(t, dag.IsObsolete(hp("0009999")))

	// Multi-parent term: both is_a links must be present.
	got := dag.Ancestors(hp("0200134"), false)
	require.Equal(t, []termid.TermID{hp("0000707"), hp("0001250")}, got)

	// Obsolete terms are excluded from the simulation pool.
	pool := dag.NonObsoleteTermIDs()
	require.NotContains(t, pool, hp("0009999"))
	require.Len(t, pool, 4)
}

// TestParse_CommentStripping: the "! label" suffix must never leak into IDs.
func TestParse_CommentStripping(t *testing.T) {
	dag, _, err := obo.Parse(strings.NewReader(sampleOBO))
	require.NoError(t, err)
	require.True(t, dag.Contains(hp("0000707")))
	require.False(t, dag.Contains(termid.New("HP", "0000001 ! All")))
}

// TestParse_NoRoot: every term has a parent, so no root can be inferred.
func TestParse_NoRoot(t *testing.T) {
	const in = `[Term]
id: HP:1
is_a: HP:2

[Term]
id: HP:2
is_a: HP:1
`
	_, _, err := obo.Parse(strings.NewReader(in))
	require.ErrorIs(t, err, obo.ErrNoRoot)
}

// TestParse_MultipleRoots: a forest is rejected.
func TestParse_MultipleRoots(t *testing.T) {
	const in = `[Term]
id: HP:1

[Term]
id: HP:2
`
	_, _, err := obo.Parse(strings.NewReader(in))
	require.ErrorIs(t, err, obo.ErrMultipleRoots)
}

// TestParse_StanzaWithoutID is rejected with ErrBadStanza.
func TestParse_StanzaWithoutID(t *testing.T) {
	const in = `[Term]
name: nameless
`
	_, _, err := obo.Parse(strings.NewReader(in))
	require.ErrorIs(t, err, obo.ErrBadStanza)
}

// TestParse_CycleRejected: is_a links forming a cycle fail DAG validation.
func TestParse_CycleRejected(t *testing.T) {
	const in = `[Term]
id: HP:0

[Term]
id: HP:1
is_a: HP:0
is_a: HP:2

[Term]
id: HP:2
is_a: HP:1
`
	_, _, err := obo.Parse(strings.NewReader(in))
	require.ErrorIs(t, err, ontology.ErrCycleDetected)
}
