package simulate_test

import (
	"fmt"

	"github.com/Phenomics/annotation-simulator/ontology"
	"github.com/Phenomics/annotation-simulator/simulate"
	"github.com/Phenomics/annotation-simulator/termid"
)

// diseaseTerms is a tiny AnnotationSource for the examples.
type diseaseTerms []termid.TermID

func (d diseaseTerms) PositiveTermIDs() []termid.TermID { return d }

// ExampleModifier_Simulate shows the zero-noise, zero-imprecision
// configuration reproducing the annotation unchanged: both perturbation
// knobs at 0 are explicit fast paths, and a one-term query cannot be
// reordered by subsampling.
func ExampleModifier_Simulate() {
	// Seizure ← Neurological ← All (root), a three-node toy hierarchy.
	root := termid.New("HP", "0000001")
	neuro := termid.New("HP", "0000707")
	seizure := termid.New("HP", "0001250")

	dag := ontology.NewDAG(root)
	_ = dag.AddTerm(neuro, root)
	_ = dag.AddTerm(seizure, neuro)

	mod, err := simulate.NewModifier(dag,
		simulate.WithQuerySize(1, 1),
		simulate.WithNoiseFraction(0),
		simulate.WithMapUpProbability(0),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, err := mod.Simulate(diseaseTerms{seizure})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(termid.Strings(out))
	// Output:
	// [HP:0001250]
}

// ExampleModifier_Simulate_mapUp forces imprecision: with probability 1 the
// single annotated term is replaced by an ancestor, and the root is never a
// candidate. In this chain the only eligible ancestor is HP:0000707.
func ExampleModifier_Simulate_mapUp() {
	root := termid.New("HP", "0000001")
	neuro := termid.New("HP", "0000707")
	seizure := termid.New("HP", "0001250")

	dag := ontology.NewDAG(root)
	_ = dag.AddTerm(neuro, root)
	_ = dag.AddTerm(seizure, neuro)

	mod, err := simulate.NewModifier(dag,
		simulate.WithQuerySize(1, 1),
		simulate.WithNoiseFraction(0),
		simulate.WithMapUpProbability(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, err := mod.Simulate(diseaseTerms{seizure})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(termid.Strings(out))
	// Output:
	// [HP:0000707]
}
