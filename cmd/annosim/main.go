// Command annosim simulates noisy, imprecise phenotype queries for a
// disease: it loads an OBO ontology and a disease annotation file, perturbs
// the chosen disease's annotations, and prints the simulated query.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "annosim:", err)
		os.Exit(1)
	}
}
