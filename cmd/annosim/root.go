package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Phenomics/annotation-simulator/disease"
	"github.com/Phenomics/annotation-simulator/obo"
	"github.com/Phenomics/annotation-simulator/simulate"
	"github.com/Phenomics/annotation-simulator/termid"
)

// randomSuffix on the disease ID selects a disease uniformly at random
// (seed-derived), e.g. "*:RANDOM".
const randomSuffix = ":RANDOM"

var errDiseaseNotFound = errors.New("disease not annotated in input file")

// cliOptions collects every knob; YAML file values fill in flags the user
// did not set, flags win otherwise.
type cliOptions struct {
	HpoOBO           string  `yaml:"hpo_obo"`
	Annotations      string  `yaml:"annotations"`
	DiseaseID        string  `yaml:"disease_id"`
	Seed             int64   `yaml:"seed"`
	MinQuerySize     int     `yaml:"min_query_size"`
	MaxQuerySize     int     `yaml:"max_query_size"`
	NoiseFraction    float64 `yaml:"noise_fraction"`
	MapUpProbability float64 `yaml:"map_up_probability"`
}

func defaultOptions() cliOptions {
	cfg := simulate.DefaultConfig()

	return cliOptions{
		DiseaseID:        "DECIPHER:2",
		Seed:             cfg.Seed,
		MinQuerySize:     cfg.MinQuerySize,
		MaxQuerySize:     cfg.MaxQuerySize,
		NoiseFraction:    cfg.NoiseFraction,
		MapUpProbability: cfg.MapUpProbability,
	}
}

func newRootCmd() *cobra.Command {
	opts := defaultOptions()
	var configPath string

	cmd := &cobra.Command{
		Use:   "annosim",
		Short: "Simulate noisy phenotype queries from disease annotations",
		Long: `annosim perturbs a disease's phenotype-term annotations to emulate
clinician noise (unrelated findings) and imprecision (terms replaced by an
ancestor), producing benchmarking queries for phenotype matchers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				if err := mergeConfigFile(cmd, configPath, &opts); err != nil {
					return err
				}
			}

			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "optional YAML file with defaults for the flags below")
	flags.StringVar(&opts.HpoOBO, "hpo-obo", opts.HpoOBO, "path to the ontology OBO file (e.g. hp.obo)")
	flags.StringVar(&opts.Annotations, "annotations", opts.Annotations, "path to the disease annotation .tab file")
	flags.StringVar(&opts.DiseaseID, "disease-id", opts.DiseaseID, `disease to simulate, "DB:LOCAL" or "*:RANDOM"`)
	flags.Int64Var(&opts.Seed, "seed", opts.Seed, "random seed")
	flags.IntVar(&opts.MinQuerySize, "min-query-size", opts.MinQuerySize, "minimal simulated query size")
	flags.IntVar(&opts.MaxQuerySize, "max-query-size", opts.MaxQuerySize, "maximal simulated query size (target, not a hard cap)")
	flags.Float64Var(&opts.NoiseFraction, "noise-fraction", opts.NoiseFraction, "fraction of noise terms to inject, in [0,1]")
	flags.Float64Var(&opts.MapUpProbability, "map-up-probability", opts.MapUpProbability, "per-term chance of replacement by an ancestor, in [0,1]")

	return cmd
}

// mergeConfigFile applies YAML values to every flag the user left unset.
func mergeConfigFile(cmd *cobra.Command, path string, opts *cliOptions) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	fromFile := *opts
	if err := yaml.Unmarshal(raw, &fromFile); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("hpo-obo") {
		opts.HpoOBO = fromFile.HpoOBO
	}
	if !flags.Changed("annotations") {
		opts.Annotations = fromFile.Annotations
	}
	if !flags.Changed("disease-id") {
		opts.DiseaseID = fromFile.DiseaseID
	}
	if !flags.Changed("seed") {
		opts.Seed = fromFile.Seed
	}
	if !flags.Changed("min-query-size") {
		opts.MinQuerySize = fromFile.MinQuerySize
	}
	if !flags.Changed("max-query-size") {
		opts.MaxQuerySize = fromFile.MaxQuerySize
	}
	if !flags.Changed("noise-fraction") {
		opts.NoiseFraction = fromFile.NoiseFraction
	}
	if !flags.Changed("map-up-probability") {
		opts.MapUpProbability = fromFile.MapUpProbability
	}

	return nil
}

func run(opts cliOptions) error {
	if opts.HpoOBO == "" {
		return errors.New("no ontology file: set --hpo-obo or hpo_obo in --config")
	}
	if opts.Annotations == "" {
		return errors.New("no annotation file: set --annotations or annotations in --config")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	logger.Info("loading ontology", "path", opts.HpoOBO)
	dag, names, err := obo.ParseFile(opts.HpoOBO)
	if err != nil {
		return err
	}
	logger.Info("ontology loaded", "terms", dag.TermCount())

	logger.Info("loading disease annotations", "path", opts.Annotations)
	records, err := disease.ParseAnnotationFile(opts.Annotations)
	if err != nil {
		return err
	}
	logger.Info("annotations loaded", "diseases", len(records))

	diseaseID, err := resolveDiseaseID(opts, records)
	if err != nil {
		return err
	}
	record, ok := records[diseaseID]
	if !ok {
		return fmt.Errorf("%w: %s", errDiseaseNotFound, diseaseID)
	}

	modifier, err := simulate.NewModifier(dag,
		simulate.WithSeed(opts.Seed),
		simulate.WithQuerySize(opts.MinQuerySize, opts.MaxQuerySize),
		simulate.WithNoiseFraction(opts.NoiseFraction),
		simulate.WithMapUpProbability(opts.MapUpProbability),
	)
	if err != nil {
		return err
	}

	simulated, err := modifier.Simulate(record)
	if err != nil {
		return err
	}
	termid.SortIDs(simulated) // presentation order only

	printReport(os.Stdout, record, simulated, names)

	return nil
}

// resolveDiseaseID honors the ":RANDOM" suffix with a deterministic,
// seed-derived pick over the sorted disease corpus.
func resolveDiseaseID(opts cliOptions, records map[disease.ID]*disease.Annotated) (disease.ID, error) {
	if strings.HasSuffix(opts.DiseaseID, randomSuffix) {
		ids := disease.SortedIDs(records)
		if len(ids) == 0 {
			return disease.ID{}, errDiseaseNotFound
		}
		rng := rand.New(rand.NewSource(opts.Seed))

		return ids[rng.Intn(len(ids))], nil
	}

	return disease.ParseID(opts.DiseaseID)
}

func printReport(w *os.File, record *disease.Annotated, simulated []termid.TermID, names map[termid.TermID]string) {
	original := record.PositiveTermIDs()

	fmt.Fprintln(w, "disease ID:          ", record.ID())
	fmt.Fprintln(w, "disease name:        ", record.Name())
	fmt.Fprintln(w, "original terms:      ", strings.Join(termid.Strings(original), ", "))
	fmt.Fprintln(w, "original term names: ", strings.Join(termNames(original, names), ", "))
	fmt.Fprintln(w, "simulated terms:     ", strings.Join(termid.Strings(simulated), ", "))
	fmt.Fprintln(w, "simulated term names:", strings.Join(termNames(simulated, names), ", "))
}

func termNames(ids []termid.TermID, names map[termid.TermID]string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = names[id]
	}

	return out
}
