package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	decisiontrees "github.com/iRapha/decision-trees"
	"github.com/iRapha/decision-trees/attribute"
	"github.com/iRapha/decision-trees/attribute/yaml"
	"github.com/iRapha/decision-trees/dataset"
	"github.com/iRapha/decision-trees/dataset/csv"
	"github.com/iRapha/decision-trees/dataset/mongodataset"
	"github.com/iRapha/decision-trees/dataset/sqldataset"
	"github.com/iRapha/decision-trees/dataset/sqldataset/pgadapter"
	"github.com/iRapha/decision-trees/dataset/sqldataset/sqlite3adapter"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
)

type classifyCmdConfig struct {
	*rootCmdConfig
	dataInput            string
	metadataInput        string
	samplesInput         string
	labelColumn          string
	truthLabel           string
	table                string
	maxDepth             int
	maxDBConns           int
	cpuIntensivePairs    bool
	memoryIntensivePairs bool
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Grow a tree from labeled data and classify examples",
		Long:  `Grow a binary decision tree from a set of labeled data and use it to classify examples.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			attributes, generator, err := yaml.ReadAttributesFromFile(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			pairs, err := config.trainingPairs(ctx, attributes)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			grower := decisiontrees.New(attributes, generator, config.truthLabel)
			if config.maxDepth > 0 {
				grower.MaxDepth = config.maxDepth
			}
			config.Logf("Growing tree from %d pairs and %d attributes to decide %s == %s ...", len(pairs), len(attributes), config.labelColumn, config.truthLabel)
			t, err := grower.Grow(ctx, config.dataset(pairs))
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
			config.Logf("%v", t)
			examples, err := config.examples(attributes, pairs)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			for _, e := range examples {
				verdict, err := t.Predict(ctx, e)
				if err != nil {
					fmt.Fprintf(os.Stderr, "classifying %v: %v\n", e, err)
					os.Exit(6)
				}
				fmt.Printf("%v: %t\n", e, verdict)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL (postgresql://...) or MongoDB (mongodb://...) connection URL with labeled data to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes and binary tests available on the input (required)")
	cmd.PersistentFlags().StringVarP(&(config.samplesInput), "samples", "s", "", "path to a CSV file with unlabeled examples to classify (defaults to re-classifying the training examples)")
	cmd.PersistentFlags().StringVarP(&(config.labelColumn), "label", "l", "", "name of the column or field holding the example labels (required)")
	cmd.PersistentFlags().StringVarP(&(config.truthLabel), "truth-label", "t", "", "label value the tree answers true for (required)")
	cmd.PersistentFlags().StringVar(&(config.table), "table", "samples", "table or collection the labeled data is read from, for database inputs")
	cmd.PersistentFlags().IntVar(&(config.maxDepth), "max-depth", 0, "limit to the depth of the grown tree (defaults to 0: the built-in limit)")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	cmd.PersistentFlags().BoolVar(&(config.memoryIntensivePairs), "memory-intensive", false, "force the use of memory-intensive partitioning to decrease time at the cost of increasing memory use")
	cmd.PersistentFlags().BoolVar(&(config.cpuIntensivePairs), "cpu-intensive", false, "force the use of cpu-intensive partitioning to decrease memory use at the cost of increasing time")
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if ccc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if ccc.labelColumn == "" {
		return fmt.Errorf("required label flag was not set")
	}
	if ccc.truthLabel == "" {
		return fmt.Errorf("required truth-label flag was not set")
	}
	if ccc.cpuIntensivePairs && ccc.memoryIntensivePairs {
		return fmt.Errorf("cannot set both memory-intensive and cpu-intensive flags at the same time")
	}
	return nil
}

func (ccc *classifyCmdConfig) dataset(pairs []dataset.Pair) dataset.Dataset {
	if ccc.memoryIntensivePairs {
		return dataset.NewMemoryIntensive(pairs)
	}
	if ccc.cpuIntensivePairs {
		return dataset.NewCPUIntensive(pairs)
	}
	return dataset.New(pairs)
}

func (ccc *classifyCmdConfig) trainingPairs(ctx context.Context, attributes []attribute.Attribute) ([]dataset.Pair, error) {
	if strings.HasPrefix(ccc.dataInput, "postgresql://") {
		return ccc.postgreSQLTrainingPairs(ctx, attributes)
	}
	if strings.HasPrefix(ccc.dataInput, "mongodb://") {
		return ccc.mongoDBTrainingPairs(ctx, attributes)
	}
	if strings.HasSuffix(ccc.dataInput, ".db") {
		return ccc.sqlite3TrainingPairs(ctx, attributes)
	}
	if ccc.dataInput == "" {
		ccc.Logf("Reading training pairs from STDIN...")
	} else {
		ccc.Logf("Opening %s to read training pairs...", ccc.dataInput)
	}
	return csv.ReadPairsFromFilePath(ccc.dataInput, attributes, ccc.labelColumn)
}

func (ccc *classifyCmdConfig) sqlite3TrainingPairs(ctx context.Context, attributes []attribute.Attribute) ([]dataset.Pair, error) {
	ccc.Logf("Creating SQLite3 adapter for file %s to read training pairs...", ccc.dataInput)
	adapter, err := sqlite3adapter.New(ccc.dataInput, ccc.maxDBConns)
	if err != nil {
		return nil, err
	}
	defer adapter.Close()
	return sqldataset.ReadPairs(ctx, adapter, ccc.table, attributes, ccc.labelColumn)
}

func (ccc *classifyCmdConfig) postgreSQLTrainingPairs(ctx context.Context, attributes []attribute.Attribute) ([]dataset.Pair, error) {
	ccc.Logf("Creating PostgreSQL adapter for url %s to read training pairs...", ccc.dataInput)
	adapter, err := pgadapter.New(ccc.dataInput)
	if err != nil {
		return nil, err
	}
	defer adapter.Close()
	return sqldataset.ReadPairs(ctx, adapter, ccc.table, attributes, ccc.labelColumn)
}

func (ccc *classifyCmdConfig) mongoDBTrainingPairs(ctx context.Context, attributes []attribute.Attribute) ([]dataset.Pair, error) {
	ccc.Logf("Connecting to MongoDB at %s to read training pairs...", ccc.dataInput)
	session, err := mgo.Dial(ccc.dataInput)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %v", ccc.dataInput, err)
	}
	defer session.Close()
	return mongodataset.ReadPairs(ctx, session, ccc.table, attributes, ccc.labelColumn)
}

func (ccc *classifyCmdConfig) examples(attributes []attribute.Attribute, pairs []dataset.Pair) ([]attribute.Example, error) {
	if ccc.samplesInput == "" {
		examples := make([]attribute.Example, 0, len(pairs))
		for _, p := range pairs {
			examples = append(examples, p.Example)
		}
		return examples, nil
	}
	ccc.Logf("Opening %s to read examples to classify...", ccc.samplesInput)
	return csv.ReadExamplesFromFilePath(ccc.samplesInput, attributes)
}
