package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	decisiontrees "github.com/iRapha/decision-trees"
	"github.com/iRapha/decision-trees/attribute/yaml"
	"github.com/spf13/cobra"
)

type gainCmdConfig struct {
	*classifyCmdConfig
}

func gainCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &gainCmdConfig{&classifyCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "gain",
		Short: "Report the information gain of every attribute",
		Long:  `Report the information gain the binary test of every attribute achieves over the labeled input data, most informative first.`,
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
			ds := config.dataset(pairs)
			gains := make([]attributeGain, 0, len(attributes))
			for _, a := range attributes {
				t, err := generator.TestFor(a)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
				g, err := decisiontrees.Gain(ctx, ds, t, config.truthLabel)
				if err != nil {
					fmt.Fprintf(os.Stderr, "computing gain for %s: %v\n", a.Name(), err)
					os.Exit(5)
				}
				gains = append(gains, attributeGain{a.Name(), t, g})
			}
			sort.SliceStable(gains, func(i, j int) bool {
				return gains[i].gain > gains[j].gain
			})
			for _, ag := range gains {
				fmt.Printf("%f bits\t%s\t{ %v }\n", ag.gain, ag.name, ag.test)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL (postgresql://...) or MongoDB (mongodb://...) connection URL with labeled data (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes and binary tests available on the input (required)")
	cmd.PersistentFlags().StringVarP(&(config.labelColumn), "label", "l", "", "name of the column or field holding the example labels (required)")
	cmd.PersistentFlags().StringVarP(&(config.truthLabel), "truth-label", "t", "", "label value treated as the positive class (required)")
	cmd.PersistentFlags().StringVar(&(config.table), "table", "samples", "table or collection the labeled data is read from, for database inputs")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

type attributeGain struct {
	name string
	test interface{}
	gain float64
}

func (gcc *gainCmdConfig) Validate() error {
	if gcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if gcc.labelColumn == "" {
		return fmt.Errorf("required label flag was not set")
	}
	if gcc.truthLabel == "" {
		return fmt.Errorf("required truth-label flag was not set")
	}
	return nil
}
