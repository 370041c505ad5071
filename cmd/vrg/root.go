package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vrg/config"
)

func newRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:          "vrg",
		Short:        "Extract and replay vertex replacement grammars",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().CountP("verbose", "v", "verbose output (-vv for trace)")
	root.PersistentFlags().String("store", "", "grammar database file")

	root.AddCommand(newExtractCommand(), newGenerateCommand(), newGrammarsCommand())

	return root
}

// loadConfig resolves the configuration of cmd and sets the log level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	switch {
	case cfg.Verbose >= 2:
		log.SetLevel(log.TraceLevel)
	case cfg.Verbose == 1:
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
	log.SetOutput(cmd.ErrOrStderr())

	return cfg, nil
}

// addExtractFlags registers the flags shared by extract and generate.
func addExtractFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("clustering", "c", config.ClusteringLouvain, "dendrogram source: louvain, random or file")
	f.StringP("tree", "t", "", "dendrogram file for --clustering file")
	f.Float64("resolution", 1, "Louvain resolution")
	f.IntP("lambda", "l", 4, "target cluster size")
	f.StringP("selection", "s", "level_mdl", "tie-break policy: random, mdl, level or level_mdl")
	f.StringP("mode", "m", "part", "boundary information: full, part or no")
	f.StringP("algorithm", "a", config.AlgorithmGreedy, "extraction driver: greedy or mdl")
	f.StringP("name", "n", "", "grammar name")
	f.Int64("seed", 1, "random seed")
	f.StringP("output", "o", "", "output file (default stdout)")
}

// openInput opens path for reading; "" and "-" mean stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}

	return f, nil
}

// createOutput opens path for writing; "" and "-" mean stdout.
func createOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", path)
	}

	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
