package main

import (
	"math/rand"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vrg/config"
	"github.com/katalvlaran/vrg/core"
	"github.com/katalvlaran/vrg/dendrogram"
	"github.com/katalvlaran/vrg/extract"
	"github.com/katalvlaran/vrg/grammar"
	"github.com/katalvlaran/vrg/graphio"
	"github.com/katalvlaran/vrg/store"
)

func newExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a grammar from an edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			in, err := openInput(cmd, cfg.Graph)
			if err != nil {
				return err
			}
			g, err := graphio.ReadEdgeList(in)
			in.Close()
			if err != nil {
				return errors.Wrapf(err, "reading graph %s", cfg.Graph)
			}

			gr, err := runExtraction(cmd, cfg, g)
			if err != nil {
				return err
			}
			if err = saveGrammar(cfg, gr); err != nil {
				return err
			}

			out, err := createOutput(cmd, cfg.Output)
			if err != nil {
				return err
			}
			defer out.Close()

			return errors.Wrap(grammar.Encode(out, gr), "writing grammar")
		},
	}
	cmd.Flags().StringP("graph", "g", "", "edge-list file (default stdin)")
	addExtractFlags(cmd)

	return cmd
}

// runExtraction clusters g as configured and extracts its grammar. g is
// consumed.
func runExtraction(cmd *cobra.Command, cfg *config.Config, g *core.Graph) (*grammar.Grammar, error) {
	if g.Order() == 0 {
		return nil, errors.New("graph has no vertices")
	}
	mode, err := cfg.ParsedMode()
	if err != nil {
		return nil, err
	}
	selection, err := cfg.ParsedSelection()
	if err != nil {
		return nil, err
	}

	tree, err := buildTree(cmd, cfg, g)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"clustering": cfg.Clustering,
		"nodes":      tree.Len(),
	}).Debug("dendrogram ready")

	name := cfg.Name
	if name == "" {
		name = cfg.Graph
	}
	next := 0.25
	opts := []extract.Option{
		extract.WithLambda(cfg.Lambda),
		extract.WithMode(mode),
		extract.WithSelection(selection),
		extract.WithSeed(cfg.Seed),
		extract.WithName(name),
		extract.WithClustering(cfg.Clustering),
		extract.WithLogger(log.StandardLogger()),
		extract.WithProgress(func(p float64) {
			for p >= next {
				log.Infof("extraction %.0f%% done", 100*next)
				next += 0.25
			}
		}),
	}

	if cfg.Algorithm == config.AlgorithmMDL {
		return extract.ExtractMDL(g, tree, opts...)
	}

	return extract.Extract(g, tree, opts...)
}

func buildTree(cmd *cobra.Command, cfg *config.Config, g *core.Graph) (*dendrogram.Tree, error) {
	switch cfg.Clustering {
	case config.ClusteringRandom:
		return dendrogram.Random(g.Vertices(), rand.New(rand.NewSource(cfg.Seed)))
	case config.ClusteringFile:
		in, err := openInput(cmd, cfg.Tree)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		tree, err := dendrogram.ReadTree(in)
		return tree, errors.Wrapf(err, "reading tree %s", cfg.Tree)
	default:
		return dendrogram.Louvain(g, cfg.Resolution)
	}
}

func saveGrammar(cfg *config.Config, gr *grammar.Grammar) error {
	if cfg.Store == "" {
		return nil
	}
	s, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer s.Close()
	if err = s.Put(gr); err != nil {
		return err
	}
	log.WithFields(log.Fields{"id": gr.ID, "store": cfg.Store}).Info("grammar stored")

	return nil
}
