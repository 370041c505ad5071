package main

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vrg/builder"
	"github.com/katalvlaran/vrg/core"
	"github.com/katalvlaran/vrg/generate"
	"github.com/katalvlaran/vrg/grammar"
	"github.com/katalvlaran/vrg/graphio"
	"github.com/katalvlaran/vrg/store"
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a graph from a grammar",
		Long: `Generate replays a grammar into a new graph written as an edge list.

The grammar comes from exactly one of:
  --grammar FILE     a YAML grammar written by "vrg extract"
  --id UUID          a grammar in the --store database
  --synthetic SHAPES a graph built on the fly and extracted with the
                     extraction flags; SHAPES joins shapes with '+', e.g.
                     "cycle:6+grid:3x4+random:20:0.1"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path, _ := cmd.Flags().GetString("grammar")
			id, _ := cmd.Flags().GetString("id")
			synthetic, _ := cmd.Flags().GetString("synthetic")
			maxSteps, _ := cmd.Flags().GetInt("max-steps")

			var gr *grammar.Grammar
			switch {
			case path != "":
				in, err := openInput(cmd, path)
				if err != nil {
					return err
				}
				gr, err = grammar.Decode(in)
				in.Close()
				if err != nil {
					return errors.Wrapf(err, "reading grammar %s", path)
				}
			case id != "":
				gr, err = loadGrammar(cfg.Store, id)
				if err != nil {
					return err
				}
			case synthetic != "":
				g, err := syntheticGraph(synthetic, cfg.Seed)
				if err != nil {
					return err
				}
				if cfg.Name == "" {
					cfg.Name = synthetic
				}
				if gr, err = runExtraction(cmd, cfg, g); err != nil {
					return err
				}
			default:
				return errors.New("one of --grammar, --id or --synthetic is required")
			}

			if maxSteps < 1 {
				maxSteps = generate.DefaultMaxSteps
			}
			g, err := generate.Generate(gr,
				generate.WithSeed(cfg.Seed),
				generate.WithMaxSteps(maxSteps),
				generate.WithLogger(log.StandardLogger()),
			)
			if err != nil {
				return err
			}

			out, err := createOutput(cmd, cfg.Output)
			if err != nil {
				return err
			}
			defer out.Close()

			return graphio.WriteEdgeList(out, g)
		},
	}
	cmd.Flags().String("grammar", "", "YAML grammar file")
	cmd.Flags().String("id", "", "grammar ID in the store")
	cmd.Flags().String("synthetic", "", "synthetic graph to extract from")
	cmd.Flags().Int("max-steps", generate.DefaultMaxSteps, "replacement limit")
	addExtractFlags(cmd)

	return cmd
}

func loadGrammar(path, id string) (*grammar.Grammar, error) {
	if path == "" {
		return nil, errors.New("--store is required")
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrapf(err, "grammar id %q", id)
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.Get(uid)
}

// syntheticGraph builds the disjoint union of the shapes joined by "+", each
// shape's keys following the previous one's.
func syntheticGraph(shapes string, seed int64) (*core.Graph, error) {
	var cons []builder.Constructor
	offset := 0
	for _, shape := range strings.Split(shapes, "+") {
		c, n, err := parseShape(strings.TrimSpace(shape))
		if err != nil {
			return nil, err
		}
		cons = append(cons, builder.Offset(offset, c))
		offset += n
	}

	return builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, cons...)
}

// parseShape parses "name:args" and returns the constructor with its
// vertex count.
func parseShape(shape string) (builder.Constructor, int, error) {
	name, args, _ := strings.Cut(shape, ":")
	bad := errors.Errorf("bad shape %q", shape)

	if name == "grid" {
		rs, cs, ok := strings.Cut(args, "x")
		if !ok {
			return nil, 0, bad
		}
		r, err1 := strconv.Atoi(rs)
		c, err2 := strconv.Atoi(cs)
		if err1 != nil || err2 != nil {
			return nil, 0, bad
		}
		return builder.Grid(r, c), r * c, nil
	}

	if name == "random" {
		ns, ps, ok := strings.Cut(args, ":")
		if !ok {
			return nil, 0, bad
		}
		n, err1 := strconv.Atoi(ns)
		p, err2 := strconv.ParseFloat(ps, 64)
		if err1 != nil || err2 != nil {
			return nil, 0, bad
		}
		return builder.RandomSparse(n, p), n, nil
	}

	n, err := strconv.Atoi(args)
	if err != nil {
		return nil, 0, bad
	}
	switch name {
	case "path":
		return builder.Path(n), n, nil
	case "cycle":
		return builder.Cycle(n), n, nil
	case "star":
		return builder.Star(n), n, nil
	case "wheel":
		return builder.Wheel(n), n, nil
	case "complete":
		return builder.Complete(n), n, nil
	}

	return nil, 0, bad
}
