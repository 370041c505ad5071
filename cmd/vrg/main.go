// Command vrg extracts vertex replacement grammars from graphs, stores them
// and replays them into new graphs.
//
//	vrg extract -g karate.txt --lambda 4 --mode part -o karate.yaml
//	vrg generate --grammar karate.yaml -o sample.txt
//	vrg generate --synthetic "wheel:7" --lambda 3
//	vrg grammars list --store vrg.db
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCommand(version).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
