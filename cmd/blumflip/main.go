// Command blumflip runs the coin-toss simulator: both parties of the
// commitment-based coin-flipping protocol driven locally, with the classic
// teaching transcript on stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/commitlab/blumflip-go/internal/cli"
	"github.com/commitlab/blumflip-go/pkg/blumflip"
	"github.com/commitlab/blumflip-go/pkg/blumflip/flip"
	"github.com/commitlab/blumflip-go/pkg/blumflip/logging"
	"github.com/commitlab/blumflip-go/pkg/blumflip/pedersen"
	"github.com/commitlab/blumflip-go/pkg/blumflip/transcript"
)

func main() {
	runs := flag.Int("runs", 0, "number of runs; 0 prompts interactively")
	seed := flag.Int64("seed", 0, "deterministic seed for reproducible runs; 0 uses crypto randomness")
	quiet := flag.Bool("quiet", false, "suppress per-step transcript lines, print a summary instead")
	verbose := flag.Bool("v", false, "enable debug diagnostics on stderr")
	flag.Parse()

	ctx := context.Background()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	logger.Debug(ctx, "starting simulator", "version", blumflip.LibraryVersion())

	scheme := pedersen.NewMod7()
	group := scheme.Group()

	fmt.Printf("=== Coin Toss (Blum's protocol, Pedersen mod %d) ===\n", group.P)
	fmt.Println()
	fmt.Printf("Params: p=%d, G = {1..%d} (|G|=%d), g=%d\n", group.P, group.P-1, group.Order, group.G)
	fmt.Printf("Winner rule: If coin = 0 then %s wins; if coin = 1 then %s wins.\n",
		blumflip.RoleKeyHolder, blumflip.RoleCommitter)
	fmt.Println()

	n := *runs
	if n < 1 {
		n = cli.PromptRunCount(os.Stdin, os.Stdout)
	}
	fmt.Println()

	var src blumflip.RandomSource = blumflip.CryptoSource{}
	if *seed != 0 {
		src = blumflip.NewSeededSource(*seed)
		logger.Debug(ctx, "using seeded randomness", "seed", *seed)
	}

	var sink transcript.Sink = transcript.NewWriter(os.Stdout)
	if *quiet {
		sink = transcript.Discard
	}

	outcomes, err := cli.RunSeries(os.Stdout, n, flip.Params{
		Scheme: scheme,
		Rand:   src,
		Sink:   sink,
	})
	if err != nil {
		logger.Error(ctx, "series failed", "err", err)
		os.Exit(1)
	}

	if *quiet {
		var keyHolderWins, committerWins, aborts int
		for _, o := range outcomes {
			switch {
			case o.Aborted:
				aborts++
			case o.Winner == blumflip.RoleKeyHolder:
				keyHolderWins++
			default:
				committerWins++
			}
		}
		fmt.Printf("runs=%d  %s wins=%d  %s wins=%d  aborts=%d\n",
			len(outcomes), blumflip.RoleKeyHolder, keyHolderWins,
			blumflip.RoleCommitter, committerWins, aborts)
	}
}
