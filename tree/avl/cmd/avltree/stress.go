package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.lepak.sg/trees/tree/avl"
	"golang.org/x/sync/errgroup"
)

// stress runs cfg.Rounds churn rounds, at most cfg.Workers at a time.
// Each round gets its own tree and seed. The first failing round
// cancels the rest and its error is returned.
func stress(ctx context.Context, cfg Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	seedrd := rand.New(rand.NewSource(cfg.Seed))

	bar := progressbar.NewOptions(cfg.Rounds,
		progressbar.OptionSetDescription(fmt.Sprintf("churning %d keys", cfg.Size)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)

	for i := 0; i < cfg.Rounds; i++ {
		// seeds are drawn up front so a run is repeatable
		// no matter how the rounds get scheduled
		round, seed := i, int64(seedrd.Uint64())

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := avl.Churn(cfg.Size, seed); err != nil {
				return fmt.Errorf("round %d (seed %d): %w", round, seed, err)
			}

			return bar.Add(1)
		})
	}

	return eg.Wait()
}
