package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/bluesky-social/pdict/dict"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var cmdStress = &cli.Command{
	Name:  "stress",
	Usage: "run concurrent snapshot readers against a writer, using generated names",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "names",
			Usage: "number of names to insert before starting readers",
			Value: 5000,
		},
		&cli.IntFlag{
			Name:  "ops",
			Usage: "number of writer operations while readers are running",
			Value: 20000,
		},
		&cli.IntFlag{
			Name:  "readers",
			Usage: "number of concurrent reader goroutines",
			Value: 8,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed for name generation",
			Value: 1,
		},
	},
	Action: runStress,
}

type stressConfig struct {
	Names   int
	Ops     int
	Readers int
	Seed    int64
}

type stressResult struct {
	Versions  uint64
	Snapshots int64
	Final     int
}

func runStress(cctx *cli.Context) error {
	res, err := stress(cctx.Context, stressConfig{
		Names:   cctx.Int("names"),
		Ops:     cctx.Int("ops"),
		Readers: cctx.Int("readers"),
		Seed:    cctx.Int64("seed"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("versions=%d snapshots=%d final-size=%d\n", res.Versions, res.Snapshots, res.Final)
	return nil
}

// Writer adds and removes generated names while readers repeatedly capture snapshots and check that each one is a consistent, valid version.
func stress(ctx context.Context, cfg stressConfig) (*stressResult, error) {
	faker := gofakeit.New(cfg.Seed)
	d := dict.New[string, int]()

	names := []string{}
	for len(names) < cfg.Names {
		name := fmt.Sprintf("%s-%d", faker.LastName(), faker.Number(0, 999999))
		if err := d.Add(name, len(name)); err != nil {
			if errors.Is(err, dict.ErrDuplicateKey) {
				continue
			}
			return nil, err
		}
		names = append(names, name)
	}

	var done atomic.Bool
	var snapshots atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer done.Store(true)
		for i := 0; i < cfg.Ops; i++ {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if len(names) > 0 && faker.Bool() {
				idx := faker.Number(0, len(names)-1)
				found, err := d.Remove(names[idx])
				if err != nil {
					return err
				}
				if !found {
					return fmt.Errorf("name went missing: %s", names[idx])
				}
				names[idx] = names[len(names)-1]
				names = names[:len(names)-1]
				continue
			}
			name := fmt.Sprintf("%s-%d", faker.LastName(), faker.Number(0, 999999))
			err := d.Add(name, len(name))
			if errors.Is(err, dict.ErrDuplicateKey) {
				continue
			}
			if err != nil {
				return err
			}
			names = append(names, name)
		}
		return nil
	})

	for r := 0; r < cfg.Readers; r++ {
		eg.Go(func() error {
			for !done.Load() {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s := d.Snapshot()
				size := s.Len()
				if err := s.Verify(); err != nil {
					return err
				}
				count := 0
				for k, v := range s.All() {
					if len(k) != v {
						return fmt.Errorf("corrupt entry in version %d: %s", s.Version(), k)
					}
					count++
				}
				if count != size {
					return fmt.Errorf("version %d changed while reading: %d != %d", s.Version(), count, size)
				}
				snapshots.Add(1)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	slog.Info("stress run complete", "versions", d.Version(), "snapshots", snapshots.Load())
	return &stressResult{
		Versions:  d.Version(),
		Snapshots: snapshots.Load(),
		Final:     d.Len(),
	}, nil
}
