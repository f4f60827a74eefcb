package main

import (
	"fmt"

	"github.com/bluesky-social/pdict/dict"
	"github.com/bluesky-social/pdict/internal/census"
	"github.com/bluesky-social/pdict/pbst"
	"github.com/bluesky-social/pdict/render"

	"github.com/urfave/cli/v2"
)

func loadTable(cctx *cli.Context) (*dict.Dictionary[string, census.NameInformation], error) {
	p := cctx.Args().First()
	if p == "" {
		return nil, fmt.Errorf("need to provide path to name table")
	}
	return census.LoadFile(p, cctx.Int("limit"))
}

func runLookup(cctx *cli.Context) error {
	d, err := loadTable(cctx)
	if err != nil {
		return err
	}
	names := cctx.Args().Tail()
	if len(names) == 0 {
		return fmt.Errorf("need to provide at least one name")
	}
	for _, raw := range names {
		ok, info, err := d.TryGetValue(census.NormalizeName(raw))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("%s\tnot found\n", census.NormalizeName(raw))
			continue
		}
		fmt.Printf("%s\t%.3f\t%d\n", info.Name, info.Frequency, info.Rank)
	}
	return nil
}

func runRemove(cctx *cli.Context) error {
	d, err := loadTable(cctx)
	if err != nil {
		return err
	}
	names := cctx.Args().Tail()
	if len(names) == 0 {
		return fmt.Errorf("need to provide at least one name")
	}
	before := d.Snapshot()
	for _, raw := range names {
		found, err := d.Remove(census.NormalizeName(raw))
		if err != nil {
			return err
		}
		fmt.Printf("%s\tremoved=%t\n", census.NormalizeName(raw), found)
	}
	if cctx.Bool("draw") {
		fmt.Println("-----")
		fmt.Print(render.Tree(before.Root()))
		fmt.Println("-----")
		fmt.Print(render.Tree(d.Root()))
	}
	return nil
}

func runDraw(cctx *cli.Context) error {
	d, err := loadTable(cctx)
	if err != nil {
		return err
	}
	opts := render.Options[string, census.NameInformation]{
		MaxDepth: cctx.Int("max-depth"),
	}
	if cctx.Bool("values") {
		opts.Format = func(_ string, info census.NameInformation) string {
			return info.String()
		}
	}
	fmt.Print(render.TreeWithOptions(d.Root(), opts))
	return nil
}

func runVerify(cctx *cli.Context) error {
	d, err := loadTable(cctx)
	if err != nil {
		return err
	}
	s := d.Snapshot()
	if err := s.Verify(); err != nil {
		return err
	}
	first, _, _ := pbst.Min(s.Root())
	last, _, _ := pbst.Max(s.Root())
	fmt.Printf("verified tree: names=%d height=%d first=%s last=%s\n", s.Len(), s.Root().Height(), first, last)
	return nil
}
