package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/katalvlaran/pbqpcfg/cfg"
	"github.com/katalvlaran/pbqpcfg/cfgmst"
)

// runMST loads each CFG file, builds its spanning tree and writes the dump
// followed by the edges that need counters.
func runMST(ctx context.Context, w io.Writer, paths []string, profile string, debug bool) error {
	if profile != "" && len(paths) != 1 {
		return errors.New("--profile needs exactly one CFG file, got %d", len(paths))
	}

	for _, path := range paths {
		if err := mstFile(ctx, w, path, profile, debug); err != nil {
			return errors.Wrap(err, "mst %v", path)
		}
	}

	return nil
}

func mstFile(ctx context.Context, w io.Writer, path, profile string, debug bool) error {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "mst", "file", path)
	defer tr.Finish()

	f, err := loadFunction(path)
	if err != nil {
		return err
	}

	opts := []cfgmst.Option{}
	if debug {
		opts = append(opts, cfgmst.WithSpan(tlog.SpanFromContext(ctx)))
	}

	if profile != "" {
		p, err := loadProfile(profile, f)
		if err != nil {
			return err
		}
		opts = append(opts, cfgmst.WithBlockFrequencies(p), cfgmst.WithBranchProbabilities(p))
	}

	m := cfgmst.New(f, opts...)
	tr.Printw("tree built", "func", f.Name(), "nodes", m.NumNodes(), "edges", len(m.Edges()), "counters", len(m.InstrumentedEdges()))

	if err := m.Dump(w, "Function: "+f.Name()); err != nil {
		return err
	}

	for _, e := range m.InstrumentedEdges() {
		if _, err := fmt.Fprintf(w, "counter: %v -> %v\n", e.Src, e.Dst); err != nil {
			return errors.Wrap(err, "write")
		}
	}

	return nil
}

func loadFunction(path string) (*cfg.Function, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open cfg")
	}
	defer file.Close()

	return cfg.LoadFunction(file)
}

func loadProfile(path string, f *cfg.Function) (*cfg.Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open profile")
	}
	defer file.Close()

	return cfg.LoadProfile(file, f)
}
