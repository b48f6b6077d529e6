package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/katalvlaran/pbqpcfg/pbqp"
)

// costsDoc is the YAML form of a cost table file:
//
//	vectors:
//	  - [0, 1, .inf]
//	matrices:
//	  - [[0, 0], [0, .inf]]
type costsDoc struct {
	Vectors  [][]float64   `yaml:"vectors"`
	Matrices [][][]float64 `yaml:"matrices"`
}

type (
	vectorPool = pbqp.Pool[*pbqp.MDVector[pbqp.OptionsMetadata]]
	matrixPool = pbqp.Pool[*pbqp.MDMatrix[pbqp.MatrixMetadata]]
)

// runCosts interns every cost value of the file and prints it with its
// hash and register-allocation metadata, then the pool sizes.
func runCosts(ctx context.Context, w io.Writer, path string) (err error) {
	tr := tlog.SpanFromContext(ctx)

	doc, err := loadCosts(path)
	if err != nil {
		return errors.Wrap(err, "costs %v", path)
	}

	vp := pbqp.NewPool[*pbqp.MDVector[pbqp.OptionsMetadata]]()
	mp := pbqp.NewPool[*pbqp.MDMatrix[pbqp.MatrixMetadata]]()

	// Malformed tables panic inside pbqp; report them as errors here.
	defer func() {
		if p := recover(); p != nil {
			perr, ok := p.(error)
			if !ok {
				panic(p)
			}
			err = errors.Wrap(perr, "costs %v", path)
		}
	}()

	if err := printVectors(w, vp, doc.Vectors); err != nil {
		return err
	}
	if err := printMatrices(w, mp, doc.Matrices); err != nil {
		return err
	}

	tr.Printw("costs interned", "file", path, "vectors", len(doc.Vectors), "distinct_vectors", vp.Len(),
		"matrices", len(doc.Matrices), "distinct_matrices", mp.Len())

	_, err = fmt.Fprintf(w, "pool: %d/%d vectors, %d/%d matrices\n", vp.Len(), len(doc.Vectors), mp.Len(), len(doc.Matrices))

	return err
}

func printVectors(w io.Writer, pool *vectorPool, rows [][]float64) error {
	for i, vals := range rows {
		v := pbqp.NewMDVectorMove(pbqp.VectorOf(vals...), pbqp.AllowedOptions)
		ref := pool.Get(v)
		md := ref.Value().Metadata()

		_, err := fmt.Fprintf(w, "vector %d: %v hash=%016x opts=%d disallowed=%d refs=%d\n",
			i, v, ref.Hash(), md.NumOpts, md.NumDisallowed, ref.Refs())
		if err != nil {
			return errors.Wrap(err, "write")
		}
	}

	return nil
}

func printMatrices(w io.Writer, pool *matrixPool, tables [][][]float64) error {
	for i, rows := range tables {
		m := pbqp.NewMDMatrixMove(pbqp.MatrixOf(rows), pbqp.InterferenceMetadata)
		ref := pool.Get(m)
		md := ref.Value().Metadata()

		_, err := fmt.Fprintf(w, "matrix %d: %dx%d hash=%016x worst_row=%d worst_col=%d refs=%d\n%v",
			i, m.Rows(), m.Cols(), ref.Hash(), md.WorstRow, md.WorstCol, ref.Refs(), m)
		if err != nil {
			return errors.Wrap(err, "write")
		}
	}

	return nil
}

func loadCosts(path string) (*costsDoc, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer file.Close()

	var doc costsDoc
	if err := yaml.NewDecoder(file).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode")
	}

	return &doc, nil
}
