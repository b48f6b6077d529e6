// SPDX-License-Identifier: MIT

package cfg

import (
	"io"
	"math"

	"gopkg.in/yaml.v3"
	"tlog.app/go/errors"

	"github.com/katalvlaran/pbqpcfg/prob"
	"github.com/katalvlaran/pbqpcfg/satmath"
)

// functionDoc is the YAML form of a Function.
type functionDoc struct {
	Name   string     `yaml:"name"`
	Blocks []blockDoc `yaml:"blocks"`
}

type blockDoc struct {
	Name       string   `yaml:"name"`
	Succs      []string `yaml:"succs"`
	LandingPad bool     `yaml:"landingpad"`
}

// profileDoc is the YAML form of a Profile.
//
//	blocks: {entry: 100, body: 900}
//	edges:
//	  - {from: body, to: body, count: 800}
//	  - {from: body, to: exit, probability: 0.1}
type profileDoc struct {
	Blocks map[string]uint64 `yaml:"blocks"`
	Edges  []edgeDoc         `yaml:"edges"`
}

type edgeDoc struct {
	From        string   `yaml:"from"`
	To          string   `yaml:"to"`
	Count       *uint64  `yaml:"count"`
	Probability *float64 `yaml:"probability"`
}

// LoadFunction decodes a YAML function description.
// Blocks are created in document order, then edges in successor order.
func LoadFunction(r io.Reader) (*Function, error) {
	var doc functionDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode function")
	}
	if len(doc.Blocks) == 0 {
		return nil, errors.Wrap(ErrEmptyFunction, "function %q", doc.Name)
	}

	f := NewFunction(doc.Name)
	for _, bd := range doc.Blocks {
		if _, err := f.AddBlock(bd.Name); err != nil {
			return nil, errors.Wrap(err, "function %q", doc.Name)
		}
	}
	for i, bd := range doc.Blocks {
		for _, s := range bd.Succs {
			if err := f.AddEdge(bd.Name, s); err != nil {
				return nil, errors.Wrap(err, "function %q", doc.Name)
			}
		}
		f.blocks[i].landingPad = bd.LandingPad
	}

	return f, nil
}

// LoadProfile decodes YAML profile data for f.
//
// Edge counts of one source are turned into probabilities relative to the
// sum of that source's counted edges. An edge may carry either a count or a
// probability in [0, 1], not both.
func LoadProfile(r io.Reader, f *Function) (*Profile, error) {
	var doc profileDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode profile")
	}

	p := NewProfile(f)
	for name, freq := range doc.Blocks {
		b := f.Block(name)
		if b == nil {
			return nil, errors.Wrap(ErrUnknownBlock, "profile block %q", name)
		}
		p.SetBlockFreq(b, freq)
	}

	totals := make(map[*Block]uint64)
	for _, ed := range doc.Edges {
		from, to := f.Block(ed.From), f.Block(ed.To)
		if from == nil || to == nil {
			return nil, errors.Wrap(ErrUnknownBlock, "profile edge %q -> %q", ed.From, ed.To)
		}
		switch {
		case ed.Count != nil && ed.Probability != nil:
			return nil, errors.Wrap(ErrBadProfile, "edge %q -> %q has both count and probability", ed.From, ed.To)
		case ed.Count != nil:
			totals[from], _ = satmath.SaturatingAdd(totals[from], *ed.Count)
		case ed.Probability != nil:
			v := *ed.Probability
			if math.IsNaN(v) || v < 0 || v > 1 {
				return nil, errors.Wrap(ErrBadProfile, "edge %q -> %q probability %v", ed.From, ed.To, v)
			}
			p.SetEdgeProbability(from, to, prob.New(uint32(math.Round(v*(1<<31))), 1<<31))
		default:
			return nil, errors.Wrap(ErrBadProfile, "edge %q -> %q has no count or probability", ed.From, ed.To)
		}
	}

	for _, ed := range doc.Edges {
		if ed.Count == nil {
			continue
		}
		from, to := f.Block(ed.From), f.Block(ed.To)
		total := totals[from]
		if total == 0 {
			p.SetEdgeProbability(from, to, prob.Zero())
			continue
		}
		// repeated targets accumulate
		p.SetEdgeProbability(from, to, prob.FromCounts(countFor(doc.Edges, ed.From, ed.To), total))
	}

	return p, nil
}

func countFor(edges []edgeDoc, from, to string) uint64 {
	var sum uint64
	for _, ed := range edges {
		if ed.From == from && ed.To == to && ed.Count != nil {
			sum, _ = satmath.SaturatingAdd(sum, *ed.Count)
		}
	}

	return sum
}
