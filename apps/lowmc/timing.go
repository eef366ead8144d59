//
// timing.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/markkurossi/tabulate"
	"golang.org/x/sync/errgroup"

	"github.com/markkurossi/picnic/env"
	"github.com/markkurossi/picnic/lowmc"
	"github.com/markkurossi/picnic/zkbpp"
)

// FileSize renders byte counts in decimal units.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Sample contains the timing of one backend.
type Sample struct {
	Backend zkbpp.Backend
	Prove   time.Duration
	Verify  time.Duration
	Views   uint64
}

// Total returns the total time of the sample.
func (s *Sample) Total() time.Duration {
	return s.Prove + s.Verify
}

func benchmark(config *env.Config, params *lowmc.Params,
	backends []zkbpp.Backend, count, workers int) error {

	if workers < 1 {
		workers = 1
	}
	var samples []*Sample
	for _, b := range backends {
		engine, err := zkbpp.New(params, b)
		if err != nil {
			return err
		}
		sample, err := runSample(config, engine, count, workers)
		if err != nil {
			return err
		}
		samples = append(samples, sample)
	}
	printSamples(params, count, samples)
	return nil
}

func runSample(config *env.Config, engine zkbpp.Engine, count,
	workers int) (*Sample, error) {

	params := engine.Params()
	key := make([]byte, params.KeyBytes())
	pt := make([]byte, params.BlockBytes())

	var prove, verify, views atomic.Int64
	var next atomic.Int64

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for next.Add(1) <= int64(count) {
				p, err := newProof(config, params, key, pt)
				if err != nil {
					return err
				}
				start := time.Now()
				shares, v := p.prove(engine)
				proved := time.Now()
				err = p.verify(engine, 0, shares, v)
				if err != nil {
					return err
				}
				prove.Add(int64(proved.Sub(start)))
				verify.Add(int64(time.Since(proved)))
				for _, view := range v {
					views.Add(int64(len(view.Bytes())))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	config.Debugf("%s: %d iterations with %d workers",
		engine, count, workers)

	return &Sample{
		Backend: engine.Backend(),
		Prove:   time.Duration(prove.Load()),
		Verify:  time.Duration(verify.Load()),
		Views:   uint64(views.Load()),
	}, nil
}

func printSamples(params *lowmc.Params, count int, samples []*Sample) {
	if len(samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Backend").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("Op").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Views").SetAlign(tabulate.MR)

	var total time.Duration
	for _, sample := range samples {
		total += sample.Total()
	}

	for _, sample := range samples {
		row := tab.Row()
		row.Column(sample.Backend.String())
		row.Column(sample.Total().String())
		row.Column((sample.Total() / time.Duration(count)).String())
		row.Column(fmt.Sprintf("%.2f%%",
			float64(sample.Total())/float64(total)*100))
		row.Column(FileSize(sample.Views).String())

		subs := []struct {
			label string
			d     time.Duration
		}{
			{"├╴Prove", sample.Prove},
			{"╰╴Verify", sample.Verify},
		}
		for _, sub := range subs {
			row := tab.Row()
			row.Column(sub.label).SetFormat(tabulate.FmtItalic)
			row.Column(sub.d.String()).SetFormat(tabulate.FmtItalic)
			row.Column((sub.d / time.Duration(count)).String()).
				SetFormat(tabulate.FmtItalic)
			row.Column(fmt.Sprintf("%.2f%%",
				float64(sub.d)/float64(sample.Total())*100)).
				SetFormat(tabulate.FmtItalic)
		}
	}
	row := tab.Row()
	row.Column(params.String()).SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)

	tab.Print(os.Stdout)
}
