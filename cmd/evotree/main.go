// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// EvoTree is a tool to build phylogenetic trees
// from molecular sequences.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/evotree/cmd/evotree/build"
	"github.com/js-arias/evotree/cmd/evotree/draw"
	"github.com/js-arias/evotree/cmd/evotree/matrix"
	"github.com/js-arias/evotree/cmd/evotree/nodes"
	"github.com/js-arias/evotree/cmd/evotree/scores"
	"github.com/js-arias/evotree/cmd/evotree/seqs"
	"github.com/js-arias/evotree/cmd/evotree/sim"
	"github.com/js-arias/evotree/cmd/evotree/stats"
)

var app = &command.Command{
	Usage: "evotree <command> [<argument>...]",
	Short: "a tool to build phylogenetic trees from sequences",
}

func init() {
	app.Add(build.Command)
	app.Add(draw.Command)
	app.Add(matrix.Command)
	app.Add(nodes.Command)
	app.Add(scores.Command)
	app.Add(seqs.Command)
	app.Add(sim.Command)
	app.Add(stats.Command)
}

func main() {
	app.Main()
}
