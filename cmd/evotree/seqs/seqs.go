// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package seqs is a metapackage for commands
// that deal with molecular sequences.
package seqs

import (
	"github.com/js-arias/command"
	"github.com/js-arias/evotree/cmd/evotree/seqs/add"
	"github.com/js-arias/evotree/cmd/evotree/seqs/list"
)

var Command = &command.Command{
	Usage: "seqs <command> [<argument>...]",
	Short: "commands for molecular sequences",
}

func init() {
	Command.Add(add.Command)
	Command.Add(list.Command)
}
