// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sim implements a command to simulate
// the evolutionary divergence of a set of taxa.
package sim

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/evotree/phytree"
	"github.com/js-arias/evotree/rates"
	"github.com/js-arias/timetree"
	"github.com/js-arias/timetree/simulate"
)

var Command = &command.Command{
	Usage: `sim [-o|--output <tree-file>] [--print]
	[--trees <number>] [--terms <range>] [--names <name>,...]
	[--age <range>] [--rate <value>]
	[--relaxed <function>] [--param <value>] [--cats <number>]`,
	Short: "simulate evolutionary divergence",
	Long: `
Command sim creates one or more random divergence trees and writes them in
Newick format, with branch lengths given as expected mutations per site.

Trees are simulated with a Yule process, with the speciation rate defined as
spRate = (ln(terms) - ln(2)) / rootAge.

By default, a single tree will be created. Use the flag --trees to define a
different number of trees.

By default, the age of the root will be selected between 5 and 10 million
years. Use the flag --age to define a different range. The range can be a
single number (all trees will have the same root age) or two numbers
separated by a comma; for example, "5,10" defines the default range.

By default, each tree will have between 4 and 8 terminals. Use the flag
--terms to define a range, with the same form as --age. As an alternative,
the flag --names can be given with a comma separated list of taxon names; in
that case each tree will have one terminal per name.

Branch lengths are the expected number of mutations per site on the branch:
the duration of the branch multiplied by the mutation rate, in mutations per
site per million years, defined with the flag --rate (by default 0.01). By
default a strict clock is used. Use the flag --relaxed, with a function name
("gamma" or "lognormal"), to scale each branch with a rate multiplier
selected among discrete categories of the function. The flag --param defines
the shape parameter of the function (alpha for gamma, sigma for lognormal, by
default 1.0), and the flag --cats the number of categories (by default 9).

By default, trees will be written to the file 'sim.nwk'. Use the flag
--output, or -o, to define a different file name. If the flag --print is set,
the trees will also be printed in the standard output.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var doPrint bool
var numTrees int
var termFlag string
var namesFlag string
var ageFlag string
var rate float64
var relaxed string
var param float64
var numCats int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "sim.nwk", "")
	c.Flags().StringVar(&output, "o", "sim.nwk", "")
	c.Flags().BoolVar(&doPrint, "print", false, "")
	c.Flags().IntVar(&numTrees, "trees", 1, "")
	c.Flags().StringVar(&termFlag, "terms", "4,8", "")
	c.Flags().StringVar(&namesFlag, "names", "", "")
	c.Flags().StringVar(&ageFlag, "age", "5,10", "")
	c.Flags().Float64Var(&rate, "rate", 0.01, "")
	c.Flags().StringVar(&relaxed, "relaxed", "", "")
	c.Flags().Float64Var(&param, "param", 1.0, "")
	c.Flags().IntVar(&numCats, "cats", 9, "")
}

const millionYears = 1_000_000

func run(c *command.Command, args []string) (err error) {
	minAge, maxAge, err := parseFloatRange(ageFlag)
	if err != nil {
		return err
	}
	if minAge <= 0 {
		return fmt.Errorf("invalid age range %q: ages must be positive", ageFlag)
	}

	var names []string
	minTerm, maxTerm := 0, 0
	if namesFlag != "" {
		for _, n := range strings.Split(namesFlag, ",") {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			names = append(names, n)
		}
		if len(names) < 2 {
			return fmt.Errorf("flag --names: at least two names required")
		}
		minTerm, maxTerm = len(names), len(names)
	} else {
		minTerm, maxTerm, err = parseIntRange(termFlag)
		if err != nil {
			return err
		}
		if minTerm < 2 {
			return fmt.Errorf("invalid terminal range %q: at least two terminals required", termFlag)
		}
	}

	var dd rates.Discrete = rates.Strict{}
	switch strings.ToLower(relaxed) {
	case "":
	case "gamma":
		dd, err = rates.NewGamma(param, numCats)
		if err != nil {
			return err
		}
	case "lognormal":
		dd, err = rates.NewLogNormal(param, numCats)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown function %q", relaxed)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	avgTerm := minTerm + (maxTerm-minTerm)/2
	for i := 0; i < numTrees; i++ {
		// simulate the tree
		var st *timetree.Tree
		for {
			root := int64(maxAge * millionYears)
			if d := int64((maxAge - minAge) * millionYears); d > 0 {
				root = rand.Int64N(d) + int64(minAge*millionYears)
			}

			spRate := (math.Log(float64(avgTerm)) - math.Log(2)) / (float64(root) / millionYears)
			st, _ = simulate.Yule(fmt.Sprintf("random-%d", i), spRate, root, maxTerm*2)
			if tm := len(st.Terms()); tm >= minTerm && tm <= maxTerm {
				break
			}
		}
		st.Format()

		t, err := mutationTree(st, dd.Cats(), names)
		if err != nil {
			return fmt.Errorf("on tree %d: %v", i+1, err)
		}
		if err := t.Newick(f); err != nil {
			return fmt.Errorf("while writing to %q: %v", output, err)
		}
		if doPrint {
			if err := t.Newick(c.Stdout()); err != nil {
				return err
			}
		}
	}
	return nil
}

// mutationTree converts a time calibrated tree
// into a divergence tree:
// each branch length is the duration of the branch
// multiplied by the mutation rate
// and a rate multiplier
// picked at random among the given categories.
// If names are given,
// the terminals are renamed in traversal order.
func mutationTree(st *timetree.Tree, cats []float64, names []string) (*phytree.Tree, error) {
	term := 0
	var convert func(id int) (*phytree.Node, error)
	convert = func(id int) (*phytree.Node, error) {
		if st.IsTerm(id) {
			name := st.Taxon(id)
			if names != nil {
				if term >= len(names) {
					return nil, fmt.Errorf("got more than %d terminals", len(names))
				}
				name = names[term]
				term++
			}
			return &phytree.Node{Name: name}, nil
		}

		n := &phytree.Node{}
		for _, cID := range st.Children(id) {
			child, err := convert(cID)
			if err != nil {
				return nil, err
			}
			mult := cats[rand.IntN(len(cats))]
			brLen := float64(st.Age(id)-st.Age(cID)) / millionYears
			n.Children = append(n.Children, phytree.Child{
				Node:   child,
				Length: brLen * rate * mult,
			})
		}
		return n, nil
	}

	root, err := convert(st.Root())
	if err != nil {
		return nil, err
	}
	return phytree.New(root)
}

func parseFloatRange(s string) (min, max float64, err error) {
	f := strings.Split(s, ",")
	if len(f) == 1 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid range %q: %v", s, err)
		}
		return v, v, nil
	}

	if len(f) != 2 {
		return 0, 0, fmt.Errorf("invalid range %q: expecting two values", s)
	}

	min, err = strconv.ParseFloat(f[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: %v", s, err)
	}

	max, err = strconv.ParseFloat(f[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: %v", s, err)
	}

	if max < min {
		min, max = max, min
	}

	return min, max, nil
}

func parseIntRange(s string) (min, max int, err error) {
	f := strings.Split(s, ",")
	if len(f) == 1 {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid range %q: %v", s, err)
		}
		return v, v, nil
	}

	if len(f) != 2 {
		return 0, 0, fmt.Errorf("invalid range %q: expecting two values", s)
	}

	min, err = strconv.Atoi(f[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: %v", s, err)
	}

	max, err = strconv.Atoi(f[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: %v", s, err)
	}

	if max < min {
		min, max = max, min
	}

	return min, max, nil
}
