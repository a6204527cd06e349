// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// the distance matrix of an EvoTree project
// as a heat map image.
package draw

import (
	"fmt"
	"image/png"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/evotree/distmap"
	"github.com/js-arias/evotree/dmatrix"
	"github.com/js-arias/evotree/project"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `draw [--box <value>] [--gray] [--profile]
	[-o|--output <out-prefix>] <project-file>`,
	Short: "draw the project distance matrix as a heat map",
	Long: `
Command draw reads the distance matrix of an EvoTree project and draws it as
a PNG-encoded heat map, one cell per taxon pair, with the cell color scaled
by the largest distance of the matrix.

The argument of the command is the name of the project file. If the project
does not define a distance matrix, the matrix will be built from the project
sequences (see command 'matrix'), but it will not be stored.

By default, each cell will be 16 pixels wide; use the flag --box to define a
different size. By default, a color gradient will be used; if the flag --gray
is given, the heat map will be drawn in gray scale.

If the flag --profile is given, a bar chart with the mean divergence of each
taxon will also be drawn, as a PNG file.

By default, output files will be named 'matrix.png' and 'profile.png'. Use
the flag -o, or --output, to define a prefix for the file names.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var boxSize int
var grayScale bool
var profile bool
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&boxSize, "box", 16, "")
	c.Flags().BoolVar(&grayScale, "gray", false, "")
	c.Flags().BoolVar(&profile, "profile", false, "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	m, err := readMatrix(p)
	if err != nil {
		return err
	}

	img := &distmap.Image{
		Matrix: m,
		Box:    boxSize,
		Gray:   grayScale,
	}
	img.Format()
	if err := writePNG(img, outName("matrix.png")); err != nil {
		return err
	}

	if profile {
		if err := drawProfile(m, outName("profile.png")); err != nil {
			return err
		}
	}
	return nil
}

func outName(name string) string {
	if outPrefix == "" {
		return name
	}
	return fmt.Sprintf("%s-%s", outPrefix, name)
}

func readMatrix(p *project.Project) (*dmatrix.Matrix, error) {
	if p.Path(project.DistMatrix) != "" {
		return p.Matrix()
	}

	coll, err := p.Sequences()
	if err != nil {
		return nil, err
	}
	ap, err := p.Scores()
	if err != nil {
		return nil, err
	}
	return dmatrix.Build(coll, ap.Scoring())
}

func writePNG(img *distmap.Image, name string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}

// drawProfile draws a bar chart
// with the mean divergence of each taxon.
func drawProfile(m *dmatrix.Matrix, name string) error {
	names := m.Names()
	vals := make(plotter.Values, len(names))
	for i := range names {
		var sum float64
		for j := range names {
			sum += m.At(i, j)
		}
		vals[i] = sum / float64(len(names)-1)
	}

	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return err
	}

	plt := plot.New()
	plt.Y.Label.Text = "mean divergence"
	plt.Add(bars)
	plt.NominalX(names...)
	if err := plt.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
