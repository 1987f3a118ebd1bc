/*
 * plot.go, part of structio.
 *
 * Copyright 2025 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package contact

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// grid lets a gonum matrix be drawn as a heat map, with the column index
// on the X axis and the row index on the Y axis.
type grid struct {
	mat.Matrix
}

func (g grid) Dims() (c, r int) {
	r, c = g.Matrix.Dims()
	return c, r
}

func (g grid) Z(c, r int) float64 { return g.Matrix.At(r, c) }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }

// Plot draws m as a heat map and saves it in filename. The format is given
// by the extension (png, svg, pdf...).
func Plot(m mat.Matrix, title, filename string) error {
	r, c := m.Dims()
	if r < 2 || c < 2 {
		return fmt.Errorf("Plot: a %dx%d matrix is too small to plot", r, c)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Index"
	p.Y.Label.Text = "Index"
	h := plotter.NewHeatMap(grid{m}, palette.Heat(12, 1))
	//a constant matrix would leave the palette with no range.
	if h.Max <= h.Min {
		h.Max = h.Min + 1
	}
	p.Add(h)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return fmt.Errorf("Plot: %w", err)
	}
	return nil
}
