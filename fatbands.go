/*
 * fatbands.go, part of gobands.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * Gobands is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */

package bands

import (
	"gonum.org/v1/gonum/mat"
)

// FatWeights reduces the projection tensor to one weight per (k-point, band):
// the sum of P over the given orbital and ion selections. The result has
// exactly the (k-point x band) shape of the tensor and is what a fat-band plot
// uses as marker size, after whatever linear scaling the plotting program
// applies. The operation is linear in the selections: the weights for disjoint
// selections add up to the weights for their union.
//
// Both selections must be non-empty and within the tensor's ranges; a
// SelectionError is returned otherwise. Callers with no projection data at all
// should not call this (see Bands.Proj).
func FatWeights(P *Projections, orbitals, ions []int) (*mat.Dense, error) {
	if len(orbitals) == 0 || len(ions) == 0 {
		return nil, SelectionError{EmptySelection, []string{"FatWeights"}}
	}
	norbs, nions, nkps, nbands := P.Dims()
	for _, o := range orbitals {
		if o < 0 || o >= norbs {
			return nil, errDecorate(P.Check(o, 0, 0, 0), "FatWeights")
		}
	}
	for _, i := range ions {
		if i < 0 || i >= nions {
			return nil, errDecorate(P.Check(0, i, 0, 0), "FatWeights")
		}
	}
	w := mat.NewDense(nkps, nbands, nil)
	for _, o := range orbitals {
		for _, i := range ions {
			for k := 0; k < nkps; k++ {
				for b := 0; b < nbands; b++ {
					w.Set(k, b, w.At(k, b)+P.At(o, i, k, b))
				}
			}
		}
	}
	return w, nil
}
