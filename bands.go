/*
 * bands.go, part of gobands.
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
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Projections holds the orbital- and ion-resolved weights of a projected band
// structure, as produced by an external PROCAR decoder. Weights are indexed by
// (orbital, ion, k-point, band) and are non-negative; for a well-normalized
// calculation they sum to about 1 over all orbitals and ions at each fixed
// (k-point, band).
type Projections struct {
	data                       []float64 //flattened, see oikb2i for the layout
	norbs, nions, nkps, nbands int
}

// NewProjections returns a projection tensor with the given dimensions backed
// by data, which must have length norbs*nions*nkps*nbands and be laid out
// row-major in that index order (band index fastest). A nil data slice gets a
// zeroed tensor of the right size.
func NewProjections(norbs, nions, nkps, nbands int, data []float64) (*Projections, error) {
	if norbs <= 0 || nions <= 0 || nkps <= 0 || nbands <= 0 {
		return nil, DimensionError{BadDims, []string{"NewProjections"}}
	}
	l := norbs * nions * nkps * nbands
	if data == nil {
		data = make([]float64, l)
	}
	if len(data) != l {
		return nil, DimensionError{fmt.Sprintf("%d values given but %d expected from the dimensions", len(data), l), []string{"NewProjections"}}
	}
	ret := new(Projections)
	ret.data = data
	ret.norbs = norbs
	ret.nions = nions
	ret.nkps = nkps
	ret.nbands = nbands
	return ret, nil
}

// Dims returns the number of orbitals, ions, k-points and bands of the tensor.
func (P *Projections) Dims() (norbs, nions, nkps, nbands int) {
	return P.norbs, P.nions, P.nkps, P.nbands
}

//returns the index in the flat data slice given the 4 tensor indexes.
//just to avoid fixing it in many places if I screw up
func (P *Projections) oikb2i(orb, ion, kp, band int) int {
	P.Check(orb, ion, kp, band, true)
	return ((orb*P.nions+ion)*P.nkps+kp)*P.nbands + band
}

// Check checks whether the given indexes are within range. If pan is given and
// true, it panics when one is out of range, otherwise it returns an error.
func (P *Projections) Check(orb, ion, kp, band int, pan ...bool) error {
	p := false
	var err error
	if len(pan) > 0 && pan[0] {
		p = true
	}
	if orb < 0 || orb >= P.norbs {
		err = SelectionError{fmt.Sprintf("Orbital index %d out of range (%d orbitals)", orb, P.norbs), nil}
	}
	if ion < 0 || ion >= P.nions {
		err = SelectionError{fmt.Sprintf("Ion index %d out of range (%d ions)", ion, P.nions), nil}
	}
	if kp < 0 || kp >= P.nkps {
		err = SelectionError{fmt.Sprintf("K-point index %d out of range (%d k-points)", kp, P.nkps), nil}
	}
	if band < 0 || band >= P.nbands {
		err = SelectionError{fmt.Sprintf("Band index %d out of range (%d bands)", band, P.nbands), nil}
	}
	if err != nil && p {
		panic(err.Error())
	}
	return err
}

// At returns the weight of the given orbital and ion at the given k-point and
// band. It panics if an index is out of range.
func (P *Projections) At(orb, ion, kp, band int) float64 {
	return P.data[P.oikb2i(orb, ion, kp, band)]
}

// Set sets the weight of the given orbital and ion at the given k-point and
// band. It panics if an index is out of range.
func (P *Projections) Set(orb, ion, kp, band int, v float64) {
	P.data[P.oikb2i(orb, ion, kp, band)] = v
}

// Bands holds the band eigenvalues of a calculation and, if the decoder
// supplied them, the corresponding projection tensor. Proj is nil when no
// projection data exists; callers that want fat-bands are expected to check
// that before reducing.
type Bands struct {
	Energies *mat.Dense //k-point x band eigenvalues, eV
	Proj     *Projections
}

// NewBands returns a Bands from the eigenvalue matrix and the (possibly nil)
// projection tensor. When proj is given, its k-point and band dimensions must
// match those of the eigenvalue matrix.
func NewBands(energies *mat.Dense, proj *Projections) (*Bands, error) {
	if energies == nil {
		return nil, DimensionError{NoData, []string{"NewBands"}}
	}
	if proj != nil {
		k, b := energies.Dims()
		_, _, pk, pb := proj.Dims()
		if k != pk || b != pb {
			return nil, DimensionError{fmt.Sprintf("Eigenvalues are %dx%d but projections cover %d k-points and %d bands", k, b, pk, pb), []string{"NewBands"}}
		}
	}
	return &Bands{Energies: energies, Proj: proj}, nil
}

// FermiShifted returns a copy of the eigenvalue matrix with efermi subtracted
// from every entry, i.e. the energies relative to the Fermi level.
func (B *Bands) FermiShifted(efermi float64) *mat.Dense {
	k, b := B.Energies.Dims()
	ret := mat.NewDense(k, b, nil)
	shift := func(i, j int, v float64) float64 { return v - efermi }
	ret.Apply(shift, B.Energies)
	return ret
}
