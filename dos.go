package bands

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dos holds the density-of-states data of a calculation, as produced by an
// external DOSCAR decoder: the energy grid, the total DOS, the Fermi energy
// and, when the calculation was projected, one orbital x energy-bin matrix per
// ion, in the order the ions appear in the structure file. PerIon is nil for
// an unprojected calculation; callers that want partial DOS are expected to
// check that before reducing.
type Dos struct {
	Fermi    float64
	Energies []float64    //energy of each bin, eV
	Total    []float64    //total DOS per bin
	PerIon   []*mat.Dense //orbital x energy-bin, one per ion, file order
}

// NewDos returns a Dos from the decoder's output. The total series must have
// one value per energy bin, and every per-ion matrix must have the same shape,
// with one column per energy bin.
func NewDos(fermi float64, energies, total []float64, perIon []*mat.Dense) (*Dos, error) {
	if len(energies) == 0 {
		return nil, DimensionError{NoData, []string{"NewDos"}}
	}
	if len(total) != len(energies) {
		return nil, DimensionError{fmt.Sprintf("%d energy bins but %d total-DOS values", len(energies), len(total)), []string{"NewDos"}}
	}
	if perIon != nil {
		_, c, err := sharedDims(perIon)
		if err != nil {
			return nil, errDecorate(err, "NewDos")
		}
		if c != len(energies) {
			return nil, DimensionError{fmt.Sprintf("Per-ion matrices have %d energy bins but the energy grid has %d", c, len(energies)), []string{"NewDos"}}
		}
	}
	return &Dos{Fermi: fermi, Energies: energies, Total: total, PerIon: perIon}, nil
}

// ShiftedEnergies returns a copy of the energy grid with the Fermi energy
// subtracted, i.e. the bin energies relative to the Fermi level.
func (D *Dos) ShiftedEnergies() []float64 {
	ret := make([]float64, len(D.Energies))
	copy(ret, D.Energies)
	floats.AddConst(-D.Fermi, ret)
	return ret
}

// An IonType names a contiguous run of ions in the structure file, e.g.
// {"Ti", 2} followed by {"O", 4} for a TiO2 cell listing the 2 Ti ions first.
type IonType struct {
	Name string
	N    int
}

//checks that all matrices in the slice share one shape, and returns it.
func sharedDims(ms []*mat.Dense) (int, int, error) {
	if len(ms) == 0 || ms[0] == nil {
		return 0, 0, DimensionError{NoData, nil}
	}
	r, c := ms[0].Dims()
	for i, m := range ms[1:] {
		if m == nil {
			return 0, 0, DimensionError{NoData, nil}
		}
		mr, mc := m.Dims()
		if mr != r || mc != c {
			return 0, 0, DimensionError{fmt.Sprintf("Matrix %d is %dx%d but matrix 0 is %dx%d", i+1, mr, mc, r, c), nil}
		}
	}
	return r, c, nil
}

// TypedPDOS partitions the flat, ordered per-ion matrix list into contiguous
// runs with the lengths given in counts, and element-wise sums each run,
// returning one orbital x energy-bin matrix per declared type, in declaration
// order.
//
// The matrices must appear in the same ion order the counts were declared for
// (i.e. the ion order of the structure file); this cannot be verified from
// counts alone, and a mis-ordered input silently produces wrong sums. What is
// verified: the counts must be positive and add up to exactly len(perIon), and
// all matrices must share one shape; a DimensionError is returned otherwise.
// Use PDOSByIndexes for a grouping the library can check further.
func TypedPDOS(perIon []*mat.Dense, counts []int) ([]*mat.Dense, error) {
	total := 0
	for i, n := range counts {
		if n <= 0 {
			return nil, DimensionError{fmt.Sprintf("Ion count %d for type %d is not positive", n, i), []string{"TypedPDOS"}}
		}
		total += n
	}
	if total != len(perIon) {
		return nil, DimensionError{fmt.Sprintf("Type counts declare %d ions but %d per-ion matrices were given", total, len(perIon)), []string{"TypedPDOS"}}
	}
	r, c, err := sharedDims(perIon)
	if err != nil {
		return nil, errDecorate(err, "TypedPDOS")
	}
	ret := make([]*mat.Dense, 0, len(counts))
	cursor := 0 //position in the flat ion list; local to this call
	for _, n := range counts {
		sum := mat.NewDense(r, c, nil)
		for _, m := range perIon[cursor : cursor+n] {
			sum.Add(sum, m)
		}
		cursor += n
		ret = append(ret, sum)
	}
	return ret, nil
}

// PDOSByIndexes is the checkable variant of TypedPDOS: each group lists the
// ion indexes of one type explicitly, so the grouping does not depend on the
// ions being contiguous or ordered. Each group must be non-empty and every
// index must be within range; a SelectionError is returned otherwise.
func PDOSByIndexes(perIon []*mat.Dense, groups [][]int) ([]*mat.Dense, error) {
	r, c, err := sharedDims(perIon)
	if err != nil {
		return nil, errDecorate(err, "PDOSByIndexes")
	}
	for g, group := range groups {
		if len(group) == 0 {
			return nil, SelectionError{fmt.Sprintf("Group %d: %s", g, EmptySelection), []string{"PDOSByIndexes"}}
		}
		for _, i := range group {
			if i < 0 || i >= len(perIon) {
				return nil, SelectionError{fmt.Sprintf("Ion index %d in group %d out of range (%d ions)", i, g, len(perIon)), []string{"PDOSByIndexes"}}
			}
		}
	}
	ret := make([]*mat.Dense, 0, len(groups))
	for _, group := range groups {
		sum := mat.NewDense(r, c, nil)
		for _, i := range group {
			sum.Add(sum, perIon[i])
		}
		ret = append(ret, sum)
	}
	return ret, nil
}

// TypePDOS runs TypedPDOS over the collection's own per-ion matrices, with the
// counts taken from the given types. The same ion-ordering contract applies.
func (D *Dos) TypePDOS(types []IonType) ([]*mat.Dense, error) {
	counts := make([]int, len(types))
	for i, t := range types {
		counts[i] = t.N
	}
	ret, err := TypedPDOS(D.PerIon, counts)
	if err != nil {
		return nil, errDecorate(err, "Dos.TypePDOS")
	}
	return ret, nil
}

// Channel returns the single partial-DOS series (one value per energy bin) for
// the given type and orbital: the orbital row of the summed matrix of
// types[whichType]. This is the curve a pDOS plot draws for one type/orbital
// pair. The returned slice is a copy.
func (D *Dos) Channel(types []IonType, whichType, orbital int) ([]float64, error) {
	if whichType < 0 || whichType >= len(types) {
		return nil, SelectionError{fmt.Sprintf("Type index %d out of range (%d types)", whichType, len(types)), []string{"Dos.Channel"}}
	}
	summed, err := D.TypePDOS(types)
	if err != nil {
		return nil, errDecorate(err, "Dos.Channel")
	}
	m := summed[whichType]
	norbs, _ := m.Dims()
	if orbital < 0 || orbital >= norbs {
		return nil, SelectionError{fmt.Sprintf("Orbital index %d out of range (%d orbitals)", orbital, norbs), []string{"Dos.Channel"}}
	}
	return mat.Row(nil, orbital, m), nil
}
