package bands

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// per-ion matrices with 2 orbitals and 3 energy bins, every entry ion+1.
func testPerIon(nions int) []*mat.Dense {
	ret := make([]*mat.Dense, nions)
	for i := range ret {
		d := make([]float64, 2*3)
		for j := range d {
			d[j] = float64(i + 1)
		}
		ret[i] = mat.NewDense(2, 3, d)
	}
	return ret
}

func TestTypedPDOS(Te *testing.T) {
	perIon := testPerIon(4)
	byType, err := TypedPDOS(perIon, []int{1, 3})
	if err != nil {
		Te.Fatal(err)
	}
	if len(byType) != 2 {
		Te.Fatalf("Wanted 2 per-type matrices, got %d", len(byType))
	}
	//first type is ion 0 alone, second is ions 1+2+3
	if !scalar.EqualWithinAbs(byType[0].At(0, 0), 1, 1e-12) {
		Te.Errorf("First type sum wrong: %v", byType[0].At(0, 0))
	}
	if !scalar.EqualWithinAbs(byType[1].At(1, 2), 2+3+4, 1e-12) {
		Te.Errorf("Second type sum wrong: %v", byType[1].At(1, 2))
	}
	//the sum over all types must equal the sum over all ions
	var all, types mat.Dense
	all.Add(perIon[0], perIon[1])
	all.Add(&all, perIon[2])
	all.Add(&all, perIon[3])
	types.Add(byType[0], byType[1])
	if !mat.EqualApprox(&all, &types, 1e-12) {
		Te.Error("Per-type sums don't preserve the total")
	}
	fmt.Println("per-type pDOS:", mat.Formatted(byType[1]))
}

func TestTypedPDOSErrors(Te *testing.T) {
	perIon := testPerIon(4)
	_, err := TypedPDOS(perIon, []int{1, 2})
	if err == nil {
		Te.Error("Counts that don't add up should fail")
	}
	if _, ok := err.(DimensionError); !ok {
		Te.Errorf("Wanted a DimensionError, got %T: %v", err, err)
	}
	_, err = TypedPDOS(perIon, []int{4, 0})
	if err == nil {
		Te.Error("A non-positive count should fail")
	}
	//mismatched matrix shapes
	perIon[2] = mat.NewDense(3, 3, nil)
	_, err = TypedPDOS(perIon, []int{2, 2})
	if err == nil {
		Te.Error("Mismatched matrix shapes should fail")
	}
	if _, ok := err.(DimensionError); !ok {
		Te.Errorf("Wanted a DimensionError, got %T: %v", err, err)
	}
	fmt.Println("expected failure:", err)
}

func TestPDOSByIndexes(Te *testing.T) {
	perIon := testPerIon(4)
	//same grouping as counts [2,2], but declared explicitly and out of order
	byType, err := PDOSByIndexes(perIon, [][]int{{1, 0}, {3, 2}})
	if err != nil {
		Te.Fatal(err)
	}
	if !scalar.EqualWithinAbs(byType[0].At(0, 0), 1+2, 1e-12) {
		Te.Errorf("First group sum wrong: %v", byType[0].At(0, 0))
	}
	if !scalar.EqualWithinAbs(byType[1].At(1, 1), 3+4, 1e-12) {
		Te.Errorf("Second group sum wrong: %v", byType[1].At(1, 1))
	}
	_, err = PDOSByIndexes(perIon, [][]int{{0}, {4}})
	if err == nil {
		Te.Error("Out-of-range ion index should fail")
	}
	if _, ok := err.(SelectionError); !ok {
		Te.Errorf("Wanted a SelectionError, got %T: %v", err, err)
	}
	_, err = PDOSByIndexes(perIon, [][]int{{0}, {}})
	if err == nil {
		Te.Error("An empty group should fail")
	}
}

func TestDosChannel(Te *testing.T) {
	perIon := testPerIon(4)
	energies := []float64{-1, 0, 1}
	total := []float64{2, 4, 2}
	D, err := NewDos(0.5, energies, total, perIon)
	if err != nil {
		Te.Fatal(err)
	}
	types := []IonType{{"Ti", 1}, {"O", 3}}
	ch, err := D.Channel(types, 1, 0)
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{9, 9, 9} //ions 1+2+3, orbital 0
	if !floats.EqualApprox(ch, want, 1e-12) {
		Te.Errorf("Channel series wrong: %v", ch)
	}
	_, err = D.Channel(types, 2, 0)
	if err == nil {
		Te.Error("Out-of-range type index should fail")
	}
	_, err = D.Channel(types, 0, 5)
	if err == nil {
		Te.Error("Out-of-range orbital should fail")
	}
	if _, ok := err.(SelectionError); !ok {
		Te.Errorf("Wanted a SelectionError, got %T: %v", err, err)
	}
	shifted := D.ShiftedEnergies()
	if !floats.EqualApprox(shifted, []float64{-1.5, -0.5, 0.5}, 1e-12) {
		Te.Errorf("Shifted energies wrong: %v", shifted)
	}
	if D.Energies[0] != -1 {
		Te.Error("ShiftedEnergies altered its input")
	}
	fmt.Println("pDOS channel for", types[1].Name, ":", ch)
}

func TestNewDosErrors(Te *testing.T) {
	perIon := testPerIon(2)
	_, err := NewDos(0, []float64{-1, 0, 1}, []float64{1, 2}, perIon)
	if err == nil {
		Te.Error("Total/energy length mismatch should fail")
	}
	if _, ok := err.(DimensionError); !ok {
		Te.Errorf("Wanted a DimensionError, got %T: %v", err, err)
	}
	_, err = NewDos(0, []float64{-1, 0}, []float64{1, 2}, perIon)
	if err == nil {
		Te.Error("Per-ion bin count disagreeing with the energy grid should fail")
	}
}
