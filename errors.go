package bands

//Errors for the reductions in this package. Both types implement the Error
//interface from interfaces.go.

//errDecorate is a helper function that asserts that the error
//implements Error and decorates it with the caller's name before returning it.
//if used with a non-Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// SelectionError reports an orbital/ion/type selection that references data
// outside the valid index ranges, or an empty selection.
type SelectionError struct {
	message string
	deco    []string
}

func (err SelectionError) Error() string {
	return "gobands selection error: " + err.message
}

func (E SelectionError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// DimensionError reports data whose dimensions disagree: a per-type ion count
// partition that does not add up to the number of per-ion matrices, or
// matrices/series of mismatched shape.
type DimensionError struct {
	message string
	deco    []string
}

func (err DimensionError) Error() string {
	return "gobands dimension error: " + err.message
}

func (E DimensionError) Decorate(deco string) []string {
	//See the comment in SelectionError.Decorate.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

const (
	EmptySelection = "Empty orbital or ion selection"
	BadDims        = "Dimensions must all be positive"
	NoData         = "Nil or empty data given"
	ShapeMismatch  = "Matrices or series dimensions don't match"
)
