package kpoints

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	bands "github.com/rmera/gobands"
)

// Discontinuity joins the two labels flanking a segment boundary where the
// path jumps in reciprocal space instead of passing through one shared point.
const Discontinuity = " | "

// A Path is the parsed description of a high-symmetry path through reciprocal
// space, as read from a line-mode KPOINTS file. Raw keeps one label per
// high-symmetry point in file order, duplicates included (each interior point
// normally appears twice, as the end of one segment and the start of the
// next). Ticks keeps one merged label per distinct x-axis tick; its length is
// always len(Raw)/2 + 1.
type Path struct {
	Npoints int      //k-points sampled along each segment
	Raw     []string //labels as they appear in the file
	Ticks   []string //merged tick labels
}

// Nsegments returns the number of path segments.
func (P *Path) Nsegments() int {
	return len(P.Raw) / 2
}

// TickIndexes returns the index, on the flattened k-point axis, of each tick:
// 0 for the first, then the last sampled point of each segment. These are the
// x positions where a band plot draws its tick labels and vertical guides.
func (P *Path) TickIndexes() []int {
	ret := make([]int, 0, len(P.Ticks))
	ret = append(ret, 0)
	for i := 1; i <= P.Nsegments(); i++ {
		ret = append(ret, i*P.Npoints-1)
	}
	return ret
}

// Parse reads a line-mode KPOINTS stream and returns the path it describes.
//
// The format is line-oriented: line 1 is a comment, the first whitespace field
// of line 2 is the (positive, integer) number of points sampled per segment,
// and lines 3 and 4 are the mode and coordinate-system markers. Every later
// line with exactly 5 whitespace fields is a k-point entry whose 5th field is
// the high-symmetry label; blank separator lines and anything else are
// skipped. The skip is deliberate tolerance for the sparse layout of these
// files, selected by the field count, not by swallowing errors.
//
// Ticks are built from the raw labels: the first and last raw labels become
// the first and last ticks verbatim, and each interior pair (the end label of
// one segment and the start label of the next) merges into one tick, shared
// if the two labels are equal and joined with Discontinuity if not.
//
// A stream with fewer than 4 lines, an unparseable or non-positive
// points-per-segment field, no labeled k-points, or an odd number of labeled
// k-points (an unmatched segment endpoint) gets an Error.
func Parse(r io.Reader) (*Path, error) {
	return parse(bufio.NewReader(r), "")
}

func parse(buf *bufio.Reader, filename string) (*Path, error) {
	header := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		line, ok := readLine(buf)
		if !ok {
			return nil, Error{NotEnoughLines, filename, []string{"parse"}, true}
		}
		header = append(header, line)
	}
	fields := strings.Fields(header[1])
	if len(fields) == 0 {
		return nil, Error{BadNpoints, filename, []string{"parse"}, true}
	}
	npoints, err := strconv.Atoi(fields[0])
	if err != nil || npoints <= 0 {
		return nil, Error{fmt.Sprintf("%s: %q", BadNpoints, fields[0]), filename, []string{"parse"}, true}
	}
	//header[0], header[2] and header[3] (comment, mode and coordinate-system
	//markers) carry nothing we need.
	raw := make([]string, 0, 8)
	for {
		line, ok := readLine(buf)
		if !ok {
			break
		}
		f := strings.Fields(line)
		if len(f) != 5 { //coordinate+weight+label entries only
			continue
		}
		raw = append(raw, f[4])
	}
	if len(raw) == 0 {
		return nil, Error{NoLabels, filename, []string{"parse"}, true}
	}
	if len(raw)%2 != 0 {
		return nil, Error{OddLabelCount, filename, []string{"parse"}, true}
	}
	ticks := make([]string, 0, len(raw)/2+1)
	ticks = append(ticks, raw[0])
	for i := 1; i < len(raw)-1; i += 2 {
		a, b := raw[i], raw[i+1]
		if a == b {
			ticks = append(ticks, a)
		} else {
			ticks = append(ticks, a+Discontinuity+b)
		}
	}
	ticks = append(ticks, raw[len(raw)-1])
	return &Path{Npoints: npoints, Raw: raw, Ticks: ticks}, nil
}

//reads the next line, reporting whether there was one. A last line without a
//trailing newline still counts.
func readLine(buf *bufio.Reader) (string, bool) {
	line, err := buf.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return line, true
}

// New reads the named KPOINTS file and returns the path it describes. Files
// ending in .gz, .zst or .zstd are decompressed on the fly; anything else is
// read as plain text. The file is closed before New returns, on every path.
func New(name string) (*Path, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
	}
	defer f.Close()
	var r io.Reader = f
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".gz"):
		g, err := gzip.NewReader(f)
		if err != nil {
			return nil, Error{"Can't read gzip header: " + err.Error(), name, []string{"New"}, true}
		}
		defer g.Close()
		r = g
	case strings.HasSuffix(strings.ToLower(name), ".zst"), strings.HasSuffix(strings.ToLower(name), ".zstd"):
		z, err := zstd.NewReader(f)
		if err != nil {
			return nil, Error{"Can't read zstd header: " + err.Error(), name, []string{"New"}, true}
		}
		defer z.Close()
		r = z
	}
	p, err := parse(bufio.NewReader(r), name)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	return p, nil
}

//Errors

//errDecorate is a helper function that asserts that the error
//implements bands.Error and decorates the error with the caller's name before returning it.
//if used with a non-bands.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(bands.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the general structure for KPOINTS parsing errors. It fulfills
// bands.Error and bands.FileError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("KPOINTS file %s error: %s", err.filename, err.message)
}

func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (err Error) FileName() string { return err.filename }

func (err Error) Format() string { return "KPOINTS" }

func (err Error) Critical() bool { return err.critical }

const (
	NotEnoughLines = "File has fewer than the 4 header lines"
	BadNpoints     = "Can't parse a positive points-per-segment count from line 2"
	NoLabels       = "No labeled k-point entries found"
	OddLabelCount  = "Odd number of labeled k-points: unmatched segment endpoint"
	UnableToOpen   = "Unable to open file"
)
