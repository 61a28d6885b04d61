package MatrixMarket

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
)

// patternConstructor collects 0-based coordinates; values only have to parse.
type patternConstructor struct {
	parseValue func(string) error
	rows, cols []int
}

func makeParseValue(typ Type) func(string) error {
	switch typ {
	case Integer:
		return func(s string) error {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				return fmt.Errorf("Matrix Market value parse error %w while parsing %v.", err, s)
			}
			return nil
		}
	case Real:
		return func(s string) error {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				return fmt.Errorf("Matrix Market value parse error %w while parsing %v.", err, s)
			}
			return nil
		}
	default:
		return func(string) error { return nil }
	}
}

func newPatternConstructor(typ Type, nvals int) *patternConstructor {
	return &patternConstructor{
		parseValue: makeParseValue(typ),
		rows:       make([]int, 0, nvals),
		cols:       make([]int, 0, nvals),
	}
}

func (m *patternConstructor) addGeneral(row, col int) {
	m.rows = append(m.rows, row)
	m.cols = append(m.cols, col)
}

func (m *patternConstructor) addSymmetric(row, col int) {
	m.rows = append(m.rows, row, col)
	m.cols = append(m.cols, col, row)
}

var invalidMatrixType = errors.New("Invalid matrix type parameter")

// ReadPattern reads the coordinate lines following header and returns the
// 0-based coordinates of the stored entries. Symmetric and skew-symmetric
// storage is expanded to both triangles; values are checked but discarded.
func ReadPattern(header Header, s *bufio.Scanner) (rows, cols []int, err error) {
	if header.Format != Coordinate {
		err = fmt.Errorf("%w: Matrix Market array format not supported for graphs.", invalidMatrixType)
		return
	}
	mc := newPatternConstructor(header.Type, header.NVals)
	var addValue func(int, int)
	switch header.Storage {
	case General:
		addValue = mc.addGeneral
	case Symmetric, SkewSymmetric:
		addValue = mc.addSymmetric
	default:
		err = fmt.Errorf("%w: storage %v", invalidMatrixType, header.Storage)
		return
	}
	nfields := 3
	if header.Type == Pattern {
		nfields = 2
	}
	nvals := header.NVals
	for fields := nextDataLine(s); fields != nil; fields = nextDataLine(s) {
		if len(fields) != nfields {
			err = fmt.Errorf("Matrix Market coordinate line unexpected number of elements, expected %v, got %v.", nfields, len(fields))
			return
		}
		row, e := strconv.ParseInt(fields[0], 10, 64)
		if e != nil {
			err = fmt.Errorf("Matrix Market coordinate line row parse error %w, while parsing %v.", e, fields[0])
			return
		}
		col, e := strconv.ParseInt(fields[1], 10, 64)
		if e != nil {
			err = fmt.Errorf("Matrix Market coordinate line col parse error %w, while parsing %v.", e, fields[1])
			return
		}
		if row < 1 || int(row) > header.NRows || col < 1 || int(col) > header.NCols {
			err = fmt.Errorf("Matrix Market coordinate (%v, %v) outside %v x %v.", row, col, header.NRows, header.NCols)
			return
		}
		if nfields == 3 {
			if err = mc.parseValue(fields[2]); err != nil {
				return
			}
		}
		if nvals == 0 {
			err = errors.New("Matrix Market too many coordinate lines.")
			return
		}
		addValue(int(row)-1, int(col)-1)
		nvals--
	}
	if err = s.Err(); err != nil {
		return
	}
	if nvals > 0 {
		err = errors.New("Matrix Market too few coordinate lines.")
		return
	}
	return mc.rows, mc.cols, nil
}
