package MatrixMarket

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type (
	Format  int
	Type    int
	Storage int
)

const (
	Coordinate Format = iota
	Array
)

const (
	Real Type = iota
	Complex
	Pattern
	Integer
)

const (
	General Storage = iota
	Hermitian
	Symmetric
	SkewSymmetric
)

var (
	formats  = map[string]Format{"coordinate": Coordinate, "array": Array}
	types    = map[string]Type{"real": Real, "complex": Complex, "pattern": Pattern, "integer": Integer}
	storages = map[string]Storage{
		"general":        General,
		"hermitian":      Hermitian,
		"symmetric":      Symmetric,
		"skew-symmetric": SkewSymmetric,
	}
)

// Header describes a Matrix Market file.
type Header struct {
	Format              Format
	Type                Type
	Storage             Storage
	NRows, NCols, NVals int
}

// nextDataLine advances s past comment and blank lines and returns the
// fields of the next data line, or nil at the end of the input.
func nextDataLine(s *bufio.Scanner) []string {
	for s.Scan() {
		line := s.Text()
		if strings.HasPrefix(line, "%") {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields
		}
	}
	return nil
}

func lookup[T any](table map[string]T, what, key string) (value T, err error) {
	value, ok := table[strings.ToLower(key)]
	if !ok {
		err = fmt.Errorf("Matrix Market header line: unknown %v %v.", what, key)
	}
	return
}

// ReadHeader reads the banner and the size line of a Matrix Market file and
// returns the scanner positioned at the first entry. Lines starting with %,
// including %%GraphBLAS type annotations, are skipped.
func ReadHeader(r io.Reader) (header Header, scanner *bufio.Scanner, err error) {
	s := bufio.NewScanner(r)
	if !s.Scan() {
		if err = s.Err(); err == nil {
			err = errors.New("Matrix Market header line missing.")
		}
		return
	}
	banner := strings.Fields(s.Text())
	if len(banner) != 5 || banner[0] != "%%MatrixMarket" || banner[1] != "matrix" {
		err = fmt.Errorf("Matrix Market header line must read %%%%MatrixMarket matrix <format> <type> <storage>, got %q.", s.Text())
		return
	}
	if header.Format, err = lookup(formats, "format", banner[2]); err != nil {
		return
	}
	if header.Type, err = lookup(types, "type", banner[3]); err != nil {
		return
	}
	if header.Storage, err = lookup(storages, "storage", banner[4]); err != nil {
		return
	}
	if header.Type == Complex || header.Storage == Hermitian {
		err = fmt.Errorf("Matrix Market complex matrices not supported, got %v %v.", banner[3], banner[4])
		return
	}

	size := nextDataLine(s)
	if size == nil {
		if err = s.Err(); err == nil {
			err = errors.New("Matrix Market size line missing.")
		}
		return
	}
	want := 3
	if header.Format == Array {
		want = 2
	}
	if len(size) != want {
		err = fmt.Errorf("Matrix Market size line has %v entries, expected %v.", len(size), want)
		return
	}
	dims := make([]int, want)
	for i, field := range size {
		d, e := strconv.Atoi(field)
		if e != nil || d < 0 {
			err = fmt.Errorf("Matrix Market size line: invalid entry %v.", field)
			return
		}
		dims[i] = d
	}
	header.NRows, header.NCols = dims[0], dims[1]
	if header.Format == Array {
		header.NVals = header.NRows * header.NCols
	} else {
		header.NVals = dims[2]
	}
	return header, s, nil
}
