// Package mazeio reads mazes in the "n m" + rows text format and writes
// search results in the NO / YES-length-moves format.
//
// Input:
//
//	3 3
//	A.#
//	..#
//	#.B
//
// The header holds two positive integers. Each of the next n lines holds
// exactly m symbols from '.', '#', 'A', 'B', in either case. Blank lines
// before the header are skipped; a trailing '\r' on any line is dropped.
//
// Output:
//
//	NO
//
// or
//
//	YES
//	4
//	DRDR
package mazeio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
)

// Sentinel errors for decoding.
var (
	// ErrHeader indicates a missing or malformed "n m" line.
	ErrHeader = errors.New("mazeio: malformed header")
	// ErrTruncated indicates fewer rows than the header declares.
	ErrTruncated = errors.New("mazeio: input ended before all rows were read")
)

// Read decodes a maze from r. Rows are upper-cased before construction, so
// 'a' and 'b' are accepted as start and end. Construction errors wrap
// maze.ErrInvalidGrid. Opts are passed through to maze.New.
func Read(r io.Reader, opts ...maze.Option) (*maze.Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n, m, err := readHeader(scanner)
	if err != nil {
		return nil, err
	}
	rows := make([][]byte, 0, n)
	for len(rows) < n && scanner.Scan() {
		line := bytes.TrimSuffix(scanner.Bytes(), []byte{'\r'})
		rows = append(rows, bytes.ToUpper(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mazeio: reading rows: %w", err)
	}
	if len(rows) < n {
		return nil, fmt.Errorf("%w: got %d of %d rows", ErrTruncated, len(rows), n)
	}

	return maze.New(n, m, rows, opts...)
}

// readHeader scans past blank lines and parses "n m".
func readHeader(scanner *bufio.Scanner) (n, m int, err error) {
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return 0, 0, fmt.Errorf("%w: want 2 fields, got %d", ErrHeader, len(fields))
		}
		if n, err = strconv.Atoi(fields[0]); err != nil || n <= 0 {
			return 0, 0, fmt.Errorf("%w: row count %q", ErrHeader, fields[0])
		}
		if m, err = strconv.Atoi(fields[1]); err != nil || m <= 0 {
			return 0, 0, fmt.Errorf("%w: column count %q", ErrHeader, fields[1])
		}
		return n, m, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("mazeio: reading header: %w", err)
	}
	return 0, 0, fmt.Errorf("%w: empty input", ErrHeader)
}

// Write encodes a search result to w: "NO" when found is false, otherwise
// "YES", the move count, and the moves on one line.
func Write(w io.Writer, path maze.Path, found bool) error {
	bw := bufio.NewWriter(w)
	if !found {
		bw.WriteString("NO\n")
		return bw.Flush()
	}
	bw.WriteString("YES\n")
	bw.WriteString(strconv.Itoa(len(path)))
	bw.WriteByte('\n')
	bw.WriteString(path.String())
	bw.WriteByte('\n')
	return bw.Flush()
}
