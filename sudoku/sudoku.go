package sudoku

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitkit"
	"github.com/hupe1980/bitkit/resource"
)

// Size is the side length of a board.
const Size = 9

// Board holds digits 1-9; 0 marks an empty cell.
type Board [Size][Size]uint8

// Unit is a kind of group that must not repeat a digit.
type Unit uint8

const (
	Row Unit = iota
	Column
	Box
)

func (u Unit) String() string {
	switch u {
	case Row:
		return "row"
	case Column:
		return "column"
	case Box:
		return "box"
	default:
		return "unknown"
	}
}

// Conflict is a digit placed twice in one unit. Row and Col locate the
// second placement in row-major order.
type Conflict struct {
	Unit  Unit
	Index int
	Digit uint8
	Row   int
	Col   int
}

func (c Conflict) String() string {
	return fmt.Sprintf("digit %d repeated in %s %d at (%d,%d)", c.Digit, c.Unit, c.Index, c.Row, c.Col)
}

// Report is the outcome of validating one board.
type Report struct {
	Conflicts []Conflict
}

// Valid reports whether no unit repeats a digit.
func (r Report) Valid() bool {
	return len(r.Conflicts) == 0
}

// Parse reads a board from 81 cells in row-major order. Digits 1-9 fill a
// cell, '0' and '.' leave it empty and whitespace is skipped.
func Parse(s string) (Board, error) {
	var b Board
	n := 0
	for _, r := range s {
		var d uint8
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			continue
		case r == '.' || r == '0':
		case r >= '1' && r <= '9':
			d = uint8(r - '0')
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q in board", bitkit.ErrArgument, r)
		}
		if n == Size*Size {
			return Board{}, fmt.Errorf("%w: board has more than %d cells", bitkit.ErrArgument, Size*Size)
		}
		b[n/Size][n%Size] = d
		n++
	}
	if n != Size*Size {
		return Board{}, fmt.Errorf("%w: board has %d of %d cells", bitkit.ErrArgument, n, Size*Size)
	}
	return b, nil
}

// String renders the board as nine lines of digits with '.' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * (Size + 1))
	for _, row := range b {
		for _, d := range row {
			if d == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + d)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Validate reports every repeated digit on the board. An empty or partly
// filled board is valid as long as nothing repeats.
func Validate(b Board) (Report, error) {
	var sets [3]*bitkit.BitSet
	for i := range sets {
		sets[i] = bitkit.NewFixed(Size * Size)
	}

	var report Report
	for r := range Size {
		for c := range Size {
			d := b[r][c]
			if d == 0 {
				continue
			}
			if d > Size {
				return Report{}, fmt.Errorf("%w: cell (%d,%d) holds %d", bitkit.ErrArgument, r, c, d)
			}

			units := [3]int{r, c, (r/3)*3 + c/3}
			for u, idx := range units {
				prev, err := sets[u].Set(idx*Size+int(d)-1, true)
				if err != nil {
					return Report{}, err
				}
				if prev {
					report.Conflicts = append(report.Conflicts, Conflict{
						Unit:  Unit(u),
						Index: idx,
						Digit: d,
						Row:   r,
						Col:   c,
					})
				}
			}
		}
	}
	return report, nil
}

// Option configures ValidateAll.
type Option func(*options)

type options struct {
	logger *bitkit.Logger
}

// WithLogger logs the outcome of every board.
func WithLogger(l *bitkit.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// ValidateAll validates boards concurrently and returns their reports in
// order. rc bounds the number of boards in flight and how fast they start;
// a nil rc allows one board per CPU, unthrottled. The first error cancels
// the remaining boards.
func ValidateAll(ctx context.Context, boards []Board, rc *resource.Controller, opts ...Option) ([]Report, error) {
	o := options{logger: bitkit.NoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = bitkit.NoopLogger()
	}

	reports := make([]Report, len(boards))
	g, gctx := errgroup.WithContext(ctx)
	limit := runtime.GOMAXPROCS(0)
	if rc != nil {
		limit = int(rc.MaxWorkers())
	}
	g.SetLimit(limit)

	for i, board := range boards {
		g.Go(func() error {
			if err := rc.AcquireWorker(gctx); err != nil {
				return err
			}
			defer rc.ReleaseWorker()

			if err := rc.AcquireJobs(gctx, 1); err != nil {
				return err
			}
			if err := gctx.Err(); err != nil {
				return err
			}

			report, err := Validate(board)
			o.logger.LogValidation(gctx, i, len(report.Conflicts), err)
			if err != nil {
				return fmt.Errorf("board %d: %w", i, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
