package dtw

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsignal/matrix"
	"github.com/katalvlaran/lvsignal/sink"
)

var (
	// ErrEmptyInput indicates one or both inputs are empty or nil.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option (Window < -1, negative or NaN
	// penalty, unknown memory mode).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates ReturnPath without MemoryMode=FullMatrix.
	ErrPathNeedsMatrix = errors.New("dtw: path recovery requires MemoryMode=FullMatrix")
)

// Coord is one step (I in a, J in b) of a warping path, 0-based.
type Coord struct {
	I, J int
}

// Distance computes the Dynamic Time Warping distance between a and b.
//
// Recurrence (1-based, D[0][0]=0, D[i][0]=D[0][j]=+Inf):
//
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j-1], D[i-1][j]+p, D[i][j-1]+p)
//
// Cells outside the window band are +Inf, so a band narrower than
// |len(a)-len(b)| yields +Inf without error. A NaN sample makes the
// distance NaN. Neither case has a path.
//
// Errors: ErrEmptyInput, ErrBadInput, ErrPathNeedsMatrix.
// Complexity: O(n·m) time; memory per MemoryMode.
func Distance(a, b *matrix.Vector, opts ...Option) (float64, []Coord, error) {
	o := gatherOptions(opts...)
	if err := validate(o); err != nil {
		return 0, nil, err
	}
	if a == nil || b == nil || a.Dim() == 0 || b.Dim() == 0 {
		return 0, nil, ErrEmptyInput
	}
	xs, ys := a.Data(), b.Data()

	switch o.MemoryMode {
	case TwoRows:
		return twoRows(xs, ys, o), nil, nil
	case NoMemory:
		return oneRow(xs, ys, o), nil, nil
	}
	d := fullTable(xs, ys, o)
	dist := d[len(xs)][len(ys)]
	if !o.ReturnPath || math.IsNaN(dist) || math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	return dist, backtrack(d, o.SlopePenalty), nil
}

// CompareRecorders runs Distance over the values of two scalar recorders.
func CompareRecorders(a, b *sink.Recorder[float64], opts ...Option) (float64, []Coord, error) {
	if a == nil || b == nil {
		return 0, nil, ErrEmptyInput
	}

	return Distance(sink.Series(a), sink.Series(b), opts...)
}

func validate(o Options) error {
	switch {
	case o.Window < -1:
		return fmt.Errorf("window %d: %w", o.Window, ErrBadInput)
	case o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty):
		return fmt.Errorf("slope penalty %g: %w", o.SlopePenalty, ErrBadInput)
	case o.MemoryMode < FullMatrix || o.MemoryMode > NoMemory:
		return fmt.Errorf("memory mode %d: %w", o.MemoryMode, ErrBadInput)
	case o.ReturnPath && o.MemoryMode != FullMatrix:
		return ErrPathNeedsMatrix
	}

	return nil
}

// inBand reports whether (i, j) lies inside the window.
func inBand(i, j, w int) bool {
	if w < 0 {
		return true
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d <= w
}

// step is the DP transition for one cell.
func step(cost, diag, up, left, p float64) float64 {
	return cost + min(diag, up+p, left+p)
}

func fullTable(a, b []float64, o Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	d := make([][]float64, n+1)
	for i := range d {
		d[i] = make([]float64, m+1)
		d[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		d[0][j] = inf
	}
	d[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if !inBand(i, j, o.Window) {
				d[i][j] = inf
				continue
			}
			d[i][j] = step(math.Abs(a[i-1]-b[j-1]), d[i-1][j-1], d[i-1][j], d[i][j-1], o.SlopePenalty)
		}
	}

	return d
}

func twoRows(a, b []float64, o Options) float64 {
	m := len(b)
	inf := math.Inf(1)
	prev, curr := make([]float64, m+1), make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if !inBand(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			curr[j] = step(math.Abs(a[i-1]-b[j-1]), prev[j-1], prev[j], curr[j-1], o.SlopePenalty)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// oneRow updates a single row in place; diag carries D[i-1][j-1].
func oneRow(a, b []float64, o Options) float64 {
	m := len(b)
	inf := math.Inf(1)
	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}

	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = inf
		for j := 1; j <= m; j++ {
			up := row[j]
			if !inBand(i, j, o.Window) {
				row[j] = inf
			} else {
				row[j] = step(math.Abs(a[i-1]-b[j-1]), diag, up, row[j-1], o.SlopePenalty)
			}
			diag = up
		}
	}

	return row[m]
}

// backtrack walks from (n,m) to (1,1) choosing the predecessor that produced
// each cell; diagonal moves win ties.
func backtrack(d [][]float64, p float64) []Coord {
	i, j := len(d)-1, len(d[0])-1
	path := make([]Coord, 0, i+j)
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		if i == 1 {
			j--
			continue
		}
		if j == 1 {
			i--
			continue
		}
		diag, up, left := d[i-1][j-1], d[i-1][j]+p, d[i][j-1]+p
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
