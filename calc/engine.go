// SPDX-License-Identifier: MIT

package calc

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lincalc/matrix"
	"github.com/katalvlaran/lincalc/solver"
	"github.com/katalvlaran/lincalc/symbolic"
	"github.com/katalvlaran/lincalc/vector"
)

var (
	// ErrUnknownOperation is returned for operation names Perform does not know.
	ErrUnknownOperation = errors.New("calc: unknown operation")
	// ErrMissingOperand is returned when a binary operation gets no second operand.
	ErrMissingOperand = errors.New("calc: operation requires two operands")
)

// Operation names accepted by Perform.
const (
	OpAdd           = "add"
	OpSubtract      = "subtract"
	OpMultiply      = "multiply"
	OpDot           = "dot"
	OpCross         = "cross"
	OpCrossSymbolic = "cross_symbolic"
	OpTranspose     = "transpose"
	OpDeterminant   = "determinant"
	OpInverse       = "inverse"
	OpRank          = "rank"
	OpRowEchelon    = "ref"
	OpTrace         = "trace"
	OpMagnitude     = "magnitude"
	OpNormalize     = "normalize"
	OpFrobenius     = "frobenius"
	OpProject       = "project"
	OpAngle         = "angle"

	// Labels for the non-Perform entry points in logs and metrics.
	opSolve   = "solve"
	opConvert = "convert"
	opAnalyze = "analyze"
)

// OperationResult is the outcome of one engine call.
type OperationResult struct {
	Operation   string `json:"operation"`
	Symbol      string `json:"symbol"`
	Result      Value  `json:"result"`
	Description string `json:"description"`
	IsSymbolic  bool   `json:"isSymbolic"`
}

type opInfo struct {
	name, symbol, description string
	binary                    bool
}

var operations = map[string]opInfo{
	OpAdd:           {"addition", "+", "Matrix Addition (A + B)", true},
	OpSubtract:      {"subtraction", "−", "Matrix Subtraction (A - B)", true},
	OpMultiply:      {"dot_product", "·", "Matrix Multiplication (A · B)", true},
	OpDot:           {"dot_product", "·", "Matrix Multiplication (A · B)", true},
	OpCross:         {"cross_product", "×", "Vector Cross Product (A × B)", true},
	OpProject:       {"projection", "proj", "Projection of A onto B", true},
	OpAngle:         {"angle", "∠", "Angle between A and B (radians)", true},
	OpTranspose:     {"transpose", "ᵀ", "Transpose (Aᵀ)", false},
	OpDeterminant:   {"determinant", "det", "Determinant det(A)", false},
	OpInverse:       {"inverse", "⁻¹", "Inverse (A⁻¹)", false},
	OpRank:          {"rank", "rank", "Rank rank(A)", false},
	OpRowEchelon:    {"row_echelon_form", "REF", "Row Echelon Form", false},
	OpTrace:         {"trace", "tr", "Trace tr(A)", false},
	OpMagnitude:     {"magnitude", "‖·‖", "Vector Magnitude ‖A‖", false},
	OpNormalize:     {"normalize", "Â", "Normalized Vector (A / ‖A‖)", false},
	OpFrobenius:     {"frobenius_norm", "‖·‖F", "Frobenius Norm ‖A‖F", false},
	OpCrossSymbolic: {"cross_product", "×", "Symbolic Cross Product (A × B)", true},
}

// Operations lists the names Perform accepts, sorted.
func Operations() []string {
	out := make([]string, 0, len(operations))
	for k := range operations {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// IsBinary reports whether op needs two operands.
func IsBinary(op string) bool { return operations[op].binary }

// Recorder observes every engine call.
type Recorder interface {
	Observe(op string, took time.Duration, err error)
}

// Engine is the stateless calculator façade. The zero value is not usable;
// build one with New.
type Engine struct {
	log zerolog.Logger
	rec Recorder
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the debug logger (default zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option { return func(e *Engine) { e.log = l } }

// WithRecorder attaches an observer, typically a metrics collector.
func WithRecorder(r Recorder) Option { return func(e *Engine) { e.rec = r } }

// New builds an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{log: zerolog.Nop()}
	for _, o := range opts {
		o(e)
	}

	return e
}

func (e *Engine) observe(op, shape string, start time.Time, err error) {
	took := time.Since(start)
	if e.rec != nil {
		e.rec.Observe(op, took, err)
	}
	ev := e.log.Debug()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Str("op", op).Str("shape", shape).Dur("took", took).Msg("calc operation")
}

func shapeOf(ms ...matrix.Matrix) string {
	parts := make([]string, 0, len(ms))
	for _, m := range ms {
		if m != nil {
			parts = append(parts, strconv.Itoa(m.Rows())+"x"+strconv.Itoa(m.Cols()))
		}
	}

	return strings.Join(parts, ",")
}

func opErrorf(op string, err error) error { return fmt.Errorf("%s: %w", op, err) }

// Perform runs op on a (and b for binary operations).
//
// Behavior highlights:
//   - "multiply" is the matrix product; "dot" is the vector dot product when
//     both operands are vector shaped with equal length, the matrix product otherwise.
//   - Vector operations (cross, magnitude, normalize, project, angle) flatten
//     their operands through vector.FromMatrix.
//   - "determinant" uses cofactor expansion up to matrix.CofactorMaxOrder and
//     the LU determinant beyond it.
//
// Errors:
//   - ErrUnknownOperation, ErrMissingOperand, or the wrapped matrix/vector error.
func (e *Engine) Perform(op string, a, b matrix.Matrix) (res OperationResult, err error) {
	start := time.Now()
	defer func() { e.observe(op, shapeOf(a, b), start, err) }()

	info, ok := operations[op]
	if !ok {
		return OperationResult{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	if a == nil || (info.binary && b == nil) {
		return OperationResult{}, opErrorf(op, ErrMissingOperand)
	}
	res = OperationResult{Operation: info.name, Symbol: info.symbol, Description: info.description}

	var v Value
	switch op {
	case OpAdd:
		v, err = matrixValue(matrix.Add(a, b))
	case OpSubtract:
		v, err = matrixValue(matrix.Sub(a, b))
	case OpMultiply:
		v, err = matrixValue(matrix.Mul(a, b))
	case OpDot:
		v, err = e.dot(a, b, &res)
	case OpCross:
		v, err = e.cross(a, b, &res)
	case OpCrossSymbolic:
		return e.crossSymbolicMatrices(a, b)
	case OpProject, OpAngle:
		v, err = vectorPair(op, a, b)
	default:
		v, err = e.unary(op, a)
	}
	if err != nil {
		return OperationResult{}, err
	}
	res.Result = v

	return res, nil
}

// Unary runs a single-operand operation.
func (e *Engine) Unary(op string, a matrix.Matrix) (OperationResult, error) {
	if IsBinary(op) {
		return OperationResult{}, opErrorf(op, ErrMissingOperand)
	}

	return e.Perform(op, a, nil)
}

func matrixValue(m matrix.Matrix, err error) (Value, error) {
	if err != nil {
		return Value{}, err
	}

	return MatrixOf(m)
}

func flat(m matrix.Matrix) ([]float64, error) {
	s, err := vector.FromMatrix(m)
	if err != nil {
		return nil, err
	}

	return s.Values(), nil
}

func (e *Engine) dot(a, b matrix.Matrix, res *OperationResult) (Value, error) {
	if !vector.IsVectorShaped(a) || !vector.IsVectorShaped(b) {
		return matrixValue(matrix.Mul(a, b))
	}
	u, err := flat(a)
	if err != nil {
		return Value{}, err
	}
	w, err := flat(b)
	if err != nil {
		return Value{}, err
	}
	if len(u) != len(w) {
		return matrixValue(matrix.Mul(a, b))
	}
	d, err := vector.Dot(u, w)
	if err != nil {
		return Value{}, err
	}
	res.Description = "Vector Dot Product (A · B) = " + FormatNumber(d)

	return Scalar(d), nil
}

func (e *Engine) cross(a, b matrix.Matrix, res *OperationResult) (Value, error) {
	u, err := flat(a)
	if err != nil {
		return Value{}, err
	}
	w, err := flat(b)
	if err != nil {
		return Value{}, err
	}

	return crossValue(u, w, res)
}

func crossValue(u, w []float64, res *OperationResult) (Value, error) {
	c, err := vector.Cross(u, w)
	if err != nil {
		return Value{}, err
	}
	if c.Dim == 2 {
		res.Description = "2D Cross Product (A × B) = " + FormatNumber(c.Scalar)
		return Scalar(c.Scalar), nil
	}
	res.Description = "3D Cross Product (A × B)"

	return Vector(c.Vector), nil
}

func (e *Engine) crossSymbolicMatrices(a, b matrix.Matrix) (OperationResult, error) {
	u, err := flat(a)
	if err != nil {
		return OperationResult{}, err
	}
	w, err := flat(b)
	if err != nil {
		return OperationResult{}, err
	}

	return symbolicCross(numberTokens(u), numberTokens(w))
}

func numberTokens(v []float64) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	return out
}

func vectorPair(op string, a, b matrix.Matrix) (Value, error) {
	u, err := flat(a)
	if err != nil {
		return Value{}, err
	}
	w, err := flat(b)
	if err != nil {
		return Value{}, err
	}
	if op == OpProject {
		p, err := vector.Project(u, w)
		if err != nil {
			return Value{}, err
		}
		return Vector(p), nil
	}
	ang, err := vector.Angle(u, w)
	if err != nil {
		return Value{}, err
	}

	return Scalar(ang), nil
}

func (e *Engine) unary(op string, a matrix.Matrix) (Value, error) {
	switch op {
	case OpTranspose:
		return matrixValue(matrix.Transpose(a))
	case OpDeterminant:
		d, err := Determinant(a)
		if err != nil {
			return Value{}, err
		}
		return Scalar(d), nil
	case OpInverse:
		return matrixValue(matrix.Inverse(a))
	case OpRank:
		r, err := matrix.Rank(a)
		if err != nil {
			return Value{}, err
		}
		return Integer(r), nil
	case OpRowEchelon:
		return matrixValue(matrix.RowEchelon(a))
	case OpTrace:
		t, err := matrix.Trace(a)
		if err != nil {
			return Value{}, err
		}
		return Scalar(t), nil
	case OpFrobenius:
		f, err := matrix.FrobeniusNorm(a)
		if err != nil {
			return Value{}, err
		}
		return Scalar(f), nil
	case OpMagnitude:
		v, err := flat(a)
		if err != nil {
			return Value{}, err
		}
		return Scalar(vector.Magnitude(v)), nil
	case OpNormalize:
		v, err := flat(a)
		if err != nil {
			return Value{}, err
		}
		n, err := vector.Normalize(v)
		if err != nil {
			return Value{}, err
		}
		return Vector(n), nil
	default:
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
}

// Determinant picks cofactor expansion for small orders and LU otherwise.
func Determinant(a matrix.Matrix) (float64, error) {
	if a != nil && a.Rows() > matrix.CofactorMaxOrder {
		return matrix.DeterminantLU(a)
	}

	return matrix.Determinant(a)
}

// CrossTokens computes a × b from textual components. Any variable token
// selects the symbolic path; otherwise the tokens are parsed and the numeric
// cross product is returned.
func (e *Engine) CrossTokens(a, b []string) (res OperationResult, err error) {
	start := time.Now()
	op := OpCross
	if symbolic.HasVariables(a...) || symbolic.HasVariables(b...) {
		op = OpCrossSymbolic
	}
	defer func() { e.observe(op, fmt.Sprintf("%d,%d", len(a), len(b)), start, err) }()

	if op == OpCrossSymbolic {
		return symbolicCross(a, b)
	}
	u, err := symbolic.ParseNumbers(a)
	if err != nil {
		return OperationResult{}, opErrorf("Matrix A", err)
	}
	w, err := symbolic.ParseNumbers(b)
	if err != nil {
		return OperationResult{}, opErrorf("Matrix B", err)
	}
	info := operations[OpCross]
	res = OperationResult{Operation: info.name, Symbol: info.symbol}
	v, err := crossValue(u, w, &res)
	if err != nil {
		return OperationResult{}, err
	}
	res.Result = v

	return res, nil
}

func symbolicCross(a, b []string) (OperationResult, error) {
	sr, err := symbolic.Cross(a, b)
	if err != nil {
		return OperationResult{}, err
	}
	info := operations[OpCrossSymbolic]
	res := OperationResult{Operation: info.name, Symbol: info.symbol, IsSymbolic: true}
	if sr.Dimension == 2 {
		res.Result = Expression(sr.Components[0])
		res.Description = "2D " + info.description
	} else {
		res.Result = Expressions(sr.Components)
		res.Description = "3D " + info.description
	}

	return res, nil
}

// Solve validates and solves a linear system.
func (e *Engine) Solve(sys solver.System) (res solver.Result, err error) {
	start := time.Now()
	defer func() { e.observe(opSolve, strconv.Itoa(sys.Unknowns), start, err) }()
	if sys.Unknowns == 0 {
		sys.Unknowns = len(sys.Equations)
	}

	return sys.Solve()
}
