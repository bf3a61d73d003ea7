// SPDX-License-Identifier: MIT

package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/katalvlaran/lincalc/calc"
	"github.com/katalvlaran/lincalc/internal/metrics"
	"github.com/katalvlaran/lincalc/matrix"
	"github.com/katalvlaran/lincalc/solver"
)

// HealthMessage is reported by GET /api/health.
const HealthMessage = "Matrix Calculator API is running"

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

// fail maps err to a status: client mistakes are 400 (413 for oversized
// bodies), anything unclassified is 500 and its text is not exposed.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
	case errors.Is(err, errBadRequest), metrics.ErrorType(err) != "other":
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Error().Err(err).Str("request_id", RequestID(r.Context())).Msg("unhandled error")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := r.Body
	if s.config.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	}
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

// expired reports and answers requests whose deadline already passed.
func expired(w http.ResponseWriter, r *http.Request) bool {
	if r.Context().Err() == nil {
		return false
	}
	writeError(w, http.StatusServiceUnavailable, "request timed out")

	return true
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Success:   true,
		Message:   HealthMessage,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Version:   s.version,
	})
}

func (s *Server) calculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Operation == "" || len(req.Matrices) == 0 {
		s.fail(w, r, fmt.Errorf("%w: operation and matrices are required", errBadRequest))
		return
	}
	if expired(w, r) {
		return
	}

	res, err := s.runCalculation(req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, calculateResponse{OperationResult: res, Formatted: calc.Format(res)})
}

func (s *Server) runCalculation(req calculateRequest) (calc.OperationResult, error) {
	isCross := req.Operation == calc.OpCross || req.Operation == calc.OpCrossSymbolic
	if isCross && len(req.Matrices) > 1 && (req.Matrices[0].hasVariables() || req.Matrices[1].hasVariables()) {
		return s.engine.CrossTokens(req.Matrices[0].flat(), req.Matrices[1].flat())
	}

	a, err := req.Matrices[0].toMatrix("Matrix A")
	if err != nil {
		return calc.OperationResult{}, err
	}
	var b matrix.Matrix
	if len(req.Matrices) > 1 && calc.IsBinary(req.Operation) {
		if b, err = req.Matrices[1].toMatrix("Matrix B"); err != nil {
			return calc.OperationResult{}, err
		}
	}

	return s.engine.Perform(req.Operation, a, b)
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if expired(w, r) {
		return
	}
	a, err := req.Matrix.toMatrix("Matrix A")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	analysis, err := s.engine.Analyze(a)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resp := analyzeResponse{Analysis: analysis}
	if len(req.MatrixB) > 0 {
		b, err := req.MatrixB.toMatrix("Matrix B")
		if err != nil {
			s.fail(w, r, err)
			return
		}
		c := s.engine.Compatibility(a, b)
		resp.Compatibility = &c
	}
	writeData(w, resp)
}

func (s *Server) cross(w http.ResponseWriter, r *http.Request) {
	var req crossRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if expired(w, r) {
		return
	}
	res, err := s.engine.CrossTokens(tokenStrings(req.A), tokenStrings(req.B))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, calculateResponse{OperationResult: res, Formatted: calc.Format(res)})
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request) {
	var sys solver.System
	if err := s.decode(w, r, &sys); err != nil {
		s.fail(w, r, err)
		return
	}
	if len(sys.Equations) == 0 {
		s.fail(w, r, fmt.Errorf("%w: equations are required", errBadRequest))
		return
	}
	if expired(w, r) {
		return
	}
	res, err := s.engine.Solve(sys)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	analysis, err := solver.Analyze(sys.Equations)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, solveResponse{
		Solution:  res,
		Analysis:  analysis,
		Verified:  solver.Verified(sys.Equations, res),
		Formatted: solver.Format(res),
	})
}

func (s *Server) convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	p, q, err := req.operands()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out, err := s.engine.Convert(req.Mode, p, q)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, out)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, fmt.Sprintf("route %s %s not found", r.Method, r.URL.Path))
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed on %s", r.Method, r.URL.Path))
}
