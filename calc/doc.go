// SPDX-License-Identifier: MIT

// Package calc is the calculator façade used by the CLI and the HTTP API.
//
// An Engine dispatches named operations (add, multiply, cross, determinant,
// inverse, rank, ...) to the matrix, vector, symbolic and solver packages and
// wraps each answer in an OperationResult carrying a display symbol and
// description. The engine keeps no state between calls; its only fields are
// an optional zerolog.Logger and an optional Recorder for metrics.
//
// FormatNumber and friends render results with two decimals, printing any
// magnitude below DisplayZero as "0.00".
package calc
