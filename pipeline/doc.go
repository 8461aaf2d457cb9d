// Package pipeline evaluates scripted sequences of Square operations.
//
// Overview:
//
//   - A Script is decoded from YAML (gopkg.in/yaml.v3): a "matrices" mapping
//     followed by a list of "steps".
//   - A Runner binds the matrices in document order, then evaluates each step
//     against that environment and records an Outcome per step.
//   - Outcomes can be rendered as they are produced (WithOutput), which is how
//     the squaremat CLI prints its sections.
//
// Script format:
//
//	matrices:
//	  A: "1 2 3, 4 5 6, 7 8 9"        # text, parsed with matrix.Parse
//	  B: {dim: 3, fill: 1}            # matrix.New with WithFill
//	  I: {identity: 3}                # matrix.NewIdentity
//	  R: {dim: 2, values: [1, 2, 3, 4]}
//	steps:
//	  - {title: "A + B", op: add, args: [A, B]}
//	  - {op: set, args: [B], row: 1, col: 2, scalar: 42}
//	  - {op: mod-scalar, args: [A], modulus: 5, into: D}
//	  - {op: mul, args: [A, A], inplace: true}
//	  - {op: det, args: [A]}
//	  - {op: ge, args: [A, B]}
//
// Ops:
//
//   - matrix × matrix: add, sub, mul, hadamard, mod (each with an in-place form).
//   - matrix × scalar: scale, div, add-scalar, sub-scalar (Scalar), mod-scalar
//     (Modulus), pow (Power). All but pow have an in-place form.
//   - unary: neg, transpose, copy, print.
//   - reductions: det, trace, sum, at (Row, Col).
//   - mutations of Args[0]: set (Row, Col, Scalar), inc, dec, post-inc, post-dec.
//     The post forms report the value from before the update.
//   - relations by element sum: eq, ne, lt, le, gt, ge.
//
// Logging:
//
//   - The runner logs each bound matrix and each completed step at debug level
//     and failures at error level through go.uber.org/zap. The default logger
//     is zap.NewNop(); pass WithLogger to observe a run.
//
// Concurrency:
//
//   - Run is synchronous. The context is checked between steps, so a cancelled
//     run stops before the next step and returns the outcomes gathered so far.
package pipeline
