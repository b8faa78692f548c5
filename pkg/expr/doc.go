// Package expr implements compile-time constant expression semantics for the
// register-description language. Expression trees are built by the parser or
// elaborator; this package predicts each tree's static result type, resolves
// the bit width every integer-like sub-expression is evaluated at (following
// the SystemVerilog self-/context-determined width rules, IEEE Std 1800-2012
// Table 11-21), and evaluates the tree with fixed-width wraparound arithmetic.
//
// Width resolution is bidirectional: most numeric operators share one width
// context with their parent, while relational, reduction, logical, and cast
// operators sever the context and size their operands independently. Shift
// and exponent right-hand operands and ternary conditions are self-determined
// as well. Evaluate runs the full sequence: type prediction, then width
// resolution at the context root, then value computation.
package expr
