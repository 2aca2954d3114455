// Package conv provides linear convolution of real sequences.
//
// Three time-domain variants share one mathematical definition:
//
//   - Direct: the textbook O(N*M) loop with per-term bounds checks.
//   - Optimized: the same full result, restructured into ramp-up,
//     steady-state, and ramp-down regions so the hot inner loop runs
//     without bounds checks.
//   - Same: the central window of the full convolution, trimmed to the
//     length of the longer operand.
//
// For long kernels an FFT-based overlap-add path is available:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	result, err := c.Process(signal)
//
// or one-shot via [FFTConvolve]. [Convolve] picks between Direct and
// overlap-add based on kernel length.
//
// Convolution is commutative, and every entry point normalizes its
// operands so that the shorter sequence acts as the kernel. All functions
// allocate fresh outputs and never mutate their inputs.
package conv
