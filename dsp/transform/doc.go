// Package transform provides discrete Fourier transforms over in-memory
// sequences.
//
// Two implementations are available:
//
//   - DFT / IDFT: the O(N^2) reference pair, direct evaluation of the
//     transform sums. Intended for correctness checks and small inputs.
//   - FFT / IFFT: recursive radix-2 decimation-in-time (Cooley-Tukey),
//     O(N log N). Inputs are zero-padded to the next power of two, so the
//     output length may exceed the input length; callers that need the
//     original length back must trim.
//
// The inverse FFT is computed with the swap trick: exchange real and
// imaginary parts, run the forward transform, exchange again and scale by
// 1/N. This reuses the forward recursion instead of a second routine.
//
// All functions allocate fresh output buffers and never mutate their
// inputs. Each call is a self-contained recursion with depth log2(N); no
// state survives across calls, so independent calls may run concurrently.
package transform
