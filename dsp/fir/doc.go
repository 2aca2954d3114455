// Package fir designs finite-impulse-response filter kernels.
//
// The workflow follows the windowed-sinc method: generate an ideal lowpass
// sinc truncated to an odd kernel length, taper it with a Blackman window,
// and rescale for unity gain at DC. An existing lowpass kernel can then be
// relocated without redesign:
//
//   - SpectralInversion flips the response top-to-bottom, turning a lowpass
//     into a highpass at the same cutoff.
//   - SpectralReversal mirrors the response about a quarter of the sample
//     rate, turning lowpass(fc) into highpass(0.5-fc).
//
// Both relocations are involutions: applying one twice restores the
// original kernel.
//
// Cutoff frequencies are normalized to the sample rate, so fc = 0.5 is the
// Nyquist frequency. Kernel lengths must be odd so the kernel has a single
// center tap; every constructor validates its parameters before writing
// any output.
package fir
