// Package lvsignal models continuous-time signal blocks over a scalar or
// vector value domain, backed by a small dense Vector/Matrix kernel.
//
// What is inside:
//
//	value/         — the Value constraint and aliasing-free Copy
//	matrix/        — Vector and Matrix with parallel elementwise kernels,
//	                 tree-reduced sums, sorting and row statistics
//	block/         — Source, Sink and Transfer roles (pure and mutating),
//	                 adapters, func types and the Drive helper
//	continuous/    — Integrator, Differentiator and their vector forms
//	discontinuous/ — Saturation
//	source/, sink/ — Step, Constant, Ramp, Sine and the Recorder sink
//	dtw/           — Dynamic Time Warping between recorded traces
//	config/        — YAML/viper block declarations and builders
//	logging/       — zap-backed logr loggers
//	metrics/       — Prometheus instrumentation for transfer blocks
//
// Callers own the time axis: blocks never read a clock and never schedule
// themselves. Drive a block by calling TransferMut with non-decreasing
// timestamps at whatever cadence the application needs.
//
//	integ := continuous.NewIntegrator(0)
//	for _, t := range []float64{0, 0.5, 1} {
//		past, err := integ.TransferMut(t, t)
//		...
//	}
package lvsignal
