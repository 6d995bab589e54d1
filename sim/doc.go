// Package sim provides the core AMC (adaptive modulation and coding)
// evaluation engine.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - bler.go: sigmoid BLER-vs-SNR approximation per MCS entry
//   - threshold.go: bisection search for per-MCS SNR thresholds
//   - simulator.go: the SNR sweep, strategy scoring, and aggregation
//
// # Architecture
//
// A run flows through four phases (Idle -> Sweeping -> Aggregating -> Done):
// Setup resolves the MCS table (mcs.go, tables.go), derives the shared BLER
// curve parameters, and builds one threshold table per configured strategy
// (strategy.go). The sweep then walks the SNR grid; for each sample and
// strategy it selects an MCS, adjusts BLER for HARQ Chase Combining when
// enabled (harq.go), and scores throughput (throughput.go). Aggregation
// reduces each strategy's series to summary statistics (metrics.go), and the
// finished SimulationResult is read-only; export.go serializes it to CSV.
//
// Everything is synchronous and CPU-bound; all shared tables are immutable
// once Setup completes.
package sim
