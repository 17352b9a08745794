// Package entropy defines the boundary to the external randomness source
// consumed by v7 UUID generation, plus the adapters that implement it.
//
// # Overview
//
// The Source interface models one operation: produce a fixed-length
// sequence of unbiased random bits, possibly blocking. Three adapters are
// provided:
//
//   - Local: the operating system CSPRNG via crypto/rand. The drop-in
//     substitute for environments without access to the entropy network.
//   - Beacon: per-draw HTTP requests fanned out to the entropy network's
//     nodes; the first node to answer wins.
//   - Stream: a long-lived websocket subscription to one node, buffering
//     pushed entropy frames and serving draws from the buffer.
//
// All adapters honor the same contract: every draw returns fresh bits that
// no other draw has observed, and a source that cannot produce bits fails
// with ErrUnavailable instead of degrading silently. Retry policy beyond
// what an adapter owns internally belongs to the caller.
package entropy
