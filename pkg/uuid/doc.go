// Package uuid generates RFC 9562 identifiers.
//
// # Format
//
// A UUID is 16 bytes big-endian. Two versions are produced:
//
//   - Version 7: [48-bit unix ms timestamp][4-bit version=7][12-bit rand_a]
//     [2-bit variant=10][62-bit rand_b]. The timestamp occupies the most
//     significant bits, so byte-wise comparison of two v7 UUIDs generated in
//     different milliseconds preserves chronological order, and the same
//     holds for their hex renderings.
//   - Version 5: the first 16 bytes of SHA-1(namespace || name) with the
//     version and variant fields overwritten. Fully deterministic.
//
// # Entropy
//
// Version 7 generation draws 74 fresh bits per identifier from an
// entropy.Source supplied at construction. There is no implicit global
// generator; callers build one explicitly so that a failing source is
// visible at startup rather than at first use:
//
//	src := entropy.NewLocal()
//	g := uuid.NewGenerator(src)
//	u, err := g.New(ctx)
//	s := u.Render(uuid.FormatStandard)
//
// Within a single millisecond the relative order of generated UUIDs is
// determined by the random payload and carries no meaning.
package uuid
