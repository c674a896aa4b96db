// Package center locates the center of an unrooted tree: the one or two
// nodes minimizing eccentricity. A tree has exactly one center when its
// diameter is even and exactly two adjacent centers when it is odd.
//
// Two interchangeable strategies are provided and must agree on every valid
// tree (the property tests exercise this):
//
//   - LeafTrimming (default): peel off all current leaves layer by layer,
//     on a private degree copy, until one or two nodes remain. O(V), no
//     eccentricity table needed.
//   - ViaEccentricity: compute the full eccentricity table and return the
//     nodes attaining the minimum. O(V) as well, but with the constant
//     factor of the two-pass DP.
//
// Centers returns the center set sorted ascending, so results are
// comparable across strategies and runs.
//
// Errors:
//
//   - tree.ErrMalformedTree (and derived sentinels) on disconnected,
//     cyclic, or empty input.
//   - ErrUnknownStrategy for a Strategy value outside the declared set.
package center
