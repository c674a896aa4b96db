// Package algorithms is a library of tree-structure algorithms over sparse
// adjacency-list trees: rooting, linear-time eccentricities via re-rooting,
// center location, AHU isomorphism, and generic subtree aggregation.
//
// Everything is organized under small single-purpose subpackages:
//
//	tree/         — Node, Unrooted and Rooted types; the rooting transformation
//	eccentricity/ — per-node eccentricities, diameter, radius, height
//	center/       — center location (leaf-trimming and eccentricity strategies)
//	isomorphism/  — unrooted and rooted tree isomorphism (AHU canonical forms)
//	aggregate/    — generic post-order folds: subtree sizes, sums, leaf sums
//	treebuild/    — deterministic and random tree constructors for callers and tests
//
// The core is pure and synchronous: every call owns its inputs for the
// duration only, produces freshly owned outputs, and shares nothing between
// calls. Structurally invalid input (disconnected, cyclic, out-of-range ids)
// is rejected with tree.ErrMalformedTree-derived sentinels; there is no
// partial or best-effort result.
//
// Quick ASCII example:
//
//	0─1─2─3─4
//
//	is the path P5: eccentricities [4 3 2 3 4], diameter 4, center {2}.
package algorithms
