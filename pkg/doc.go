// Package pkg provides the core functionality of peeking into pull-based sequences.
// This package (and subpackages) is a dependency of anything in the source package.
//   - The seq package defines the Seq and DoubleEnded sequence contracts and functions for creating and combining sequences.
//   - The peek package contains the lookahead/lookbehind buffer variants and the conditional consumption helpers.
package pkg
