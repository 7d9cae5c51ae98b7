// Package source provides sequence endpoints that are not available with just the core pkg packages.
// Splitting these out into their own, independent (except what's provided in pkg) packages means that they can be omitted in favor of a smaller build size if the functionality isn't needed.
//
// "Source" functions should take input and return a seq.Seq (or seq.DoubleEnded where the input supports it) and potentially an error.
// Sources that operate asynchronously should close any resources, like file handles or channels, and stop the associated goroutine when they have reached the end of their input.
//
// "Sink" functions should take a seq.Seq - and optionally other parameters - and operate synchronously (the user may decide to call a Sink function in a goroutine).
// Sink functions should use seq.Drain on a sequence if they encounter an error to prevent upstream blocking.
//
//	Current packages:
//	- file provides source and sink for line-oriented files, including tail support.
//	- store provides a SQLite source and sink, with double-ended reads.
//	- stdstream provides source and sink for the standard streams.
package source
