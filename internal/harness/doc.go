// Package harness runs YAML-defined conformance scenarios against a
// fresh dispatcher.
//
// A scenario lists command lines exactly as a user would type them in
// the shell, split into a setup section (assumed to succeed) and a
// flow section (each step may carry an expect clause). After the flow,
// assertions check the final table contents and the transcript.
//
// Scenarios run with a fixed clock so BACKUP filenames are stable, and
// every occurrence of $WORK in a command line is replaced with a
// per-run working directory. Paths are scrubbed back to $WORK in the
// transcript, which keeps golden files deterministic across runs.
//
// DELETE confirmations are answered Y automatically; a scenario that
// wants to exercise cancellation belongs in the cli package tests,
// where the real prompt loop runs.
//
// Example scenario file:
//
//	name: insert-and-sort
//	description: inserting two records and listing them by mark
//	flow:
//	  - command: INSERT ID=1 Name="Ann" Programme="CS" Mark=70.0
//	    expect:
//	      status: ok
//	  - command: SHOW ALL SORT BY MARK DESC
//	assertions:
//	  - type: record_count
//	    count: 2
package harness
