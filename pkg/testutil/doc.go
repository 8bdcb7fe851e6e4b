// Package testutil provides shared helpers for stampname tests.
//
// Key components:
//   - NewTestFS: in-memory afero filesystem with file seeding helpers
//   - FixedClock and StepClock: deterministic clocks for name generation
//   - AssertFileExists / AssertNoFile: filesystem assertions
//
// Usage guidelines:
//   - Prefer the memory filesystem; use t.TempDir() only for end-to-end tests
//   - All test data should be defined inline, not in external files
package testutil
