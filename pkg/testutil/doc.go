// Package testutil provides an isolated environment for tests that touch
// configuration and log files.
//
// Usage guidelines:
//   - Tests that load configuration use NewTestEnvironment so the user's own
//     files and VARDUMP_ variables never leak in
//   - All test data should be defined inline, not in external files
package testutil
