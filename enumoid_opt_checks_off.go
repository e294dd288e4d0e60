//go:build !enumoid_opt_checks

package enumoid

// enableChecks compiles in the bound assertions guarding unchecked word
// conversions. Enable with -tags enumoid_opt_checks.
const enableChecks = false
