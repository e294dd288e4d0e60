//go:build enumoid_opt_checks

package enumoid

// enableChecks compiles in the bound assertions guarding unchecked word
// conversions. It is on for this build.
const enableChecks = true
