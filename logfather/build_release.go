//go:build release

package logfather

// debugBuild is false in release builds: Debug and Diag records are compiled
// out rather than filtered at runtime. Build with -tags release to enable.
const debugBuild = false
