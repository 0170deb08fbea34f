//go:build !release

package logfather

// debugBuild marks development builds. When false, the Debug and Diag call
// sites compile down to no-ops: the constant check is the first statement in
// every such entry point, so release builds eliminate the bodies entirely.
const debugBuild = true
