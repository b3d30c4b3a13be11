// Package version records the suitekit release version.
package version

// Version is the current release version. Rewritten by `mage version:set`.
const Version = "0.3.0-dev"
