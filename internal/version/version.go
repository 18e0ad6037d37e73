// Package version stamps the bkpsolver binary with a build version.
package version

import "github.com/seekerror/build"

var V = build.NewVersion(0, 1, 0)
