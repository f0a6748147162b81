// Copyright 2023 Intrinsic Innovation LLC

// Package production provides initialization functionality for Golang binaries.
package production

import (
	"flag"

	"github.com/spf13/pflag"
)

// Init makes the flags registered with the standard flag package (glog's -v,
// -logtostderr, ...) available on fs and marks the standard flag set as parsed.
func Init(fs *pflag.FlagSet) {
	fs.AddGoFlagSet(flag.CommandLine)
	// glog complains about logging before flag.Parse otherwise. Values are filled in
	// when cobra parses fs.
	flag.CommandLine.Parse(nil)
}
