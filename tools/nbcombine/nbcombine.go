// Copyright 2023 Intrinsic Innovation LLC

package main

import (
	_ "nbcombine/tools/nbcombine/cmd/create"
	"nbcombine/tools/nbcombine/cmd/root"
	_ "nbcombine/tools/nbcombine/cmd/sources"
	_ "nbcombine/tools/nbcombine/cmd/version"
)

func main() {
	root.Nbcombine()
}
