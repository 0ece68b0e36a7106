// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spacegen generates RGB to XYZ color space conversion
// matrices and emits them as source code declarations.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/spacegen"
)

func main() {
	opts := cli.DefaultOptions("spacegen", "Spacegen derives the RGB to XYZ conversion matrices of standard RGB color spaces and emits them as generated source code declarations.")
	opts.DefaultFiles = []string{"spacegen.toml"}
	cli.Run(opts, &spacegen.Config{}, spacegen.Generate)
}
