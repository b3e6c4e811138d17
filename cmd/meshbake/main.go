// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command meshbake generates procedural meshes into GPU-ready buffer
// files and writes the scene document that describes them.
package main

import (
	"os"

	"cogentcore.org/meshbake/base/errors"
)

func main() {
	if errors.Log(newRootCmd().Execute()) != nil {
		os.Exit(1)
	}
}
