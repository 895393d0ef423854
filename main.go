/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command vbo parses and converts VBOX telemetry logs.
package main

import (
	"os"
	_ "time/tzdata"

	"bennypowers.dev/vbo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
