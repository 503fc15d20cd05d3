// File: cmd/ringdemo/main.go
// Package main
// Demo driver for hioload-ring buffers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
