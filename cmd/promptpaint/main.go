// promptpaint - themed procedural artwork from text prompts
//
// promptpaint detects a colour theme from the words of a prompt and paints
// a gradient, abstract collage or geometric composition in that palette,
// entirely offline.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/promptpaint/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
