// Package main is the entry point for the cobble CLI.
package main

import "cobble.dev/pkg/cobble/cmd"

func main() {
	cmd.Execute()
}
