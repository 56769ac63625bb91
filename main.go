// Package main is the entry point for the cigroup CLI.
package main

import "cigroup.dev/pkg/cigroup/cmd"

func main() {
	cmd.Execute()
}
