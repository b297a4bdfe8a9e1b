// Command itn is a command-line front end over the itn library: single-
// expression and sentence normalization, custom rule management, and
// fixture-file test running.
package main

import "github.com/speechnorm/go-itn/cmd/itn/cmd"

func main() {
	cmd.Execute()
}
