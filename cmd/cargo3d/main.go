// Command cargo3d is a batch-mode driver for the cargo3d packing
// library: it loads a bin template and item list from a YAML/JSON job
// file and prints the resulting packing outcome.
package main

import "github.com/tvanriper/cargo3d/internal/cmd"

func main() {
	cmd.Parse()
}
