package main

import "github.com/deploymenttheory/go-cryptkit/cmd"

func main() {
	cmd.Execute()
}
