package main

import (
	"echoscribe/cmd/echoscribe/cmd"
)

func main() {
	cmd.Execute()
}
