package main

import (
	"hardstore/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
