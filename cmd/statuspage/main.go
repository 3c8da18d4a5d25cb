package main

import (
	"statuspage/internal/cmd"
)

func main() {
	cmd.Execute()
}
