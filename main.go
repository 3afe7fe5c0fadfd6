package main

import (
	"github.com/chronologic/eac-go/command/root"
)

func main() {
	root.NewRootCommand().Execute()
}
