package main

import (
	"github.com/ryclarke/changelog-tool/cmd"
)

func main() {
	cmd.Execute()
}
