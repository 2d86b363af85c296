package main

import (
	"github.com/mealpantry/recipe-normalizer/pkg/cli"
)

func main() {
	cli.Execute()
}
