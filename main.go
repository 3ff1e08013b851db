package main

import (
	"fmt"
	"os"

	"jmoret/bankparse/cmd/categorize"
	"jmoret/bankparse/cmd/parse"
	"jmoret/bankparse/cmd/root"
	"jmoret/bankparse/cmd/serve"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
