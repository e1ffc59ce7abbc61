package main

import (
	"fmt"
	"os"

	"github.com/avdva/pgnumeric/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(nil).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
