package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "meshctl",
		Short: "drive mesh vertex snapping and ghost exchange rounds",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newAdminCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
