package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the repmaze version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("repmaze v%s\n", version)
		},
	}

	rootCmd.AddCommand(cmd)
}
