// Package main is the entry point for the Echoes of Ember CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ember",
	Short: "Echoes of Ember, a short text-based RPG",
	Long:  `Echoes of Ember is a single-player, turn-based text adventure: pick a class, explore, fight, and earn one of several endings.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
}
