package main

import (
	"playground/internal/hello"
	"playground/internal/variables"

	"github.com/spf13/cobra"
)

var variablesAll bool

// helloCmd prints the greeting
var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: `Print "Hello, world!"`,
	Args:  cobra.NoArgs,
	RunE:  runHello,
}

// variablesCmd runs the variables demo
var variablesCmd = &cobra.Command{
	Use:   "variables",
	Short: "Show how shadowing differs from reassignment",
	Long: `Prints the value of x at each scope of a shadowing example:

  The value of x is: 5
  The value of x in the inner scope is: 12
  The value of x is: 6

With --all, reassignment, a compile-time constant and rebinding a name to a
new type are shown as well.`,
	Args: cobra.NoArgs,
	RunE: runVariables,
}

func runHello(cmd *cobra.Command, args []string) error {
	return hello.Run(cmd.OutOrStdout())
}

func runVariables(cmd *cobra.Command, args []string) error {
	if variablesAll {
		return variables.Walkthrough(cmd.OutOrStdout())
	}
	return variables.Shadowing(cmd.OutOrStdout())
}
