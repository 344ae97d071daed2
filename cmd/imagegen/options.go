package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/domain"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List aspect ratios, styles and example prompts",
	Args:  cobra.NoArgs,
	Run:   runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Aspect ratios:")
	for _, tag := range domain.AspectRatios() {
		d := domain.AspectDimensions(tag)
		fmt.Fprintf(out, "  %-5s %5d x %-5d\n", tag, d.Width, d.Height)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Styles:")
	for _, tag := range domain.Styles() {
		fmt.Fprintf(out, "  %-16s %s\n", tag, domain.StyleLabel(tag))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	for i, p := range domain.ExamplePrompts() {
		fmt.Fprintf(out, "  %d. %s\n", i+1, p)
	}
}
