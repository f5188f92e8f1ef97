package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golang-vlandevd",
	Short: "golang-vlandevd is a VLAN sub-interface daemon written in Go",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
