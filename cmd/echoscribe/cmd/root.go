package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"echoscribe/cmd/echoscribe/cmd/serve"
	"echoscribe/cmd/echoscribe/cmd/user"
	"echoscribe/cmd/echoscribe/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "echoscribe",
	Short: "An authenticated audio transcription API service",
	Long: `EchoScribe accepts audio uploads over an authenticated HTTP API,
relays them to an external speech-to-text service, and persists transcript
text alongside user accounts.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(user.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
