package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sharebot",
	Short: "ShareBot - chat-triggered code assistant backed by Gemini",
	Long: `ShareBot turns chat messages into code artifacts.

It classifies incoming requests, asks Gemini for code, extracts the
fenced code block from the reply, and packages it as a downloadable
file or a small project archive. Run "sharebot serve" to expose the
event gateway, or "sharebot ask" for a one-shot generation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
