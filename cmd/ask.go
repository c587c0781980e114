package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sharebot0/sharebot/internal/app"
	"github.com/sharebot0/sharebot/internal/artifact"
	"github.com/sharebot0/sharebot/internal/config"
	"github.com/sharebot0/sharebot/internal/lang"
	"github.com/sharebot0/sharebot/internal/log"
)

var (
	askLang string
	askOut  bool
)

var askCmd = &cobra.Command{
	Use:   "ask [request]",
	Short: "One-shot code generation to stdout or a file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askLang, "lang", "", "language label to request (js, py, html, ...)")
	askCmd.Flags().BoolVar(&askOut, "out", false, "write the result to a file instead of stdout")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	logger := log.New(log.Config{Level: logLevel()})

	a, err := app.Setup(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	defer a.Close() //nolint:errcheck

	question := strings.Join(args, " ")

	var hint lang.Tag
	if askLang != "" {
		hint = lang.FromLabel(askLang)
	}

	art, ok := a.Codegen.Generate(ctx, question, hint)
	if !ok {
		return fmt.Errorf("no code block produced for request")
	}

	if !askOut {
		fmt.Println(art.Code)
		return nil
	}

	f := artifact.SingleFile(art, time.Now())
	if err := os.WriteFile(f.Name, f.Data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", f.Name, err)
	}
	fmt.Println(f.Name)
	return nil
}
