package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/satech-mx/devicebilling/internal/config"
	"github.com/satech-mx/devicebilling/internal/version"
)

func main() {
	if os.Getenv("DEVICEBILLING_DEBUG") != "" {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Config path: %s\n", config.ConfigPath())
		os.Exit(1)
	}

	root := cobra.Command{
		Use:   "devicebilling",
		Short: "devicebilling reconciles platform device exports against cost sheets into a billing report.",
	}

	root.AddCommand(NewReconcileCommand(cfg))
	root.AddCommand(NewWatchCommand(cfg))
	root.AddCommand(NewVersionCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(version.String())
		},
	}
}
