package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/satech-mx/devicebilling/internal/config"
)

// settleDelay absorbs the burst of events spreadsheet tools emit while
// replacing a file on save.
const settleDelay = 500 * time.Millisecond

func NewWatchCommand(cfg config.Config) *cobra.Command {
	flags := &reconcileFlags{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the reconciliation whenever either input workbook changes.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runWatch(cmd, cfg, flags)
		},
	}
	flags.register(cmd, cfg)
	return cmd
}

func runWatch(cmd *cobra.Command, cfg config.Config, flags *reconcileFlags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runReconcile(cmd, cfg, flags); err != nil {
		cmd.PrintErrln(err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Spreadsheet editors replace files rather than rewriting them in place,
	// so watch the parent directories and filter on the two paths.
	watched := make(map[string]bool, 2)
	for _, p := range []string{flags.platformsPath, flags.costsPath} {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		watched[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
		}
	}
	cmd.Println("Watching for changes. Press Ctrl+C to stop.")

	timer := time.NewTimer(settleDelay)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(settleDelay)
			pending = true
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		case <-timer.C:
			pending = false
			if err := runReconcile(cmd, cfg, flags); err != nil {
				cmd.PrintErrln(err)
			}
		}
	}
}
