package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Charl-AI/Charl-AI.github.io/internal/builder"
	"github.com/Charl-AI/Charl-AI.github.io/internal/logger"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site locally and rebuild on changes",
	Long: `The serve command performs an initial build, then serves the output
directory on a loopback address. Content, layout, and static directories are
watched for changes and the site is rebuilt automatically. Interrupting the
server (Ctrl+C) shuts it down cleanly.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		b, err := builder.New(appConfig)
		if err != nil {
			return err
		}
		if res, err := b.Build(ctx); err != nil {
			return fmt.Errorf("initial build failed:\n%w", err)
		} else {
			fmt.Printf("initial build: found %d files, built %d\n", res.Found, res.Built)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("creating file watcher: %w", err)
		}
		defer watcher.Close()

		go watchAndRebuild(ctx, watcher, b)

		for _, root := range []string{appConfig.ContentDir, appConfig.LayoutsDir, appConfig.StaticDir} {
			if err := watchTree(watcher, root); err != nil {
				logger.Warn("watching %s: %v", root, err)
			}
		}

		addr := fmt.Sprintf("127.0.0.1:%d", servePort)
		srv := &http.Server{Addr: addr, Handler: previewHandler(appConfig.OutputDir)}

		fmt.Printf("serving %s on http://%s (Ctrl+C to stop)\n", appConfig.OutputDir, addr)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutting down server: %w", err)
			}
			fmt.Println("server stopped")
			return nil
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)
		}
	},
}

// watchAndRebuild debounces filesystem events and triggers a full rebuild.
// Rebuild failures are reported but never stop the server.
func watchAndRebuild(ctx context.Context, watcher *fsnotify.Watcher, b *builder.Builder) {
	const debounce = 500 * time.Millisecond
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected: %s (%s)", event.Name, event.Op)

			// New subdirectories are not watched automatically.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						logger.Warn("watching new directory %s: %v", event.Name, err)
					}
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				if res, err := b.Build(ctx); err != nil {
					fmt.Fprintf(os.Stderr, "rebuild failed: %v\n", err)
				} else {
					fmt.Printf("rebuilt: found %d files, built %d\n", res.Found, res.Built)
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

// watchTree adds root and every directory below it to the watcher. fsnotify
// only watches explicit paths, so each subdirectory is registered.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	if _, err := os.Stat(root); err != nil {
		return err
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// previewHandler serves the output directory with caching disabled, so
// rebuilt pages show up on refresh.
func previewHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		files.ServeHTTP(w, r)
	})
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 1313, "port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
