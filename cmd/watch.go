package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/pders01/mnemos/internal/git"
	"github.com/pders01/mnemos/internal/history"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate short-term memory whenever new commits land",
	Long: `Watch the repository's refs and rerun 'mnemos update' after commits,
merges, rebases and checkouts. Bursts of ref updates are collapsed into
one update after --debounce of quiet.

Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 2*time.Second, "Quiet period before updating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gitDir, err := git.GitDir(ctx, cfg.ProjectPath)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.ProjectPath, history.ErrNotARepository)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range refDirs(gitDir) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	h := history.New(newStore(cfg))
	log := logOf("watch")
	w := output(cmd)

	update := func() {
		res, err := h.Summarize(ctx)
		if err != nil {
			log.Error("update failed", "error", err)
			return
		}
		fmt.Fprintf(w, "[%s] %s\n", time.Now().Format("15:04:05"), res.Message())
	}

	update()
	fmt.Fprintf(w, "Watching %s for new commits...\n", gitDir)

	watchRefs(ctx, log, gitDir, watcher.Events, watcher.Errors, watchDebounce, update)
	return nil
}

// refDirs lists the git directories whose entries change when history moves
func refDirs(gitDir string) []string {
	dirs := []string{gitDir}
	_ = filepath.WalkDir(filepath.Join(gitDir, "refs", "heads"), func(path string, d os.DirEntry, err error) error {
		if err == nil && d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs
}

// isRefEvent reports whether an fsnotify event touches HEAD or a branch ref
func isRefEvent(gitDir string, ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	rel, err := filepath.Rel(gitDir, ev.Name)
	if err != nil || strings.HasSuffix(rel, ".lock") {
		return false
	}
	rel = filepath.ToSlash(rel)
	switch rel {
	case "HEAD", "ORIG_HEAD", "packed-refs":
		return true
	}
	return strings.HasPrefix(rel, "refs/heads/")
}

// watchRefs calls fn once per burst of ref events, after delay of quiet.
// It returns when ctx is done or either channel closes.
func watchRefs(ctx context.Context, log *slog.Logger, gitDir string, events <-chan fsnotify.Event, errs <-chan error, delay time.Duration, fn func()) {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !isRefEvent(gitDir, ev) {
				continue
			}
			log.Debug("ref changed", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(delay)
			} else {
				timer.Reset(delay)
			}
			fire = timer.C
		case err, ok := <-errs:
			if !ok {
				return
			}
			log.Warn("watch error", "error", err)
		case <-fire:
			fire = nil
			fn()
		}
	}
}
