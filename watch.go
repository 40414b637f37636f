package catlog

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// LoadRuleFile reads a rule string from path and installs it. The file holds
// a single rule string in SetLogRule syntax; surrounding whitespace is
// ignored.
func LoadRuleFile(path string) error {
	if path == "" {
		return ErrEmptyRulePath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read rule file")
	}
	SetLogRule(strings.TrimSpace(string(data)))
	return nil
}

// WatchRuleFile installs the rule string from path and re-installs it every
// time the file changes. It blocks until ctx is cancelled (returning
// ctx.Err()) or the watcher fails. The file may be absent at startup; it is
// picked up when created.
func WatchRuleFile(ctx context.Context, path string) error {
	if path == "" {
		return ErrEmptyRulePath
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create rule watcher")
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors and configuration
	// managers replace files by rename, which drops a watch placed on the
	// file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "watch %s", dir)
	}

	if err := applyRuleFile(path); err != nil {
		return err
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, "resolve rule file path")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return ErrWatcherClosed
			}
			if !ev.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
				continue
			}
			if name, err := filepath.Abs(ev.Name); err != nil || name != target {
				continue
			}
			if err := applyRuleFile(path); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return ErrWatcherClosed
			}
			return errors.Wrap(err, "rule watcher")
		}
	}
}

// applyRuleFile loads the file, treating absence as "no rules yet" rather
// than a failure.
func applyRuleFile(path string) error {
	if err := LoadRuleFile(path); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return err
	}
	return nil
}
