package config

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the configuration each time the file at path is written or
// created and hands the result to onChange. A config that fails to load or
// validate is passed as an error and the previous one stays in effect.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func(*TranslatableConfig, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				cfg, err := LoadFile(path)
				if err == nil {
					err = cfg.Validate()
				}
				if err != nil {
					onChange(nil, err)
					continue
				}

				configMu.Lock()
				globalConfig = cfg
				configMu.Unlock()
				onChange(cfg, nil)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onChange(nil, fmt.Errorf("watcher error: %w", err))
		}
	}
}
