package kcm

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch runs the batch, then re-runs it whenever the manifest is written or
// re-created, until ctx is done. The directory is watched rather than the
// file so that editors which save by renaming are still seen. notify, when
// set, receives the outcome of every run.
func Watch(ctx context.Context, manifestPath, outputDir string, batch *Batch, notify func(*BatchResult, error)) error {
	manifest, err := filepath.Abs(manifestPath)
	if err != nil {
		return Fatal(err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return Fatal(err)
	}
	defer watcher.Close()
	// registered before the first run so edits made during it are seen
	err = watcher.Add(filepath.Dir(manifest))
	if err != nil {
		return Fatal(err)
	}
	if batch.Generator.verbose {
		log.Printf("watching %s\n", manifest)
	}

	result, err := batch.Run(manifest, outputDir)
	if notify != nil {
		notify(result, err)
	}
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != manifest {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if batch.Generator.debug {
				log.Printf("event: %s\n", event)
			}
			result, err := batch.Run(manifest, outputDir)
			if err != nil {
				Warning("regenerate failed: %v", err)
			}
			if notify != nil {
				notify(result, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			Warning("watcher: %v", err)
		}
	}
}
