package cmd

import (
	"fmt"

	"github.com/marcus/devtrail/internal/config"
	"github.com/marcus/devtrail/internal/git"
	"github.com/marcus/devtrail/internal/models"
	"github.com/marcus/devtrail/internal/output"
	"github.com/marcus/devtrail/internal/store"
)

// publishLog commits and pushes log.json, downgrading every failure to a
// user-visible warning. The entry is already on disk by the time this
// runs, so nothing here may abort the invocation.
func publishLog(baseDir, message string) {
	if err := tryPublish(baseDir, message); err != nil {
		output.Warning("%v", err)
	}
}

// tryPublish runs the stage/commit/push sequence and returns the first
// failure. Used directly by the interactive shell, which reports errors
// through its own writer.
func tryPublish(baseDir, message string) error {
	if !git.IsRepo(baseDir) {
		return fmt.Errorf("%s is not a git repository, entry kept locally only", baseDir)
	}

	cfg, err := config.Load(baseDir)
	if err != nil {
		// Publish with defaults rather than skipping: the config only
		// supplies the remote and branch names.
		output.Warning("cannot read config: %v", err)
		cfg = &models.Config{}
	}

	remote := config.Remote(cfg)
	if !git.HasRemote(baseDir, remote) {
		if err := git.Commit(baseDir, store.LogFile, message); err != nil {
			return err
		}
		return fmt.Errorf("remote %q not configured, entry committed locally; add a remote to enable publishing", remote)
	}

	return git.Publish(baseDir, store.LogFile, message, remote, config.Branch(cfg))
}
