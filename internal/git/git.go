// Package git wraps the git CLI for the publish sequence: stage the log
// file, commit, push. Publishing is best-effort; the caller decides how
// loudly to report failures.
package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// IsRepo checks whether dir is inside a git working tree.
func IsRepo(dir string) bool {
	_, err := runGit(dir, "rev-parse", "--git-dir")
	return err == nil
}

// HasRemote reports whether the named remote is configured.
func HasRemote(dir, remote string) bool {
	output, err := runGit(dir, "remote")
	if err != nil {
		return false
	}
	for _, r := range strings.Split(strings.TrimSpace(output), "\n") {
		if strings.TrimSpace(r) == remote {
			return true
		}
	}
	return false
}

// Commit stages file and commits it with "Log entry: <message>".
func Commit(dir, file, message string) error {
	if _, err := runGit(dir, "add", file); err != nil {
		return fmt.Errorf("stage %s: %w", file, err)
	}
	if _, err := runGit(dir, "commit", "-m", "Log entry: "+message); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Publish commits file and pushes to the given remote and branch. The
// first failing step aborts the rest and its error is returned; an
// already-written log entry is unaffected.
func Publish(dir, file, message, remote, branch string) error {
	if err := Commit(dir, file, message); err != nil {
		return err
	}
	if _, err := runGit(dir, "push", remote, branch); err != nil {
		return fmt.Errorf("push to %s/%s: %w", remote, branch, err)
	}
	return nil
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", fmt.Errorf("%s: %s", err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
