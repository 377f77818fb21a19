package cmd

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/marcus/devtrail/internal/entry"
	"github.com/marcus/devtrail/internal/store"
)

// TestTryPublishNonRepo tests the local-only message outside git
func TestTryPublishNonRepo(t *testing.T) {
	err := tryPublish(t.TempDir(), "msg")
	if err == nil || !strings.Contains(err.Error(), "not a git repository") {
		t.Errorf("Expected non-repo error, got %v", err)
	}
}

// TestTryPublishWithoutRemoteCommitsLocally tests that a missing remote
// still gets the entry committed, with a warning instead of a push
func TestTryPublishWithoutRemoteCommitsLocally(t *testing.T) {
	dir := t.TempDir()
	mustGit(t, dir, "init")
	mustGit(t, dir, "config", "user.email", "test@test.com")
	mustGit(t, dir, "config", "user.name", "Test User")

	e, err := entry.Build("kept off the wire", "", false, testNow)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if _, err := store.Append(dir, e); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	err = tryPublish(dir, "kept off the wire")
	if err == nil || !strings.Contains(err.Error(), "committed locally") {
		t.Fatalf("Expected committed-locally warning, got %v", err)
	}

	out, gerr := exec.Command("git", "-C", dir, "log", "-1", "--pretty=%s").Output()
	if gerr != nil {
		t.Fatalf("git log failed: %v", gerr)
	}
	if got := strings.TrimSpace(string(out)); got != "Log entry: kept off the wire" {
		t.Errorf("Commit subject = %q", got)
	}
}

// TestTryPublishWithRemotePushes tests the push step against an
// unreachable remote
func TestTryPublishWithRemotePushes(t *testing.T) {
	dir := t.TempDir()
	mustGit(t, dir, "init")
	mustGit(t, dir, "config", "user.email", "test@test.com")
	mustGit(t, dir, "config", "user.name", "Test User")
	mustGit(t, dir, "remote", "add", "origin", dir+"/nonexistent.git")

	e, err := entry.Build("pushed entry", "", false, testNow)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if _, err := store.Append(dir, e); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// The remote exists but points nowhere, so the failure comes from
	// the push step, not the missing-remote path.
	err = tryPublish(dir, "pushed entry")
	if err == nil || !strings.Contains(err.Error(), "push") {
		t.Errorf("Expected push failure, got %v", err)
	}
}
