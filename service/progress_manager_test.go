package service

import (
	"testing"
)

func TestNewProgressManagerDisabled(t *testing.T) {
	pm := NewProgressManager(false)
	defer pm.Close()

	if pm.IsInteractive() {
		t.Error("Disabled progress manager should not be interactive")
	}
	if _, ok := pm.(*NoOpProgressManager); !ok {
		t.Errorf("Disabled progress manager should be a no-op, got %T", pm)
	}
}

func TestNoOpProgressManager(t *testing.T) {
	pm := &NoOpProgressManager{}
	defer pm.Close()

	task := pm.StartTask("checking", 10)
	// No-op methods must be safe to call
	task.Increment(5)
	task.Describe("halfway")
	task.Complete()

	if pm.IsInteractive() {
		t.Error("No-op progress manager should not be interactive")
	}
}

func TestIsInteractiveEnvironmentUnderCI(t *testing.T) {
	t.Setenv("CI", "true")

	if IsInteractiveEnvironment() {
		t.Error("CI environment should not be interactive")
	}
}
