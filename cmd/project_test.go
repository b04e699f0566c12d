package cmd

import (
	"errors"
	"testing"

	"github.com/nikogura/career-risk/pkg/config"
	"github.com/nikogura/career-risk/pkg/engine"
	"github.com/nikogura/career-risk/pkg/factors"
	"github.com/spf13/cobra"
)

func newTestTable(t *testing.T) (table *factors.Table) {
	t.Helper()

	table, err := factors.NewTable(config.Default())
	if err != nil {
		t.Fatalf("Failed to build table: %v", err)
	}

	return table
}

// newHorizonCommand builds a throwaway command carrying only a --horizon
// flag, so flag state from other tests cannot leak in.
func newHorizonCommand() (cmd *cobra.Command) {
	cmd = &cobra.Command{Use: "test"}
	cmd.Flags().Int("horizon", 0, "")
	return cmd
}

func TestProjectNegativeHorizon(t *testing.T) {
	rootCmd.SetArgs([]string{"project", "--current", "0.36", "--horizon", "-5"})

	// A negative horizon must surface as an error, not crash while
	// building the step sequence.
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("Expected error for negative horizon, got nil")
	}

	if !errors.Is(err, engine.ErrInvalidHorizon) {
		t.Errorf("Expected ErrInvalidHorizon, got %v", err)
	}
}

func TestProjectZeroHorizon(t *testing.T) {
	rootCmd.SetArgs([]string{"project", "--current", "0.36", "--horizon", "0"})

	// An explicit zero is invalid, not a request for the default.
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("Expected error for zero horizon, got nil")
	}

	if !errors.Is(err, engine.ErrInvalidHorizon) {
		t.Errorf("Expected ErrInvalidHorizon, got %v", err)
	}
}

func TestResolveHorizonDefault(t *testing.T) {
	table := newTestTable(t)
	cmd := newHorizonCommand()

	// Flag not set: the configured default applies.
	horizon, err := resolveHorizon(cmd, table, 0)
	if err != nil {
		t.Fatalf("resolveHorizon failed: %v", err)
	}

	if horizon != table.DefaultHorizon() {
		t.Errorf("Expected default horizon %d, got %d", table.DefaultHorizon(), horizon)
	}
}

func TestResolveHorizonExplicit(t *testing.T) {
	table := newTestTable(t)
	cmd := newHorizonCommand()

	err := cmd.Flags().Set("horizon", "7")
	if err != nil {
		t.Fatalf("Failed to set flag: %v", err)
	}

	horizon, err := resolveHorizon(cmd, table, 7)
	if err != nil {
		t.Fatalf("resolveHorizon failed: %v", err)
	}

	if horizon != 7 {
		t.Errorf("Expected horizon 7, got %d", horizon)
	}
}

func TestResolveHorizonInvalid(t *testing.T) {
	table := newTestTable(t)

	tests := []struct {
		name  string
		value string
		flag  int
	}{
		{name: "explicit zero", value: "0", flag: 0},
		{name: "negative", value: "-2", flag: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newHorizonCommand()

			err := cmd.Flags().Set("horizon", tt.value)
			if err != nil {
				t.Fatalf("Failed to set flag: %v", err)
			}

			_, err = resolveHorizon(cmd, table, tt.flag)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}

			if !errors.Is(err, engine.ErrInvalidHorizon) {
				t.Errorf("Expected ErrInvalidHorizon, got %v", err)
			}
		})
	}
}

func TestTransitionSteps(t *testing.T) {
	steps := transitionSteps(10)

	if len(steps) != 11 {
		t.Fatalf("Expected 11 steps, got %d", len(steps))
	}

	for i, step := range steps {
		if step != i {
			t.Errorf("Expected step %d at index %d, got %d", i, i, step)
		}
	}
}
