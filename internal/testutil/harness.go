// Package testutil provides in-memory fakes for the pipeline's external
// collaborators and a harness that runs the whole app against a recipe
// written to a temporary directory, capturing its log output.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/polygraingo/internal/app"
	"github.com/vk/polygraingo/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	OutputDir string
}

// Toolchain builds a fake toolchain whose collaborators tests can inspect.
func Toolchain() (*app.Toolchain, *FakeExporter) {
	exporter := &FakeExporter{}
	return &app.Toolchain{
		Cells:     &FakeCellBuilder{},
		Amorphous: &FakeAmorphousBuilder{},
		Tess:      &FakeTessellator{},
		Exporter:  exporter,
	}, exporter
}

// RunRecipeTest writes the recipe to a temp dir and runs the app against it
// with the given toolchain (fakes, typically). A nil toolchain exercises the
// real external tools, which tests avoid.
func RunRecipeTest(t *testing.T, recipe string, toolchain *app.Toolchain) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	recipePath := filepath.Join(tmpDir, "recipe.hcl")
	require.NoError(t, os.WriteFile(recipePath, []byte(recipe), 0o644))

	outputDir := filepath.Join(tmpDir, "out")
	cfg, err := app.NewConfig(app.Config{
		RecipePath:  recipePath,
		LogFormat:   "text",
		LogLevel:    "debug",
		Workers:     4,
		Seed:        1,
		OutputDir:   outputDir,
		ScratchRoot: tmpDir,
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	ctx := context.Background()

	testApp, err := app.New(ctx, logBuffer, cfg, hcl.NewLoader(), toolchain)
	if err != nil {
		return &HarnessResult{LogOutput: logBuffer.String(), Err: err, OutputDir: outputDir}
	}

	runErr := testApp.Run(ctx)
	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
		OutputDir: outputDir,
	}
}
