// SPDX-License-Identifier: MPL-2.0

package manage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeManageScript writes a stand-in management entry point into dir. The
// tests use /bin/sh as the "interpreter", so the entry point is a shell
// script that prints its subcommand and exits with $FAKE_MANAGE_EXIT.
func writeManageScript(t *testing.T, dir string) string {
	t.Helper()

	script := `echo "manage $1 $2"
exit ${FAKE_MANAGE_EXIT:-0}
`
	path := filepath.Join(dir, "manage.sh")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return "manage.sh"
}

func newTestInvoker(t *testing.T, appDir string) (*Invoker, *bytes.Buffer) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("test invoker requires /bin/sh")
	}

	var stdout bytes.Buffer
	inv := &Invoker{
		Interpreter:  "/bin/sh",
		ManageScript: writeManageScript(t, appDir),
		AppDir:       appDir,
		Stdout:       &stdout,
		Stderr:       &bytes.Buffer{},
	}
	return inv, &stdout
}

func TestInvoker_RunSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	appDir := t.TempDir()
	inv, stdout := newTestInvoker(t, appDir)

	result := inv.Run(context.Background(), SubcommandMigrate)
	if !result.IsSuccess() {
		t.Fatalf("Run() result = %+v, want success", result)
	}

	output := strings.TrimSpace(stdout.String())
	if output != "manage migrate --noinput" {
		t.Errorf("Run() output = %q, want %q", output, "manage migrate --noinput")
	}
}

func TestInvoker_NonZeroExitPropagates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	appDir := t.TempDir()
	inv, _ := newTestInvoker(t, appDir)

	t.Setenv("FAKE_MANAGE_EXIT", "3")

	result := inv.Run(context.Background(), SubcommandCollectStatic)
	if result.ExitCode != 3 {
		t.Errorf("Run() exit code = %d, want 3", result.ExitCode)
	}
	if result.Error != nil {
		t.Errorf("Run() error = %v, want nil for normal non-zero termination", result.Error)
	}
}

func TestInvoker_MissingInterpreter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	appDir := t.TempDir()
	inv := &Invoker{
		Interpreter:  filepath.Join(appDir, "no-such-python"),
		ManageScript: writeManageScript(t, appDir),
		AppDir:       appDir,
		Stdout:       &bytes.Buffer{},
		Stderr:       &bytes.Buffer{},
	}

	result := inv.Run(context.Background(), SubcommandMigrate)
	if result.IsSuccess() {
		t.Fatal("Run() succeeded, want failure for missing interpreter")
	}
	if !errors.Is(result.Error, ErrInterpreterNotFound) {
		t.Errorf("Run() error = %v, want ErrInterpreterNotFound", result.Error)
	}
}

func TestInvoker_SubcommandOrderIsCallerControlled(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	appDir := t.TempDir()
	inv, stdout := newTestInvoker(t, appDir)

	for _, sub := range []string{SubcommandMigrate, SubcommandCollectStatic} {
		if result := inv.Run(context.Background(), sub); !result.IsSuccess() {
			t.Fatalf("Run(%s) result = %+v, want success", sub, result)
		}
	}

	output := stdout.String()
	migrateIdx := strings.Index(output, "manage migrate")
	collectIdx := strings.Index(output, "manage collectstatic")
	if migrateIdx < 0 || collectIdx < 0 || migrateIdx > collectIdx {
		t.Errorf("Run() output order wrong: %q", output)
	}
}
