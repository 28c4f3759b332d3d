package cli_test

import (
	"testing"
	"time"

	"td/internal/cli"
	"td/internal/todo"
)

func TestAddCommand(t *testing.T) {
	t.Parallel()

	today := time.Now().Format(todo.DateLayout)

	t.Run("creates the file and prints the new index", func(t *testing.T) {
		t.Parallel()

		r := cli.NewCLI(t)

		stdout := r.MustRun("add", "Buy", "milk", "@store")
		if stdout != "0" {
			t.Errorf("add printed %q, want %q", stdout, "0")
		}

		content := r.ReadTodoFile()
		cli.AssertContains(t, content, today+" Buy milk @store")
	})

	t.Run("appends to an existing file", func(t *testing.T) {
		t.Parallel()

		r := cli.NewCLI(t)
		r.WriteTodoFile("Existing todo\n")

		stdout := r.MustRun("add", "Second todo")
		if stdout != "1" {
			t.Errorf("add printed %q, want %q", stdout, "1")
		}

		content := r.ReadTodoFile()
		cli.AssertContains(t, content, "Existing todo\n")
		cli.AssertContains(t, content, "Second todo\n")
	})

	t.Run("honors explicit fields", func(t *testing.T) {
		t.Parallel()

		r := cli.NewCLI(t)
		r.MustRun("add", "(B)", "2025-01-01", "Pay rent", "due:2025-02-01")

		content := r.ReadTodoFile()
		cli.AssertContains(t, content, "(B) 2025-01-01 Pay rent due:2025-02-01\n")
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		r := cli.NewCLI(t)

		stderr := r.MustFail("add")
		cli.AssertContains(t, stderr, "todo text is required")
	})

	t.Run("rejects tag-only input", func(t *testing.T) {
		t.Parallel()

		r := cli.NewCLI(t)

		stderr := r.MustFail("add", "due:2025-02-01")
		cli.AssertContains(t, stderr, "non-empty description")

		if r.ReadTodoFile() != "" {
			t.Error("failed add must not create the todo file")
		}
	})

	t.Run("rejects invalid due date without writing", func(t *testing.T) {
		t.Parallel()

		r := cli.NewCLI(t)
		r.WriteTodoFile("Existing todo\n")

		stderr := r.MustFail("add", "Pay rent", "due:eventually")
		cli.AssertContains(t, stderr, "invalid date")

		if r.ReadTodoFile() != "Existing todo\n" {
			t.Error("failed add must leave the file unchanged")
		}
	})
}
