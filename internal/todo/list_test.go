package todo_test

import (
	"testing"
	"time"

	"td/internal/todo"

	"github.com/stretchr/testify/require"
)

const sampleContent = "(A) 2025-01-01 Pay rent due:2025-02-01\n" +
	"Buy milk @store\n" +
	"x 2025-03-01 2025-01-02 Old chore\n"

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("parses lines in order", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load(sampleContent)
		require.NoError(t, err)
		require.Equal(t, 3, list.Len())

		records := list.Records()
		require.Equal(t, byte('A'), records[0].Priority)
		require.Equal(t, []string{"Buy", "milk", "@store"}, records[1].Body)
		require.True(t, records[2].Completed)
	})

	t.Run("empty content yields empty list", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load("")
		require.NoError(t, err)
		require.Equal(t, 0, list.Len())
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load("Buy milk\n\n   \nPay rent\n")
		require.NoError(t, err)
		require.Equal(t, 2, list.Len())
	})

	t.Run("malformed line is fatal with line number", func(t *testing.T) {
		t.Parallel()

		_, err := todo.Load("Buy milk\nPay rent due:eventually\n")
		require.ErrorIs(t, err, todo.ErrInvalidDate)
		require.ErrorContains(t, err, "line 2")
	})
}

func TestAdd(t *testing.T) {
	t.Parallel()

	list, err := todo.Load(sampleContent)
	require.NoError(t, err)

	rec, err := todo.NewActive("Water plants", time.Now())
	require.NoError(t, err)

	list.Add(rec)
	require.Equal(t, 4, list.Len())
	require.Equal(t, []string{"Water", "plants"}, list.Records()[3].Body)

	// No de-duplication.
	list.Add(rec)
	require.Equal(t, 5, list.Len())
}

func TestComplete(t *testing.T) {
	t.Parallel()

	today := date("2026-08-23")

	t.Run("marks the record done in place", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load(sampleContent)
		require.NoError(t, err)

		require.NoError(t, list.Complete(0, today))

		rec := list.Records()[0]
		require.True(t, rec.Completed)
		require.True(t, rec.CompletionDate.Equal(today))
		require.Equal(t, 3, list.Len())
	})

	t.Run("already done record is rejected", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load(sampleContent)
		require.NoError(t, err)

		require.ErrorIs(t, list.Complete(2, today), todo.ErrAlreadyDone)
	})

	t.Run("index out of range", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load(sampleContent)
		require.NoError(t, err)

		require.ErrorIs(t, list.Complete(3, today), todo.ErrIndexOutOfRange)
		require.ErrorIs(t, list.Complete(-1, today), todo.ErrIndexOutOfRange)
	})
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("shrinks by one preserving relative order", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load(sampleContent)
		require.NoError(t, err)

		removed, err := list.Remove(1)
		require.NoError(t, err)
		require.Equal(t, []string{"Buy", "milk", "@store"}, removed.Body)
		require.Equal(t, 2, list.Len())

		records := list.Records()
		require.Equal(t, byte('A'), records[0].Priority)
		require.True(t, records[1].Completed)
	})

	t.Run("index out of range", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load(sampleContent)
		require.NoError(t, err)

		_, err = list.Remove(3)
		require.ErrorIs(t, err, todo.ErrIndexOutOfRange)
		require.Equal(t, 3, list.Len())
	})
}

func TestSortByDue(t *testing.T) {
	t.Parallel()

	t.Run("soonest due first", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load("One due:2025-03-01\nTwo due:2025-01-15\nThree due:2025-02-10\n")
		require.NoError(t, err)

		require.Equal(t, []int{1, 2, 0}, list.SortByDue())
	})

	t.Run("completed and undated records are omitted", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load("No due date\nx 2025-03-01 Done due:2025-01-01\nSoon due:2025-02-01\n")
		require.NoError(t, err)

		require.Equal(t, []int{2}, list.SortByDue())
	})

	t.Run("equal due dates keep file order", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load("First due:2025-02-01\nSecond due:2025-01-01\nThird due:2025-02-01\n")
		require.NoError(t, err)

		require.Equal(t, []int{1, 0, 2}, list.SortByDue())
	})

	t.Run("does not reorder the list itself", func(t *testing.T) {
		t.Parallel()

		content := "One due:2025-03-01\nTwo due:2025-01-15\n"

		list, err := todo.Load(content)
		require.NoError(t, err)

		_ = list.SortByDue()
		require.Equal(t, content, list.Content())
	})
}

func TestSortByPriority(t *testing.T) {
	t.Parallel()

	t.Run("A sorts first", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load("(C) Third\n(A) First\n(B) Second\n")
		require.NoError(t, err)

		require.Equal(t, []int{1, 2, 0}, list.SortByPriority())
	})

	t.Run("completed and unprioritized records are omitted", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load("No priority\nx 2025-03-01 (A) Done\n(B) Active\n")
		require.NoError(t, err)

		require.Equal(t, []int{2}, list.SortByPriority())
	})

	t.Run("equal priorities keep file order", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load("(B) First\n(A) Urgent\n(B) Second\n")
		require.NoError(t, err)

		require.Equal(t, []int{1, 0, 2}, list.SortByPriority())
	})
}

func TestContent(t *testing.T) {
	t.Parallel()

	t.Run("one newline-terminated line per record", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load(sampleContent)
		require.NoError(t, err)
		require.Equal(t, sampleContent, list.Content())
	})

	t.Run("empty list yields empty content", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load("")
		require.NoError(t, err)
		require.Equal(t, "", list.Content())
	})

	t.Run("normalizes stray whitespace", func(t *testing.T) {
		t.Parallel()

		list, err := todo.Load("  Buy   milk  \n")
		require.NoError(t, err)
		require.Equal(t, "Buy milk\n", list.Content())
	})
}
