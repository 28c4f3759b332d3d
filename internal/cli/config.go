package cli

import (
	"fmt"

	"td/internal/storage"
	"td/internal/todo"
)

// DefaultFileName is the todo file used when neither --file nor TODO_FILE
// is set.
const DefaultFileName = "todo.txt"

// Config holds the resolved settings for one invocation.
type Config struct {
	// FilePath is the absolute path to the todo file.
	FilePath string
}

// loadList reads the todo file and parses it into a list.
// Every command starts from a fresh load; no state survives an invocation.
func loadList(cfg *Config) (*todo.List, error) {
	content, readErr := storage.ReadAll(cfg.FilePath)
	if readErr != nil {
		return nil, readErr
	}

	list, parseErr := todo.Load(content)
	if parseErr != nil {
		return nil, fmt.Errorf("%s: %w", cfg.FilePath, parseErr)
	}

	return list, nil
}

// saveList writes the list back to the todo file.
func saveList(cfg *Config, list *todo.List) error {
	return storage.WriteAll(cfg.FilePath, list.Content())
}
