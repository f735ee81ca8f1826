package store

import (
	"context"
	"encoding/json"
	"sync"

	"timesheet.app/timesheet/timesheet/core"
)

// MemoryStore holds drafts in process. Drafts are kept encoded so callers
// never share an editor value.
type MemoryStore struct {
	mu     sync.Mutex
	drafts map[draftKey][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: map[draftKey][]byte{}}
}

func (s *MemoryStore) Load(ctx context.Context, employeeID int, monday string) (*core.WeekEditor, error) {
	s.mu.Lock()
	data, ok := s.drafts[draftKey{employeeID, monday}]
	s.mu.Unlock()
	if !ok {
		return nil, ErrDraftNotFound
	}
	return decodeEditor(data)
}

func (s *MemoryStore) Save(ctx context.Context, editor *core.WeekEditor) error {
	data, err := json.Marshal(editor)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draftKey{editor.EmployeeID, editor.Monday}] = data
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, employeeID int, monday string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, draftKey{employeeID, monday})
	return nil
}

func decodeEditor(data []byte) (*core.WeekEditor, error) {
	var editor core.WeekEditor
	if err := json.Unmarshal(data, &editor); err != nil {
		return nil, err
	}
	editor.Normalize()
	return &editor, nil
}
