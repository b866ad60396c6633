package mock

import (
	"context"
	"sync"

	"github.com/poiesic/schoolfinder/directory"
)

// MockDirectory is a test double for directory.Directory.
// It is safe for concurrent use, since strategies call it in parallel.
type MockDirectory struct {
	// AutocompleteFunc is called by Autocomplete if set.
	AutocompleteFunc func(ctx context.Context, q directory.AutocompleteQuery) ([]directory.RawSchool, error)

	// SchoolsFunc is called by Schools if set.
	SchoolsFunc func(ctx context.Context, q directory.SchoolsQuery) ([]directory.RawSchool, error)

	// SchoolFunc is called by School if set.
	// If nil, School returns a 404 DirectoryError.
	SchoolFunc func(ctx context.Context, id string) (directory.RawSchool, error)

	mu                sync.Mutex
	autocompleteCalls []directory.AutocompleteQuery
	schoolsCalls      []directory.SchoolsQuery
	schoolCalls       []string
}

var _ directory.Directory = (*MockDirectory)(nil)

// NewMockDirectory creates a mock directory that returns no schools.
func NewMockDirectory() *MockDirectory {
	return &MockDirectory{}
}

// Failing returns a mock whose every call fails with err.
func Failing(err error) *MockDirectory {
	return &MockDirectory{
		AutocompleteFunc: func(context.Context, directory.AutocompleteQuery) ([]directory.RawSchool, error) {
			return nil, err
		},
		SchoolsFunc: func(context.Context, directory.SchoolsQuery) ([]directory.RawSchool, error) {
			return nil, err
		},
		SchoolFunc: func(context.Context, string) (directory.RawSchool, error) {
			return nil, err
		},
	}
}

func (m *MockDirectory) Autocomplete(ctx context.Context, q directory.AutocompleteQuery) ([]directory.RawSchool, error) {
	m.mu.Lock()
	m.autocompleteCalls = append(m.autocompleteCalls, q)
	fn := m.AutocompleteFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, q)
	}
	return nil, nil
}

func (m *MockDirectory) Schools(ctx context.Context, q directory.SchoolsQuery) ([]directory.RawSchool, error) {
	m.mu.Lock()
	m.schoolsCalls = append(m.schoolsCalls, q)
	fn := m.SchoolsFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, q)
	}
	return nil, nil
}

func (m *MockDirectory) School(ctx context.Context, id string) (directory.RawSchool, error) {
	m.mu.Lock()
	m.schoolCalls = append(m.schoolCalls, id)
	fn := m.SchoolFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, id)
	}
	return nil, &directory.DirectoryError{Status: 404, Message: "not found"}
}

// AutocompleteCalls returns a copy of every autocomplete query received.
func (m *MockDirectory) AutocompleteCalls() []directory.AutocompleteQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]directory.AutocompleteQuery(nil), m.autocompleteCalls...)
}

// SchoolsCalls returns a copy of every schools query received.
func (m *MockDirectory) SchoolsCalls() []directory.SchoolsQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]directory.SchoolsQuery(nil), m.schoolsCalls...)
}

// SchoolCalls returns every id passed to School.
func (m *MockDirectory) SchoolCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.schoolCalls...)
}

// CallCount returns the number of times any method was called.
func (m *MockDirectory) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.autocompleteCalls) + len(m.schoolsCalls) + len(m.schoolCalls)
}

// Reset clears recorded calls and injected functions.
func (m *MockDirectory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autocompleteCalls = nil
	m.schoolsCalls = nil
	m.schoolCalls = nil
	m.AutocompleteFunc = nil
	m.SchoolsFunc = nil
	m.SchoolFunc = nil
}
