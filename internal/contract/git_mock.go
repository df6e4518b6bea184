package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify-based mock of the GitClient interface, used to
// exercise aggregation and handler logic without a git binary.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	callArgs := make([]interface{}, 0, len(args)+1)
	callArgs = append(callArgs, repoPath)
	for _, a := range args {
		callArgs = append(callArgs, a)
	}
	ret := m.Called(callArgs...)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// ActivityLog implements the GitClient interface.
func (m *MockGitClient) ActivityLog(_ context.Context, repoPath string, q LogQuery) ([]byte, error) {
	ret := m.Called(repoPath, q)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// NameOnlyLog implements the GitClient interface.
func (m *MockGitClient) NameOnlyLog(_ context.Context, repoPath string, q LogQuery) ([]byte, error) {
	ret := m.Called(repoPath, q)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// FileLog implements the GitClient interface.
func (m *MockGitClient) FileLog(_ context.Context, repoPath string, q LogQuery) ([]byte, error) {
	ret := m.Called(repoPath, q)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// PatternLog implements the GitClient interface.
func (m *MockGitClient) PatternLog(_ context.Context, repoPath string, q LogQuery) ([]byte, error) {
	ret := m.Called(repoPath, q)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// SubjectLog implements the GitClient interface.
func (m *MockGitClient) SubjectLog(_ context.Context, repoPath string, q LogQuery) ([]byte, error) {
	ret := m.Called(repoPath, q)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// ListFiles implements the GitClient interface.
func (m *MockGitClient) ListFiles(_ context.Context, repoPath string) ([]string, error) {
	ret := m.Called(repoPath)
	files, _ := ret.Get(0).([]string)
	return files, ret.Error(1)
}

// LastChangeUnix implements the GitClient interface.
func (m *MockGitClient) LastChangeUnix(_ context.Context, repoPath, path string) (int64, error) {
	ret := m.Called(repoPath, path)
	ts, _ := ret.Get(0).(int64)
	return ts, ret.Error(1)
}

// TagLog implements the GitClient interface.
func (m *MockGitClient) TagLog(_ context.Context, repoPath string) ([]byte, error) {
	ret := m.Called(repoPath)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}
