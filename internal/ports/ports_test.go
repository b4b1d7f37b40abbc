package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockChecker implements HealthChecker for testing.
type mockChecker struct {
	name  string
	err   error
	calls int
}

func (m *mockChecker) Name() string {
	return m.name
}

func (m *mockChecker) Check(ctx context.Context) error {
	m.calls++
	return m.err
}

// TestNewHealthRegistry verifies that a new registry is created with empty checkers.
func TestNewHealthRegistry(t *testing.T) {
	registry := NewHealthRegistry()

	require.NotNil(t, registry)
	assert.NotNil(t, registry.checkers)
	assert.Empty(t, registry.checkers)
}

// TestRegister_Success verifies that a checker can be registered successfully.
func TestRegister_Success(t *testing.T) {
	registry := NewHealthRegistry()
	checker := &mockChecker{name: "forismatic"}

	err := registry.Register(checker)

	require.NoError(t, err)
	assert.Len(t, registry.checkers, 1)
}

// TestRegister_DuplicateName verifies that registering the same name twice fails.
func TestRegister_DuplicateName(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&mockChecker{name: "forismatic"}))

	err := registry.Register(&mockChecker{name: "forismatic"})

	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "forismatic")
	assert.Len(t, registry.checkers, 1)
}

// TestCheckAll_NoCheckers verifies that an empty registry returns healthy status.
func TestCheckAll_NoCheckers(t *testing.T) {
	registry := NewHealthRegistry()

	result := registry.CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.NotNil(t, result.Checks)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

// TestCheckAll_AllHealthy verifies that healthy checkers result in healthy status, in order.
func TestCheckAll_AllHealthy(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&mockChecker{name: "forismatic"}))
	require.NoError(t, registry.Register(&mockChecker{name: "hapesire"}))

	result := registry.CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusHealthy, result.Status)
	require.Len(t, result.Checks, 2)
	assert.Equal(t, "forismatic", result.Checks[0].Name)
	assert.Equal(t, "hapesire", result.Checks[1].Name)

	for _, check := range result.Checks {
		assert.Equal(t, HealthStatusHealthy, check.Status)
		assert.Empty(t, check.Message)
	}
}

// TestCheckAll_OneUnhealthy verifies that one failing checker makes the overall result unhealthy.
func TestCheckAll_OneUnhealthy(t *testing.T) {
	registry := NewHealthRegistry()
	healthy := &mockChecker{name: "forismatic"}
	failing := &mockChecker{name: "hapesire", err: errors.New("connection timeout")}

	require.NoError(t, registry.Register(healthy))
	require.NoError(t, registry.Register(failing))

	result := registry.CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	require.Len(t, result.Checks, 2)

	assert.Equal(t, HealthStatusHealthy, result.Checks[0].Status)
	assert.Empty(t, result.Checks[0].Message)
	assert.Equal(t, HealthStatusUnhealthy, result.Checks[1].Status)
	assert.Equal(t, "connection timeout", result.Checks[1].Message)

	// Every checker still runs after a failure
	assert.Equal(t, 1, healthy.calls)
	assert.Equal(t, 1, failing.calls)
}

// contextAwareChecker implements HealthChecker that respects context cancellation.
type contextAwareChecker struct {
	name string
}

func (c *contextAwareChecker) Name() string {
	return c.name
}

func (c *contextAwareChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// TestCheckAll_ContextCancelled verifies that a cancelled context skips the checks.
func TestCheckAll_ContextCancelled(t *testing.T) {
	registry := NewHealthRegistry()
	checker := &mockChecker{name: "forismatic"}
	slow := &contextAwareChecker{name: "slow-service"}

	require.NoError(t, registry.Register(checker))
	require.NoError(t, registry.Register(slow))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	require.Len(t, result.Checks, 2)
	assert.Equal(t, 0, checker.calls)
	assert.Equal(t, HealthStatusUnhealthy, result.Checks[1].Status)
	assert.Contains(t, result.Checks[1].Message, "context canceled")
}
