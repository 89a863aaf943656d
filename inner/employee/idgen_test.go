package employee

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stub-проверка занятости идентификаторов по заданному набору
type stubIdChecker struct {
	taken map[string]bool
}

func (s *stubIdChecker) ExistsByEmployeeId(_ context.Context, employeeId string) (bool, error) {
	return s.taken[employeeId], nil
}

type failingIdChecker struct{}

func (failingIdChecker) ExistsByEmployeeId(context.Context, string) (bool, error) {
	return false, errors.New("db error")
}

type alwaysTakenIdChecker struct{}

func (alwaysTakenIdChecker) ExistsByEmployeeId(context.Context, string) (bool, error) {
	return true, nil
}

func TestGenerateEmployeeId_Format(t *testing.T) {
	checker := &stubIdChecker{}

	for i := 0; i < 50; i++ {
		id, err := generateEmployeeId(context.Background(), checker)
		require.NoError(t, err)
		assert.Regexp(t, `^EMP\d{5}$`, id)
	}
}

func TestGenerateEmployeeId_SkipsTakenIds(t *testing.T) {
	// занята заметная часть диапазона: [10000, 59999]
	taken := make(map[string]bool, employeeIdSpan/2)
	for n := employeeIdMin; n < employeeIdMin+employeeIdSpan/2; n++ {
		taken[fmtEmployeeId(n)] = true
	}

	checker := &stubIdChecker{taken: taken}

	for i := 0; i < 100; i++ {
		id, err := generateEmployeeId(context.Background(), checker)
		require.NoError(t, err)
		assert.False(t, taken[id], "generated id %s is already taken", id)
	}
}

func TestGenerateEmployeeId_RepositoryError(t *testing.T) {
	_, err := generateEmployeeId(context.Background(), failingIdChecker{})
	assert.Error(t, err)
}

func TestGenerateEmployeeId_GivesUpAfterMaxAttempts(t *testing.T) {
	_, err := generateEmployeeId(context.Background(), alwaysTakenIdChecker{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not generate")
}

func fmtEmployeeId(n int) string {
	return fmt.Sprintf("%s%d", employeeIdPrefix, n)
}
