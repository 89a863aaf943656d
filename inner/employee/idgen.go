package employee

import (
	"context"
	"fmt"
	"math/rand/v2"
)

const (
	employeeIdPrefix = "EMP"
	// пятизначный номер из диапазона [10000, 99999]
	employeeIdMin  = 10000
	employeeIdSpan = 90000
	// предохранитель от бесконечного цикла при патологической серии коллизий
	maxIdAttempts = 1000
)

// generateEmployeeId подбирает свободный идентификатор вида EMP12345.
// Кандидат проверяется по хранилищу и при коллизии генерируется заново
// итеративным циклом. Идентификатор не резервируется: гонку между проверкой
// и вставкой закрывает уникальный индекс employeeId в хранилище.
func generateEmployeeId(ctx context.Context, repo idChecker) (string, error) {
	for attempt := 0; attempt < maxIdAttempts; attempt++ {
		candidate := fmt.Sprintf("%s%d", employeeIdPrefix, employeeIdMin+rand.IntN(employeeIdSpan))

		exists, err := repo.ExistsByEmployeeId(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("error checking employee id %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not generate a free employee id after %d attempts", maxIdAttempts)
}

type idChecker interface {
	ExistsByEmployeeId(ctx context.Context, employeeId string) (bool, error)
}
