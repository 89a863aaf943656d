package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/pranavyadav41/Dashboard-server/inner/common"
	"github.com/pranavyadav41/Dashboard-server/inner/validator"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Service struct {
	repo            Repo
	validator       Validator
	logger          *common.Logger
	defaultPageSize int
}

type Repo interface {
	FindByEmployeeId(ctx context.Context, employeeId string) (Entity, error)
	ExistsByEmployeeId(ctx context.Context, employeeId string) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeEmployeeId string) (bool, error)
	Insert(ctx context.Context, employee *Entity) error
	Save(ctx context.Context, employee *Entity) error
	DeleteByEmployeeId(ctx context.Context, employeeId string) (bool, error)
	FindWithFilter(ctx context.Context, filter bson.M, skip int64, limit int64) ([]Entity, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type Validator interface {
	Validate(request any) error
}

// функция-конструктор
func NewService(repo Repo, validator Validator, logger *common.Logger, defaultPageSize int) *Service {
	if defaultPageSize < 1 {
		defaultPageSize = 5
	}
	return &Service{
		repo:            repo,
		validator:       validator,
		logger:          logger,
		defaultPageSize: defaultPageSize,
	}
}

// Метод для создания нового сотрудника.
// Все двенадцать полей запроса обязательны; employeeId назначается сервером.
func (svc *Service) CreateEmployee(ctx context.Context, request CreateRequest) (Response, error) {
	svc.logger.Info("Creating new employee", zap.String("name", request.Name))

	if err := svc.validateRequest(request); err != nil {
		return Response{}, err
	}

	// проверяем занятость email до генерации идентификатора:
	// конфликт email - отдельная ошибка, не ошибка валидации
	emailTaken, err := svc.repo.ExistsByEmail(ctx, request.Email, "")
	if err != nil {
		svc.logger.Error("Failed to check if email exists",
			zap.String("email", request.Email),
			zap.Error(err))
		return Response{}, fmt.Errorf("error checking employee email %s: %w", request.Email, err)
	}
	if emailTaken {
		svc.logger.Warn("Employee with this email already exists",
			zap.String("email", request.Email))
		return Response{}, common.AlreadyExistsError{Message: "Employee with this email already exists"}
	}

	employeeId, err := generateEmployeeId(ctx, svc.repo)
	if err != nil {
		svc.logger.Error("Failed to generate employee id", zap.Error(err))
		return Response{}, fmt.Errorf("error generating employee id: %w", err)
	}

	entity := request.ToEntity()
	entity.EmployeeId = employeeId

	if err := svc.repo.Insert(ctx, &entity); err != nil {
		svc.logger.Error("Failed to insert new employee",
			zap.String("employeeId", employeeId),
			zap.Error(err))
		return Response{}, fmt.Errorf("error creating employee with id %s: %w", employeeId, err)
	}

	svc.logger.Info("Employee created successfully",
		zap.String("employeeId", employeeId),
		zap.String("name", entity.Name))
	return entity.toResponse(), nil
}

// валидация входящего запроса
func (svc *Service) validateRequest(request any) error {
	err := svc.validator.Validate(request)
	if err != nil {
		svc.logger.Error("Request validation failed", zap.Error(err))

		if validationErr, ok := err.(validator.ValidationErrors); ok {
			return common.RequestValidationError{
				Message: "Data validation error",
				Data:    validationErr.Errors,
			}
		}

		// Если это другая ошибка валидации, возвращаем её как есть
		return common.RequestValidationError{Message: err.Error()}
	}

	return nil
}

func (svc *Service) FindByEmployeeId(ctx context.Context, employeeId string) (Response, error) {
	svc.logger.Debug("Finding employee by id", zap.String("employeeId", employeeId))

	entity, err := svc.repo.FindByEmployeeId(ctx, employeeId)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Response{}, common.NotFoundError{Message: "Employee not found"}
		}
		svc.logger.Error("Failed to find employee by id",
			zap.String("employeeId", employeeId),
			zap.Error(err))
		return Response{}, fmt.Errorf("error finding employee with id %s: %w", employeeId, err)
	}

	return entity.toResponse(), nil
}

// FindWithPagination возвращает страницу списка сотрудников.
// Поиск, фильтры по отделам и должностям и пагинация описаны у buildListFilter.
func (svc *Service) FindWithPagination(ctx context.Context, request PageRequest) (PageResponse, error) {
	svc.logger.Debug("Finding employees with pagination",
		zap.String("search", request.Search),
		zap.Int("page", request.Page),
		zap.Int("limit", request.Limit))

	page, limit := normalizePaging(request, svc.defaultPageSize)
	filter := buildListFilter(request)
	skip := int64(page-1) * int64(limit)

	entities, err := svc.repo.FindWithFilter(ctx, filter, skip, int64(limit))
	if err != nil {
		svc.logger.Error("Failed to find employees with filter",
			zap.Int("page", page),
			zap.Int("limit", limit),
			zap.Error(err))
		return PageResponse{}, fmt.Errorf("error finding employees: %w", err)
	}

	// Общее количество записей под тем же фильтром
	totalCount, err := svc.repo.Count(ctx, filter)
	if err != nil {
		svc.logger.Error("Failed to count employees", zap.Error(err))
		return PageResponse{}, fmt.Errorf("error counting employees: %w", err)
	}

	responses := make([]Response, len(entities))
	for i, entity := range entities {
		responses[i] = entity.toResponse()
	}

	pageResponse := PageResponse{
		Data:           responses,
		CurrentPage:    page,
		TotalPages:     totalPages(totalCount, limit),
		TotalEmployees: totalCount,
	}

	svc.logger.Debug("Found employees with pagination",
		zap.Int("currentPage", pageResponse.CurrentPage),
		zap.Int("totalPages", pageResponse.TotalPages),
		zap.Int64("totalEmployees", pageResponse.TotalEmployees),
		zap.Int("dataCount", len(pageResponse.Data)))

	return pageResponse, nil
}

// UpdateEmployee частично обновляет сотрудника: применяются только
// заполненные поля запроса (см. UpdateRequest про нулевые значения).
func (svc *Service) UpdateEmployee(ctx context.Context, employeeId string, request UpdateRequest) (Response, error) {
	svc.logger.Info("Updating employee", zap.String("employeeId", employeeId))

	if err := svc.validateRequest(request); err != nil {
		return Response{}, err
	}

	entity, err := svc.repo.FindByEmployeeId(ctx, employeeId)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Response{}, common.NotFoundError{Message: "Employee not found"}
		}
		svc.logger.Error("Failed to find employee for update",
			zap.String("employeeId", employeeId),
			zap.Error(err))
		return Response{}, fmt.Errorf("error finding employee with id %s: %w", employeeId, err)
	}

	// смена email перепроверяется на уникальность без учёта своей записи
	if request.Email != "" && request.Email != entity.Email {
		emailTaken, err := svc.repo.ExistsByEmail(ctx, request.Email, employeeId)
		if err != nil {
			svc.logger.Error("Failed to check if email exists",
				zap.String("email", request.Email),
				zap.Error(err))
			return Response{}, fmt.Errorf("error checking employee email %s: %w", request.Email, err)
		}
		if emailTaken {
			svc.logger.Warn("Employee with this email already exists",
				zap.String("email", request.Email))
			return Response{}, common.AlreadyExistsError{Message: "Employee with this email already exists"}
		}
	}

	request.applyTo(&entity)

	if err := svc.repo.Save(ctx, &entity); err != nil {
		svc.logger.Error("Failed to save updated employee",
			zap.String("employeeId", employeeId),
			zap.Error(err))
		return Response{}, fmt.Errorf("error updating employee with id %s: %w", employeeId, err)
	}

	svc.logger.Info("Employee updated successfully", zap.String("employeeId", employeeId))
	return entity.toResponse(), nil
}

// DeleteByEmployeeId удаляет сотрудника. Отсутствие записи - штатный
// исход, он возвращается как NotFoundError, а не как сбой хранилища.
func (svc *Service) DeleteByEmployeeId(ctx context.Context, employeeId string) error {
	svc.logger.Info("Deleting employee by id", zap.String("employeeId", employeeId))

	deleted, err := svc.repo.DeleteByEmployeeId(ctx, employeeId)
	if err != nil {
		svc.logger.Error("Failed to delete employee by id",
			zap.String("employeeId", employeeId),
			zap.Error(err))
		return fmt.Errorf("error deleting employee with id %s: %w", employeeId, err)
	}
	if !deleted {
		svc.logger.Warn("Employee to delete was not found", zap.String("employeeId", employeeId))
		return common.NotFoundError{Message: "Employee not found"}
	}

	svc.logger.Info("Employee deleted successfully", zap.String("employeeId", employeeId))
	return nil
}
