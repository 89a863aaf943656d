package employee

import (
	"context"
	"errors"

	"github.com/pranavyadav41/Dashboard-server/inner/common"
	"github.com/pranavyadav41/Dashboard-server/inner/web"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	server          *web.Server
	employeeService Svc
	logger          *common.Logger
}

// интерфейс сервиса employee.Service
type Svc interface {
	CreateEmployee(ctx context.Context, request CreateRequest) (Response, error)
	FindByEmployeeId(ctx context.Context, employeeId string) (Response, error)
	FindWithPagination(ctx context.Context, request PageRequest) (PageResponse, error)
	UpdateEmployee(ctx context.Context, employeeId string, request UpdateRequest) (Response, error)
	DeleteByEmployeeId(ctx context.Context, employeeId string) error
}

func NewController(server *web.Server, employeeService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:          server,
		employeeService: employeeService,
		logger:          logger,
	}
}

// функция для регистрации маршрутов
func (c *Controller) RegisterRoutes() {
	// полный маршрут получится "/api/v1/employees"
	api := c.server.GroupApiV1
	api.Post("/employees", c.CreateEmployee)
	api.Get("/employees", c.FindEmployees)
	api.Get("/employees/:id", c.GetEmployee)
	api.Put("/employees/:id", c.UpdateEmployee)
	api.Delete("/employees/:id", c.DeleteEmployee)
}

// CreateEmployee создание нового сотрудника
// @Summary Создать сотрудника
// @Tags employees
// @Accept json
// @Produce json
// @Param request body CreateEmployeeRequest true "данные сотрудника"
// @Success 201 {object} Response{data=EmployeeResponse}
// @Failure 400 {object} Response
// @Router /employees [post]
func (c *Controller) CreateEmployee(ctx *fiber.Ctx) error {

	// анмаршалим JSON body запроса в структуру CreateRequest
	var request CreateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	created, err := c.employeeService.CreateEmployee(ctx.UserContext(), request)
	if err != nil {
		return c.mapErrorToResponse(ctx, err)
	}

	c.logger.InfoCtx(ctx, "Employee created")
	return common.CreatedResponse(ctx, created)
}

// FindEmployees список сотрудников с поиском, фильтрами и пагинацией
// @Summary Список сотрудников
// @Tags employees
// @Produce json
// @Param search query string false "поиск по имени или дате рождения (D/M/YYYY)"
// @Param departments query string false "отделы через запятую"
// @Param roles query string false "должности через запятую"
// @Param page query int false "номер страницы (по умолчанию 1)"
// @Param limit query int false "размер страницы (по умолчанию 5, максимум 100)"
// @Success 200 {object} Response{data=PageResponse}
// @Router /employees [get]
func (c *Controller) FindEmployees(ctx *fiber.Ctx) error {
	var request PageRequest
	if err := ctx.QueryParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	page, err := c.employeeService.FindWithPagination(ctx.UserContext(), request)
	if err != nil {
		return c.mapErrorToResponse(ctx, err)
	}

	return common.OkResponse(ctx, page)
}

// GetEmployee получение сотрудника по employeeId
// @Summary Получить сотрудника
// @Tags employees
// @Produce json
// @Param id path string true "employeeId вида EMP12345"
// @Success 200 {object} Response{data=EmployeeResponse}
// @Failure 404 {object} Response
// @Router /employees/{id} [get]
func (c *Controller) GetEmployee(ctx *fiber.Ctx) error {
	employeeId := ctx.Params("id")
	if employeeId == "" {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}

	employee, err := c.employeeService.FindByEmployeeId(ctx.UserContext(), employeeId)
	if err != nil {
		return c.mapErrorToResponse(ctx, err)
	}

	return common.OkResponse(ctx, employee)
}

// UpdateEmployee частичное обновление сотрудника
// @Summary Обновить сотрудника
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "employeeId вида EMP12345"
// @Param request body UpdateEmployeeRequest true "изменяемые поля"
// @Success 200 {object} Response{data=EmployeeResponse}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /employees/{id} [put]
func (c *Controller) UpdateEmployee(ctx *fiber.Ctx) error {
	employeeId := ctx.Params("id")
	if employeeId == "" {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}

	var request UpdateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	updated, err := c.employeeService.UpdateEmployee(ctx.UserContext(), employeeId, request)
	if err != nil {
		return c.mapErrorToResponse(ctx, err)
	}

	c.logger.InfoCtx(ctx, "Employee updated")
	return common.OkResponse(ctx, updated)
}

// DeleteEmployee удаление сотрудника
// @Summary Удалить сотрудника
// @Tags employees
// @Produce json
// @Param id path string true "employeeId вида EMP12345"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /employees/{id} [delete]
func (c *Controller) DeleteEmployee(ctx *fiber.Ctx) error {
	employeeId := ctx.Params("id")
	if employeeId == "" {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}

	err := c.employeeService.DeleteByEmployeeId(ctx.UserContext(), employeeId)
	if err != nil {
		return c.mapErrorToResponse(ctx, err)
	}

	c.logger.InfoCtx(ctx, "Employee deleted")
	return common.OkMessageResponse(ctx, "Employee deleted successfully")
}

// mapErrorToResponse детерминированно переводит тип ошибки в статус-код:
// ошибки валидации и конфликты - 400, "не найдено" - 404, остальное - 500
func (c *Controller) mapErrorToResponse(ctx *fiber.Ctx, err error) error {
	var validationErr common.RequestValidationError
	switch {
	case errors.As(err, &validationErr):
		return common.ErrResponse(ctx, fiber.StatusBadRequest, validationErr.Message, validationErr.Data)
	case errors.As(err, &common.AlreadyExistsError{}):
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &common.NotFoundError{}):
		return common.ErrResponse(ctx, fiber.StatusNotFound, err.Error())
	default:
		return common.ErrResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
}
