package employee

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pranavyadav41/Dashboard-server/inner/common"
	"github.com/pranavyadav41/Dashboard-server/inner/web"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateEmployee(ctx context.Context, request CreateRequest) (Response, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(Response), args.Error(1)
}

func (m *MockService) FindByEmployeeId(ctx context.Context, employeeId string) (Response, error) {
	args := m.Called(ctx, employeeId)
	return args.Get(0).(Response), args.Error(1)
}

func (m *MockService) FindWithPagination(ctx context.Context, request PageRequest) (PageResponse, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(PageResponse), args.Error(1)
}

func (m *MockService) UpdateEmployee(ctx context.Context, employeeId string, request UpdateRequest) (Response, error) {
	args := m.Called(ctx, employeeId, request)
	return args.Get(0).(Response), args.Error(1)
}

func (m *MockService) DeleteByEmployeeId(ctx context.Context, employeeId string) error {
	args := m.Called(ctx, employeeId)
	return args.Error(0)
}

// setupTestController - вспомогательная функция для создания тестового контроллера
func setupTestController(t *testing.T) (*MockService, *fiber.App) {
	t.Helper()

	app := fiber.New()

	server := &web.Server{
		App:        app,
		GroupApiV1: app.Group("/api/v1"),
	}

	mockService := &MockService{}

	cfg := common.Config{
		MongoUri:       "mongodb://localhost:27017",
		MongoDb:        "testdb",
		AppName:        "test_app",
		AppVersion:     "1.0.0",
		LogLevel:       "ERROR",
		LogDevelopMode: true,
	}

	logger := common.NewLogger(cfg)

	controller := NewController(server, mockService, logger)
	controller.RegisterRoutes()

	return mockService, app
}

func employeeResponseFixture() Response {
	return Response{
		EmployeeId:     "EMP12345",
		Name:           "John Doe",
		Dob:            Date{time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)},
		Gender:         "male",
		Email:          "john.doe@example.com",
		Phone:          "+1-202-555-0134",
		EmploymentType: "full-time",
		Department:     "Engineering",
		JobTitle:       "Developer",
		Salary:         90000,
		Address:        "221B Baker Street",
		Skills:         []string{"go", "mongodb"},
		EducationLevel: "bachelor",
	}
}

func TestController_CreateEmployee_Success(t *testing.T) {
	mockService, app := setupTestController(t)

	createRequest := CreateRequest{
		Name:           "John Doe",
		Dob:            Date{time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)},
		Gender:         "male",
		Email:          "john.doe@example.com",
		Phone:          "+1-202-555-0134",
		EmploymentType: "full-time",
		Department:     "Engineering",
		JobTitle:       "Developer",
		Salary:         90000,
		Address:        "221B Baker Street",
		Skills:         Skills{"go", "mongodb"},
		EducationLevel: "bachelor",
	}

	mockService.On("CreateEmployee", mock.Anything, createRequest).Return(employeeResponseFixture(), nil)

	requestBody, _ := json.Marshal(createRequest)
	req := httptest.NewRequest("POST", "/api/v1/employees", bytes.NewReader(requestBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var response common.Response[Response]
	err = json.NewDecoder(resp.Body).Decode(&response)
	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "EMP12345", response.Data.EmployeeId)
	assert.Equal(t, []string{"go", "mongodb"}, response.Data.Skills)

	mockService.AssertExpectations(t)
}

func TestController_CreateEmployee_InvalidJSON(t *testing.T) {
	_, app := setupTestController(t)

	// Подготавливаем некорректный JSON
	req := httptest.NewRequest("POST", "/api/v1/employees", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var response common.Response[any]
	err = json.NewDecoder(resp.Body).Decode(&response)
	assert.NoError(t, err)
	assert.False(t, response.Success)
	assert.NotEmpty(t, response.Message)
}

func TestController_CreateEmployee_ValidationError(t *testing.T) {
	mockService, app := setupTestController(t)

	validationError := common.RequestValidationError{Message: "Data validation error"}
	mockService.On("CreateEmployee", mock.Anything, mock.AnythingOfType("employee.CreateRequest")).
		Return(Response{}, validationError)

	req := httptest.NewRequest("POST", "/api/v1/employees", bytes.NewReader([]byte(`{"name":"John Doe"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var response common.Response[any]
	err = json.NewDecoder(resp.Body).Decode(&response)
	assert.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, "Data validation error", response.Message)

	mockService.AssertExpectations(t)
}

func TestController_CreateEmployee_DuplicateEmail(t *testing.T) {
	mockService, app := setupTestController(t)

	conflictError := common.AlreadyExistsError{Message: "Employee with this email already exists"}
	mockService.On("CreateEmployee", mock.Anything, mock.AnythingOfType("employee.CreateRequest")).
		Return(Response{}, conflictError)

	req := httptest.NewRequest("POST", "/api/v1/employees", bytes.NewReader([]byte(`{"email":"taken@example.com"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	mockService.AssertExpectations(t)
}

func TestController_FindEmployees(t *testing.T) {
	mockService, app := setupTestController(t)

	expectedRequest := PageRequest{
		Search:      "15/6/1990",
		Departments: "Engineering",
		Roles:       "Developer",
		Page:        2,
		Limit:       5,
	}
	pageResponse := PageResponse{
		Data:           []Response{employeeResponseFixture()},
		CurrentPage:    2,
		TotalPages:     3,
		TotalEmployees: 12,
	}
	mockService.On("FindWithPagination", mock.Anything, expectedRequest).Return(pageResponse, nil)

	req := httptest.NewRequest("GET",
		"/api/v1/employees?search=15%2F6%2F1990&departments=Engineering&roles=Developer&page=2&limit=5", nil)

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response common.Response[PageResponse]
	err = json.NewDecoder(resp.Body).Decode(&response)
	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, 2, response.Data.CurrentPage)
	assert.Equal(t, 3, response.Data.TotalPages)
	assert.Equal(t, int64(12), response.Data.TotalEmployees)
	require.Len(t, response.Data.Data, 1)
	assert.Equal(t, "EMP12345", response.Data.Data[0].EmployeeId)

	mockService.AssertExpectations(t)
}

func TestController_FindEmployees_Error(t *testing.T) {
	mockService, app := setupTestController(t)

	mockService.On("FindWithPagination", mock.Anything, mock.AnythingOfType("employee.PageRequest")).
		Return(PageResponse{}, errors.New("db error"))

	req := httptest.NewRequest("GET", "/api/v1/employees", nil)

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	mockService.AssertExpectations(t)
}

func TestController_GetEmployee_Success(t *testing.T) {
	mockService, app := setupTestController(t)

	mockService.On("FindByEmployeeId", mock.Anything, "EMP12345").Return(employeeResponseFixture(), nil)

	req := httptest.NewRequest("GET", "/api/v1/employees/EMP12345", nil)

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response common.Response[Response]
	err = json.NewDecoder(resp.Body).Decode(&response)
	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "EMP12345", response.Data.EmployeeId)

	mockService.AssertExpectations(t)
}

func TestController_GetEmployee_NotFound(t *testing.T) {
	mockService, app := setupTestController(t)

	mockService.On("FindByEmployeeId", mock.Anything, "EMP00000").
		Return(Response{}, common.NotFoundError{Message: "Employee not found"})

	req := httptest.NewRequest("GET", "/api/v1/employees/EMP00000", nil)

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var response common.Response[any]
	err = json.NewDecoder(resp.Body).Decode(&response)
	assert.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, "Employee not found", response.Message)

	mockService.AssertExpectations(t)
}

func TestController_UpdateEmployee_Success(t *testing.T) {
	mockService, app := setupTestController(t)

	expectedRequest := UpdateRequest{Name: "Johnny Doe"}
	updated := employeeResponseFixture()
	updated.Name = "Johnny Doe"
	mockService.On("UpdateEmployee", mock.Anything, "EMP12345", expectedRequest).Return(updated, nil)

	req := httptest.NewRequest("PUT", "/api/v1/employees/EMP12345",
		bytes.NewReader([]byte(`{"name":"Johnny Doe"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response common.Response[Response]
	err = json.NewDecoder(resp.Body).Decode(&response)
	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "Johnny Doe", response.Data.Name)

	mockService.AssertExpectations(t)
}

func TestController_UpdateEmployee_NotFound(t *testing.T) {
	mockService, app := setupTestController(t)

	mockService.On("UpdateEmployee", mock.Anything, "EMP00000", mock.AnythingOfType("employee.UpdateRequest")).
		Return(Response{}, common.NotFoundError{Message: "Employee not found"})

	req := httptest.NewRequest("PUT", "/api/v1/employees/EMP00000",
		bytes.NewReader([]byte(`{"name":"Somebody"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	mockService.AssertExpectations(t)
}

func TestController_UpdateEmployee_DuplicateEmail(t *testing.T) {
	mockService, app := setupTestController(t)

	mockService.On("UpdateEmployee", mock.Anything, "EMP12345", mock.AnythingOfType("employee.UpdateRequest")).
		Return(Response{}, common.AlreadyExistsError{Message: "Employee with this email already exists"})

	req := httptest.NewRequest("PUT", "/api/v1/employees/EMP12345",
		bytes.NewReader([]byte(`{"email":"taken@example.com"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	mockService.AssertExpectations(t)
}

func TestController_DeleteEmployee_Success(t *testing.T) {
	mockService, app := setupTestController(t)

	mockService.On("DeleteByEmployeeId", mock.Anything, "EMP12345").Return(nil)

	req := httptest.NewRequest("DELETE", "/api/v1/employees/EMP12345", nil)

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response common.Response[any]
	err = json.NewDecoder(resp.Body).Decode(&response)
	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "Employee deleted successfully", response.Message)

	mockService.AssertExpectations(t)
}

func TestController_DeleteEmployee_NotFound(t *testing.T) {
	mockService, app := setupTestController(t)

	mockService.On("DeleteByEmployeeId", mock.Anything, "EMP00000").
		Return(common.NotFoundError{Message: "Employee not found"})

	req := httptest.NewRequest("DELETE", "/api/v1/employees/EMP00000", nil)

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// "не найдено" при удалении - штатный конверт, а не сбой
	var response common.Response[any]
	err = json.NewDecoder(resp.Body).Decode(&response)
	assert.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, "Employee not found", response.Message)

	mockService.AssertExpectations(t)
}

func TestController_DeleteEmployee_StoreError(t *testing.T) {
	mockService, app := setupTestController(t)

	mockService.On("DeleteByEmployeeId", mock.Anything, "EMP12345").Return(errors.New("db error"))

	req := httptest.NewRequest("DELETE", "/api/v1/employees/EMP12345", nil)

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	mockService.AssertExpectations(t)
}
