package common

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
} // @name Response

func ErrResponse(
	c *fiber.Ctx,
	code int,
	message string,
	data ...any,
) error {
	response := Response[any]{
		Success: false,
		Message: message,
	}
	if len(data) > 0 {
		response.Data = data[0]
	}
	return c.Status(code).JSON(response)
}

func OkResponse[T any](
	c *fiber.Ctx,
	data T,
) error {
	return c.JSON(&Response[T]{
		Success: true,
		Data:    data,
	})
}

// CreatedResponse формирует ответ с кодом 201 для успешно созданной сущности
func CreatedResponse[T any](
	c *fiber.Ctx,
	data T,
) error {
	return c.Status(fiber.StatusCreated).JSON(&Response[T]{
		Success: true,
		Data:    data,
	})
}

// OkMessageResponse формирует ответ-подтверждение без данных
func OkMessageResponse(
	c *fiber.Ctx,
	message string,
) error {
	return c.JSON(&Response[any]{
		Success: true,
		Message: message,
	})
}

// ValidationErrorResponse формирует ответ с ошибками валидации
func ValidationErrorResponse(ctx *fiber.Ctx, validationErr error) error {
	// Попытаемся распарсить ошибку валидации как JSON
	var validationDetails any
	if jsonErr := json.Unmarshal([]byte(validationErr.Error()), &validationDetails); jsonErr == nil {
		// Если это JSON, используем его как детали
		return ErrResponse(ctx, fiber.StatusBadRequest, "Data validation error", validationDetails)
	}

	// Если не JSON, просто возвращаем текст ошибки
	return ErrResponse(ctx, fiber.StatusBadRequest, validationErr.Error())
}
