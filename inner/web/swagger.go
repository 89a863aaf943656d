package web

import (
	"github.com/gofiber/swagger"
)

// возвращает конфигурацию Swagger UI
func GetSwaggerConfig() swagger.Config {
	return swagger.Config{
		// URL для получения OpenAPI спецификации
		URL: "/swagger/doc.json",

		// Включить deep linking
		DeepLinking: true,

		// Настройки раскрытия разделов по умолчанию
		DocExpansion: "none",

		// Включить валидацию запросов
		ValidatorUrl: "",

		// Дополнительные настройки UI
		DefaultModelsExpandDepth: 1,
		DefaultModelExpandDepth:  1,
		DefaultModelRendering:    "model",

		SupportedSubmitMethods: []string{
			"get", "post", "put", "delete", "patch",
		},

		// Настройки интерфейса
		Layout: "StandaloneLayout",

		// Заголовок страницы
		Title: "Dashboard-server API Documentation",
	}
}
