// Package docs Discovery Microservice API.
//
// Микросервис поиска мест вдоль маршрута. Принимает GPS-маршрут и
// предпочтения пользователя, ищет места через внешнего провайдера,
// схлопывает дубликаты и фильтрует результат по порогам предпочтений.
//
// Основные возможности:
// - Поиск мест вдоль маршрута с fallback на поиск вокруг центра
// - Дедупликация кандидатов по идентификатору, расстоянию и имени
// - Фильтрация по рейтингу, числу отзывов и типу места
// - Привязка GPS-треков к дорожной сети
// - Исключение уже сохранённых и отклонённых пользователем мест
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
