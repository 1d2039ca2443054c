package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок
рекрутингового портала.
*/

// =========================================================================
// Фабричные функции (оборачивание ошибок из репозиториев)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidTransition - переход состояния не разрешен таблицей переходов (409)
func ErrInvalidTransition(domain, message string) *AppError {
	return New(CodeInvalidTransition, domain, message, http.StatusConflict)
}

// ErrReasonRequired - переход требует непустой текст причины/резолюции (400)
func ErrReasonRequired(domain string) *AppError {
	return New(CodeValidationFailed, domain, "A non-empty reason is required for this operation", http.StatusBadRequest)
}

// =========================================================================
// Предопределенные переменные (частые, статичные ошибки)
// =========================================================================

// ErrInvalidCredentials - неверный email или пароль.
// Намеренно не различает "нет пользователя" и "неверный пароль".
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrUnauthorized - нет валидной сессии или роль не подходит.
// Сообщение общее: требуемую роль клиенту не раскрываем.
var ErrUnauthorized = New(
	CodeUnauthorized,
	"auth",
	"Unauthorized",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный JWT
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrWeakPassword - пароль короче минимальной длины
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists - email уже используется
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrNotOwner - работодатель не владеет целевой вакансией/откликом.
// 403: сессия валидна, запрещено правилом владения.
var ErrNotOwner = New(
	CodeForbidden,
	"ownership",
	"You do not own this resource",
	http.StatusForbidden,
)

// ErrPostingNotApproved - операция допустима только для одобренной вакансии
var ErrPostingNotApproved = New(
	CodeInvalidStatus,
	"job_posting",
	"Job posting is not approved",
	http.StatusConflict,
)

// ErrDuplicateApplication - студент уже откликался на эту вакансию
var ErrDuplicateApplication = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this job posting",
	http.StatusConflict,
)

// ErrTooManyRequests - сработал rate limiter на логине
var ErrTooManyRequests = New(
	CodeRateLimited,
	"auth",
	"Too many login attempts, try again later",
	http.StatusTooManyRequests,
)
