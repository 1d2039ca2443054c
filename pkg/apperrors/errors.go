package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
)

// AppError - ошибка уровня приложения. Несет машинный код, домен
// (auth, job_posting, application, ...) и сообщение для клиента.
// Err и HTTPCode остаются на сервере и в JSON не попадают.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	s := e.Domain + "/" + string(e.Code) + ": " + e.Message
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New - конструктор без underlying ошибки (правила бизнес-логики)
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap сохраняет underlying ошибку для логов, не показывая ее клиенту
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	appErr := New(code, domain, message, httpCode)
	appErr.Err = err
	return appErr
}

// MarshalJSON отдает клиенту только публичные поля
func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code    ErrorCode   `json:"code"`
		Domain  string      `json:"domain"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{e.Code, e.Domain, e.Message, e.Details})
}

// Is / As - реэкспорт stdlib, чтобы сервисам хватало одного импорта

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// InternalError - любая неожиданная ошибка (БД, сеть). Клиент видит
// общее сообщение, underlying ошибка уходит в лог.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// ValidationError - ошибка валидации тела запроса, details несет
// карту "поле" -> "сообщение"
func ValidationError(details interface{}) *AppError {
	appErr := New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest)
	appErr.Details = details
	return appErr
}

// NewBadRequestError - некорректный запрос до стадии валидации полей
// (битый JSON, неверный Content-Type)
func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}
