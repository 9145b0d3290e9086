package dto

// CreatePositionRequest - запрос на создание должности
type CreatePositionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdatePositionRequest - запрос на обновление должности
type UpdatePositionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// PositionResponse - ответ с данными должности
type PositionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	PositionID string `json:"position_id" validate:"required,uuid4"`
}

// UpdateEmployeeRequest - запрос на обновление сотрудника
type UpdateEmployeeRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=100"`
	PositionID *string `json:"position_id" validate:"omitempty,uuid4"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PositionID   string  `json:"position_id"`
	PositionName *string `json:"position_name,omitempty"`
}

// RegisterRequest - запрос на регистрацию пользователя
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest - запрос на вход
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// TokenResponse - ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse - ответ с информационным сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
