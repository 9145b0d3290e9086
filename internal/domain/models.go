package domain

// Position представляет должность
type Position struct {
	ID   string `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);not null"`

	Employees []Employee `json:"-" gorm:"foreignKey:PositionID"`
}

// TableName задаёт имя таблицы для GORM
func (Position) TableName() string {
	return "positions"
}

// Employee представляет сотрудника
type Employee struct {
	ID         string `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name       string `json:"name" gorm:"type:varchar(100);not null"`
	PositionID string `json:"position_id" gorm:"type:varchar(36);not null;index"`

	Position *Position `json:"-" gorm:"foreignKey:PositionID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// User представляет учётную запись для аутентификации
type User struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"type:varchar(100);not null"`
}

// TableName задаёт имя таблицы для GORM
func (User) TableName() string {
	return "users"
}
