package dto

// RegisterForm - данные формы регистрации
type RegisterForm struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,max=200"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginForm - данные формы входа
type LoginForm struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccountForm - форма создания/редактирования учётной записи администратором.
// На редактировании email не передаётся (поле неизменяемо), пустой пароль
// сохраняет прежний.
type AccountForm struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"omitempty,max=200"`
	Password  string `json:"password"`
	Role      string `json:"role" validate:"required,oneof=User Admin"`
	Verified  bool   `json:"verified"`
}

// DepartmentForm - форма подразделения
type DepartmentForm struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=500"`
}

// EmployeeForm - форма сотрудника
type EmployeeForm struct {
	EmployeeID string `json:"employeeId" validate:"required,min=1,max=50"`
	Email      string `json:"email" validate:"required,max=200"`
	Position   string `json:"position" validate:"required,min=1,max=200"`
	DeptID     int64  `json:"deptId" validate:"required,min=1"`
	HireDate   string `json:"hireDate" validate:"omitempty,datetime=2006-01-02"`
}

// RequestItemForm - позиция новой заявки
type RequestItemForm struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Qty  int    `json:"qty" validate:"required,min=1"`
}

// RequestForm - форма новой заявки
type RequestForm struct {
	Type  string            `json:"type" validate:"required,min=1,max=100"`
	Items []RequestItemForm `json:"items" validate:"required,min=1,dive"`
}
