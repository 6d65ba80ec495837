package domain

// Role определяет роль учётной записи
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// RequestStatus определяет статус заявки
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

// Account представляет учётную запись пользователя.
// Пароль хранится открытым текстом: движок воспроизводит demo-приложение
// без настоящей аутентификации.
type Account struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
	Verified  bool   `json:"verified"`
}

// Department представляет подразделение
type Department struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Employee представляет сотрудника. ID — стабильный внутренний идентификатор,
// EmployeeID — внешний табельный код (уникальность не контролируется).
type Employee struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	UserID     int64  `json:"userId"`
	Position   string `json:"position"`
	DeptID     int64  `json:"deptId"`
	HireDate   string `json:"hireDate"`
}

// RequestItem представляет позицию заявки
type RequestItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Request представляет заявку сотрудника на оборудование или ресурсы
type Request struct {
	ID            int64         `json:"id"`
	Type          string        `json:"type"`
	Items         []RequestItem `json:"items"`
	Status        RequestStatus `json:"status"`
	Date          string        `json:"date"`
	EmployeeEmail string        `json:"employeeEmail"`
}

// Database — корневой агрегат всех коллекций. Сериализуется целиком
// в одну запись key-value хранилища.
type Database struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
}
