package models

// User - профиль сотрудника, полученный от внешнего сервиса аутентификации
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Matricula string `json:"matricula"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}
