package models

// Роли пользователей
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// UserRequest - модель для регистрации и аутентификации пользователя, приходит извне
type UserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// UserData - модель пользователя из хранилища
type UserData struct {
	UserID       string
	Login        string
	PasswordHash string
	Role         string
}

// Identity - пользователь, извлечённый из токена запроса
type Identity struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin - признак администратора
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
