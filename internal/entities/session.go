package entities

import "time"

// Session заменяет токен, признак администратора и id пользователя,
// которые раньше хранились по отдельности в браузере.
type Session struct {
	ID          string
	AccessToken string
	IsAdmin     bool
	UserID      *int64
	CreatedAt   time.Time
}

type Credentials struct {
	Email    string
	Password string
}

type Registration struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// AuthGrant - ответ бэкенда на вход или регистрацию.
type AuthGrant struct {
	AccessToken string
	IsAdmin     bool
	UserID      *int64
}
