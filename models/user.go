package models

import "time"

// User представляет пользователя каталога.
// Тэги `db` используются для маппинга с полями БД с помощью sqlx.
// Тэги `json` используются для (де)сериализации JSON.
type User struct {
	ID                int64     `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Email             string    `db:"email" json:"email"`
	PasswordHash      string    `db:"password_hash" json:"-"` // Не отправляем хеш пароля в JSON
	ProfilePictureURL string    `db:"profile_picture_url" json:"profile_picture_url"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// UserView - профиль пользователя без хеша пароля.
type UserView struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	ProfilePictureURL string    `json:"profile_picture_url"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// View возвращает представление пользователя для ответа API.
func (u *User) View() *UserView {
	return &UserView{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		ProfilePictureURL: u.ProfilePictureURL,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

// RegisterRequest представляет тело запроса на регистрацию.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest представляет тело запроса на вход.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult - результат успешного входа на уровне сервиса.
type LoginResult struct {
	Token  string
	UserID int64
}

// LoginResponse представляет тело ответа при успешном входе.
type LoginResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  int64  `json:"user_id"`
}

// ProfilePatch - изменяемые поля профиля. nil означает "не менять".
// Email и пароль через этот путь не меняются.
type ProfilePatch struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
}

// IsEmpty сообщает, что в патче нет ни одного поля.
func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.ProfilePictureURL == nil
}
