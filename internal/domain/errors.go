package domain

import "errors"

// Ошибки уровня домена. Слои хранилищ и usecase возвращают их (обернутыми через %w),
// а HTTP-обработчики маппят в коды ответов.
var (
	// ErrUserExists — нарушение уникальности email или username при регистрации.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials — неверная пара email/пароль.
	// Одна и та же ошибка для "нет такого email" и "неверный пароль",
	// чтобы по ответу нельзя было перебирать аккаунты.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен отсутствует, поврежден, подписан другим секретом или истек.
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden — токен валиден, но ресурс принадлежит другому пользователю.
	ErrForbidden = errors.New("forbidden")

	// ErrUserNotFound — пользователь не найден в хранилище.
	ErrUserNotFound = errors.New("user not found")

	// ErrEventNotFound — внешний Event Service не знает такое событие.
	ErrEventNotFound = errors.New("event not found")

	// ErrValidation — некорректные входные данные (пустые поля, amount <= 0 и т.п.).
	ErrValidation = errors.New("validation failed")
)
