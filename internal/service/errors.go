package service

import "errors"

// Бизнес-ошибки сервисов (маппятся на HTTP коды в handlers)
var (
	ErrValidation = errors.New("validation failed")    // 400
	ErrNotFound   = errors.New("qr code not found")    // 404
	ErrForbidden  = errors.New("not authorized")       // 401: запись есть, но принадлежит другому
	ErrGeneration = errors.New("qr generation failed") // 500
	ErrDelivery   = errors.New("mail delivery failed") // 500
	ErrStore      = errors.New("storage failure")      // 500

	ErrLoginTaken         = errors.New("login already taken")       // 409
	ErrInvalidCredentials = errors.New("invalid login or password") // 401
)
