package service

import "errors"

var (
	ErrNotFound     = errors.New("short URL not found")
	ErrConflict     = errors.New("short URL already exists")
	ErrInvalidURL   = errors.New("invalid URL format")
	ErrUnauthorized = errors.New("user not authenticated")
	ErrQREncode     = errors.New("QR code generation failed")
)
