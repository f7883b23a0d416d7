package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUnknownPageType       = errors.New("unknown page type")
	ErrPublicationNotFound   = errors.New("publication was not found")
	ErrNewsNotFound          = errors.New("news item was not found")
	ErrSectionVideoNotFound  = errors.New("section video was not found")
	ErrUnsupportedUploadType = errors.New("unsupported upload type")
	ErrFileTypeNotAllowed    = errors.New("file type is not allowed")
)
