package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrIDRequired          = errors.New("id is required")
	ErrTitleRequired       = errors.New("title is required")
	ErrMediaURLRequired    = errors.New("a file, video or podcast url is required")
	ErrInvalidType         = errors.New("invalid type")
	ErrInvalidNewsKind     = errors.New("type must be news or realisation")
	ErrInvalidDate         = errors.New("date must use the YYYY-MM-DD format")
	ErrInvalidURL          = errors.New("invalid url")
	ErrSectionRequired     = errors.New("section is required")
	ErrVideoSourceRequired = errors.New("an active video needs exactly one of videoUrl or videoPath")
	ErrNameRequired        = errors.New("name is required")
	ErrEmailRequired       = errors.New("email is required")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrMessageRequired     = errors.New("message is required")
	ErrPasswordRequired    = errors.New("password is required")
	ErrFieldTooLong        = errors.New("field is too long")
	ErrInvalidField        = errors.New("invalid field")
)
