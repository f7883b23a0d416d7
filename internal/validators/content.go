package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/vitrine/models"
	"github.com/go-playground/validator/v10"
)

// FieldID restricts validation to the record identifier. Updates and
// deletes use it before the stored record is loaded.
const FieldID = "id"

const dateLayout = "datetime=2006-01-02"

// Tag rules per model, keyed by struct field name.
var (
	publicationRules = map[string]string{
		"Title":       "required,max=300",
		"Description": "max=5000",
		"Type":        "omitempty,oneof=document video podcast article",
		"Category":    "max=100",
		"SubCategory": "max=100",
		"FileURL":     "required_without_all=VideoURL PodcastURL,max=2048",
		"VideoURL":    "max=2048",
		"PodcastURL":  "max=2048",
		"ImageURL":    "max=2048",
		"Author":      "max=200",
		"Date":        "omitempty," + dateLayout,
	}

	newsItemRules = map[string]string{
		"Title":    "required,max=300",
		"Summary":  "max=1000",
		"Content":  "max=20000",
		"Category": "max=100",
		"ImageURL": "max=2048",
		"VideoURL": "max=2048",
		"Author":   "max=200",
		"Date":     "omitempty," + dateLayout,
	}

	realisationRules = map[string]string{
		"Title":       "required,max=300",
		"Description": "max=5000",
		"Client":      "max=200",
		"Sector":      "max=200",
		"Category":    "max=100",
		"SubCategory": "max=100",
		"ImageURL":    "max=2048",
		"VideoURL":    "max=2048",
		"Results":     "max=50,dive,max=500",
		"Date":        "omitempty," + dateLayout,
	}

	sectionVideoRules = map[string]string{
		"Section":   "required,max=100,excludesall=/\\?#",
		"Title":     "max=300",
		"VideoURL":  "omitempty,url,max=2048",
		"VideoPath": "omitempty,startswith=/,max=2048",
		"Thumbnail": "max=2048",
	}

	contactRules = map[string]string{
		"Name":    "required,max=200",
		"Email":   "required,email,max=254",
		"Phone":   "max=50",
		"Company": "max=200",
		"Subject": "max=300",
		"Message": "required,max=5000",
	}

	loginRules = map[string]string{
		"Email":    "required,email",
		"Password": "required,max=200",
	}

	replyRules = map[string]string{
		"Message": "required,max=10000",
	}
)

// ContentValidator implements [Validator] for the models accepted by the
// admin API and the public contact form. Both value and pointer forms of
// each model are accepted.
type ContentValidator struct {
	validate *validator.Validate
}

// NewContentValidator constructs a [ContentValidator] and returns it as
// the Validator interface.
func NewContentValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidationMapRules(publicationRules, models.Publication{})
	v.RegisterStructValidationMapRules(newsItemRules, models.NewsItem{})
	v.RegisterStructValidationMapRules(realisationRules, models.Realisation{})
	v.RegisterStructValidationMapRules(sectionVideoRules, models.SectionVideo{})
	v.RegisterStructValidationMapRules(contactRules, models.Contact{})
	v.RegisterStructValidationMapRules(loginRules, models.LoginRequest{})
	v.RegisterStructValidationMapRules(replyRules, models.ContactReply{})
	v.RegisterStructValidation(sectionVideoSource, models.SectionVideo{})

	return &ContentValidator{validate: v}
}

// Validate dispatches on the dynamic type of obj.
//
// With no fields the whole model is checked. [FieldID] checks only that the
// identifier is set; any other field name yields [ErrUnknownField].
func (v *ContentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Publication:
		return v.validateRecord(ctx, value, value.ID, fields)
	case *models.Publication:
		return v.validateRecord(ctx, value, value.ID, fields)
	case models.NewsItem:
		return v.validateRecord(ctx, value, value.ID, fields)
	case *models.NewsItem:
		return v.validateRecord(ctx, value, value.ID, fields)
	case models.Realisation:
		return v.validateRecord(ctx, value, value.ID, fields)
	case *models.Realisation:
		return v.validateRecord(ctx, value, value.ID, fields)
	case models.SectionVideo:
		return v.validateStruct(ctx, value)
	case *models.SectionVideo:
		return v.validateStruct(ctx, value)
	case models.Contact:
		return v.validateStruct(ctx, value)
	case *models.Contact:
		return v.validateStruct(ctx, value)
	case models.LoginRequest:
		return v.validateStruct(ctx, value)
	case *models.LoginRequest:
		return v.validateStruct(ctx, value)
	case models.ContactReply:
		return v.validateStruct(ctx, value)
	case *models.ContactReply:
		return v.validateStruct(ctx, value)
	case models.NewsKind:
		return validateNewsKind(value)
	case models.NewsRequest:
		return v.validateNewsRequest(value, fields)
	case *models.NewsRequest:
		return v.validateNewsRequest(*value, fields)
	default:
		return ErrUnsupportedType
	}
}

func (v *ContentValidator) validateRecord(ctx context.Context, obj any, id string, fields []string) error {
	if len(fields) == 0 {
		return v.validateStruct(ctx, obj)
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(id) == "" {
				return ErrIDRequired
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *ContentValidator) validateNewsRequest(request models.NewsRequest, fields []string) error {
	if err := validateNewsKind(request.Type); err != nil {
		return err
	}
	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(request.ID) == "" {
				return ErrIDRequired
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func validateNewsKind(kind models.NewsKind) error {
	switch kind {
	case models.KindNews, models.KindRealisation:
		return nil
	}
	return ErrInvalidNewsKind
}

func (v *ContentValidator) validateStruct(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}
	fe := validationErrors[0]
	return fmt.Errorf("%w: %s", sentinelFor(fe), jsonName(fe.StructField()))
}

// sectionVideoSource requires exactly one video source on active videos.
func sectionVideoSource(sl validator.StructLevel) {
	video := sl.Current().Interface().(models.SectionVideo)
	if !video.Active {
		return
	}
	hasURL := strings.TrimSpace(video.VideoURL) != ""
	hasPath := strings.TrimSpace(video.VideoPath) != ""
	if hasURL == hasPath {
		sl.ReportError(video.VideoURL, "VideoURL", "VideoURL", "video_source", "")
	}
}

// sentinelFor maps the first failed rule to the error the HTTP layer knows.
func sentinelFor(fe validator.FieldError) error {
	switch fe.Tag() {
	case "max", "dive":
		return ErrFieldTooLong
	case "email":
		return ErrInvalidEmail
	case "url", "startswith", "excludesall":
		return ErrInvalidURL
	case "datetime":
		return ErrInvalidDate
	case "oneof":
		return ErrInvalidType
	case "required_without_all":
		return ErrMediaURLRequired
	case "video_source":
		return ErrVideoSourceRequired
	case "required":
		switch fe.StructField() {
		case "Title":
			return ErrTitleRequired
		case "Section":
			return ErrSectionRequired
		case "Name":
			return ErrNameRequired
		case "Email":
			return ErrEmailRequired
		case "Message":
			return ErrMessageRequired
		case "Password":
			return ErrPasswordRequired
		}
	}
	return ErrInvalidField
}

// jsonName lowercases the first letter of a Go field name ("FileURL" becomes
// "fileURL"), close enough to the JSON key for an error message.
func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
