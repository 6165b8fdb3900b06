package rekuest

import (
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	jaTranslations "github.com/go-playground/validator/v10/translations/ja"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"exusiai.dev/matchstats/internal/pkg/apierr"
	"exusiai.dev/matchstats/internal/util"
	"exusiai.dev/matchstats/internal/util/i18n"
)

var Validate = util.NewValidator()

// customMessages are the English fallbacks of the custom validation tags.
var customMessages = map[string]string{
	"role": "{0} must be a role between 1 (top) and 5 (support)",
	"side": "{0} must be 1 (red) or 2 (blue)",
}

func init() {
	entr, _ := i18n.UT.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(Validate, entr); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	zhtr, _ := i18n.UT.GetTranslator("zh")
	if err := zhTranslations.RegisterDefaultTranslations(Validate, zhtr); err != nil {
		log.Warn().Err(err).Str("locale", "zh").Msg("could not register translation")
	}

	jatr, _ := i18n.UT.GetTranslator("ja")
	if err := jaTranslations.RegisterDefaultTranslations(Validate, jatr); err != nil {
		log.Warn().Err(err).Str("locale", "ja").Msg("could not register translation")
	}

	translators := map[string]ut.Translator{
		"en": entr,
		"zh": zhtr,
		"ja": jatr,
	}

	for l, t := range translators {
		for tag, message := range customMessages {
			message := message
			err := Validate.RegisterTranslation(tag, t, func(ut ut.Translator) error {
				return ut.Add(tag, message, true)
			}, func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T(fe.Tag(), fe.Field())
				return t
			})
			if err != nil {
				log.Warn().Err(err).Str("locale", l).Str("tag", tag).Msg("could not register translation for custom tag")
			}
		}
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func translate(utt ut.Translator, ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   util.AddSpace(fe.Translate(utt)),
		})
	}
	return trans
}

func validateStruct(ctx *fiber.Ctx, s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		panic(err)
	}
	return translate(TranslatorFromCtx(ctx), errs)
}

// ValidQuery parses the query string of ctx into dest using fiber#QueryParser and
// validates it with the validator singleton. dest shall always be a pointer.
func ValidQuery(ctx *fiber.Ctx, dest any) error {
	if err := ctx.QueryParser(dest); err != nil {
		return apierr.ErrInvalidReq.Msg("invalid query: %s", err)
	}

	return ValidStruct(ctx, dest)
}

func ValidStruct(ctx *fiber.Ctx, dest any) error {
	if err := validateStruct(ctx, dest); err != nil {
		return apierr.NewInvalidViolations(err)
	}

	return nil
}

// ValidID reads the path parameter name as a positive integer id.
func ValidID(ctx *fiber.Ctx, name string) (int, error) {
	id, err := strconv.Atoi(ctx.Params(name))
	if err != nil || id <= 0 {
		return 0, apierr.ErrInvalidReq.Msg("invalid or missing %s", name)
	}
	return id, nil
}
