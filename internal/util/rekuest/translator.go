package rekuest

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/gofiber/fiber/v2"

	"exusiai.dev/matchstats/internal/constant"
	"exusiai.dev/matchstats/internal/util/i18n"
)

// TranslatorFromCtx returns the translator picked for the request, or the fallback
// when the i18n middleware did not run.
func TranslatorFromCtx(ctx *fiber.Ctx) ut.Translator {
	if t, ok := ctx.Locals(constant.ContextKeyTranslator).(ut.Translator); ok {
		return t
	}
	return i18n.UT.GetFallback()
}
