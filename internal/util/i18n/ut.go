package i18n

import (
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
)

// UT falls back to English for languages without registered translations.
var UT = ut.New(en.New(), en.New(), zh.New(), ja.New())
