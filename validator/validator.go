package validator

import (
	"errors"
	"net"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"

	"github.com/arklib/redix/errx"
)

// TagRedisAddr accepts host:port or an absolute unix socket path.
const TagRedisAddr = "redis_addr"

var addrMessages = map[string]string{
	"en": "{0} must be a host:port address or a unix socket path",
	"zh": "{0}必须是host:port地址或unix套接字路径",
}

// Validator checks `vd` tags. Field names in messages come from `label`.
type Validator struct {
	validate *validator.Validate
	uni      *ut.UniversalTranslator
	lang     string
}

func New(lang string) *Validator {
	validate := validator.New()
	validate.SetTagName("vd")
	validate.RegisterTagNameFunc(labelName)
	_ = validate.RegisterValidation(TagRedisAddr, redisAddr)

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, zh.New())

	defaults := map[string]func(*validator.Validate, ut.Translator) error{
		"en": enTranslations.RegisterDefaultTranslations,
		"zh": zhTranslations.RegisterDefaultTranslations,
	}
	for locale, register := range defaults {
		trans, _ := uni.GetTranslator(locale)
		_ = register(validate, trans)
		_ = validate.RegisterTranslation(TagRedisAddr, trans, addMessage(TagRedisAddr, addrMessages[locale]), translateField)
	}

	return &Validator{validate: validate, uni: uni, lang: lang}
}

// Test validates a struct and returns the first failure translated for lang
// (an Accept-Language style list) as an errx.AppError with code 400.
func (v *Validator) Test(value any, lang string) error {
	err := v.validate.Struct(value)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return errx.New(err, errx.CodeInvalid)
	}
	trans, found := v.uni.FindTranslator(v.parseLocales(lang)...)
	if !found {
		return errx.New(errs[0].Error(), errx.CodeInvalid)
	}
	return errx.New(errs[0].Translate(trans), errx.CodeInvalid)
}

func (v *Validator) parseLocales(lang string) []string {
	if lang == "" {
		return []string{v.lang}
	}

	var locales []string
	for _, value := range strings.Split(lang, ",") {
		locale, _, _ := strings.Cut(value, ";")
		locales = append(locales, strings.TrimSpace(locale))
	}
	return append(locales, v.lang)
}

func labelName(field reflect.StructField) string {
	if label := field.Tag.Get("label"); label != "" {
		return label
	}
	return field.Name
}

func redisAddr(fl validator.FieldLevel) bool {
	addr := fl.Field().String()
	if strings.HasPrefix(addr, "/") {
		return true
	}
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}
	n, err := strconv.Atoi(port)
	return err == nil && n > 0 && n <= 65535
}

func addMessage(tag, message string) validator.RegisterTranslationsFunc {
	return func(trans ut.Translator) error {
		return trans.Add(tag, message, true)
	}
}

func translateField(trans ut.Translator, fe validator.FieldError) string {
	message, err := trans.T(fe.Tag(), fe.Field())
	if err != nil {
		return fe.Error()
	}
	return message
}
