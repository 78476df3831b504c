package utils

import (
	"guidingpath-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate       *validator.Validate
	slotLabelRegex = regexp.MustCompile(constvars.RegexSlotLabel)
	monthKeyRegex  = regexp.MustCompile(constvars.RegexMonthKey)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("date_only", validateDateOnly)
	validate.RegisterValidation("month_key", validateMonthKey)
	validate.RegisterValidation("slot_label", validateSlotLabel)
	validate.RegisterValidation("counsel_type", validateCounselType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.LayoutDateOnly, fl.Field().String())
	return err == nil
}

func validateMonthKey(fl validator.FieldLevel) bool {
	return monthKeyRegex.MatchString(fl.Field().String())
}

func validateSlotLabel(fl validator.FieldLevel) bool {
	return slotLabelRegex.MatchString(fl.Field().String())
}

func validateCounselType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.CounselTypeVirtual || value == constvars.CounselTypeInPerson
}
