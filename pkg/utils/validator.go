package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("department", validateDepartment)
	Validate.RegisterValidation("domain", validateDomain)
}

func validateDepartment(fl validator.FieldLevel) bool {
	return contains(models.Departments, fl.Field().String())
}

func validateDomain(fl validator.FieldLevel) bool {
	return contains(models.Domains, fl.Field().String())
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

func ValidateStruct(s interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := Validate.Struct(s)
	if err != nil {

		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.Field = err.Field()
			element.Tag = err.Tag()

			switch err.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
			case "min":
				element.Msg = fmt.Sprintf("Field '%s' must have at least %s characters/value.", element.Field, err.Param())
			case "max":
				element.Msg = fmt.Sprintf("Field '%s' must have at most %s characters/value.", element.Field, err.Param())
			case "email":
				element.Msg = "Invalid email format."
			case "department":
				element.Msg = fmt.Sprintf("Field '%s' must be one of the known departments.", element.Field)
			case "domain":
				element.Msg = fmt.Sprintf("Field '%s' must be one of the known domains.", element.Field)
			default:
				element.Msg = fmt.Sprintf("Field '%s' failed validation for tag '%s'.", element.Field, element.Tag)
			}
			errors = append(errors, &element)
		}
	}
	return errors
}
