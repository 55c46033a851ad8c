package validator

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StudioCategories lists the accepted studio categories.
var StudioCategories = []string{"Podcast", "Enregistrement", "Streaming", "Production"}

// EquipmentTypes lists the accepted equipment types.
var EquipmentTypes = []string{"Audio", "Video", "Lighting", "Computer", "Recording", "Streaming", "Other"}

var phonePattern = regexp.MustCompile(`^[+]?[\d\s\-()]+$`)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	validate.RegisterValidation("studio_category", func(fl validator.FieldLevel) bool {
		return contains(StudioCategories, fl.Field().String())
	})

	validate.RegisterValidation("equipment_type", func(fl validator.FieldLevel) bool {
		return contains(EquipmentTypes, fl.Field().String())
	})
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// fieldLabels names booking fields in messages.
var fieldLabels = map[string]string{
	"prenom":    "Le prénom",
	"nom":       "Le nom",
	"telephone": "Le numéro de téléphone",
	"ville":     "La ville",
	"message":   "Le message",
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"body": "Requête invalide"}
	}

	fieldErrs := make(map[string]string)
	for _, fe := range validationErrors {
		fieldErrs[fe.Field()] = message(fe)
	}

	return fieldErrs
}

func message(err validator.FieldError) string {
	field := err.Field()
	switch err.Tag() {
	case "required":
		return "Ce champ est requis"
	case "email":
		return "Veuillez entrer une adresse email valide"
	case "min":
		if field == "telephone" {
			return "Le numéro de téléphone doit contenir au moins " + err.Param() + " chiffres"
		}
		if label, ok := fieldLabels[field]; ok {
			return label + " doit contenir au moins " + err.Param() + " caractères"
		}
		return "Doit contenir au moins " + err.Param() + " caractères"
	case "max":
		if label, ok := fieldLabels[field]; ok {
			return label + " ne peut pas dépasser " + err.Param() + " caractères"
		}
		return "Ne peut pas dépasser " + err.Param() + " caractères"
	case "gt":
		return "Doit être supérieur à " + err.Param()
	case "gte":
		return "Doit être supérieur ou égal à " + err.Param()
	case "lte":
		return "Doit être inférieur ou égal à " + err.Param()
	case "url":
		return "URL invalide"
	case "phone":
		return "Veuillez entrer un numéro de téléphone valide"
	case "studio_category":
		return "Catégorie invalide. Valeurs acceptées : " + strings.Join(StudioCategories, ", ")
	case "equipment_type":
		return "Type invalide. Valeurs acceptées : " + strings.Join(EquipmentTypes, ", ")
	default:
		return "Valeur invalide"
	}
}

// DecodeErrors maps a JSON type mismatch to a field error.
// It returns nil for any other decode error.
func DecodeErrors(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil
	}
	return map[string]string{typeErr.Field: expectedType(typeErr.Type)}
}

func expectedType(t reflect.Type) string {
	if t == nil {
		return "Type de valeur invalide"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "Doit être un nombre entier"
	case reflect.Float32, reflect.Float64:
		return "Doit être un nombre"
	case reflect.String:
		return "Doit être une chaîne de caractères"
	case reflect.Bool:
		return "Doit être un booléen"
	case reflect.Slice, reflect.Array:
		return "Doit être une liste"
	default:
		return "Type de valeur invalide"
	}
}
