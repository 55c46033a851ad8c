package validator

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Phone    string   `json:"telephone" validate:"required,min=8,phone"`
	Category string   `json:"category" validate:"required,studio_category"`
	Type     string   `json:"type" validate:"required,equipment_type"`
	Area     int      `json:"area" validate:"required,gt=0"`
	Tags     []string `json:"tags" validate:"omitempty,dive,required"`
}

type contact struct {
	Prenom  string `json:"prenom" validate:"required,min=2,max=50"`
	Phone   string `json:"telephone" validate:"required,min=8,phone"`
	Message string `json:"message" validate:"required,min=10"`
}

func TestValidateAcceptsValidInput(t *testing.T) {
	errs := Validate(sample{
		Phone:    "+33 (1) 23-45-67",
		Category: "Enregistrement",
		Type:     "Lighting",
		Area:     25,
	})
	assert.Nil(t, errs)
}

func TestValidateReportsEveryFieldAtOnce(t *testing.T) {
	errs := Validate(sample{
		Phone:    "call me maybe",
		Category: "Karaoke",
		Type:     "Drone",
		Area:     0,
		Tags:     []string{""},
	})

	assert.Equal(t, "Veuillez entrer un numéro de téléphone valide", errs["telephone"])
	assert.Contains(t, errs["category"], "Podcast, Enregistrement, Streaming, Production")
	assert.Contains(t, errs["type"], "Other")
	assert.Equal(t, "Ce champ est requis", errs["area"])
	assert.Equal(t, "Ce champ est requis", errs["tags[0]"])
}

func TestValidateUsesFrenchFieldMessages(t *testing.T) {
	errs := Validate(contact{Prenom: "A", Phone: "0612", Message: "court"})

	assert.Equal(t, "Le prénom doit contenir au moins 2 caractères", errs["prenom"])
	assert.Equal(t, "Le numéro de téléphone doit contenir au moins 8 chiffres", errs["telephone"])
	assert.Equal(t, "Le message doit contenir au moins 10 caractères", errs["message"])

	errs = Validate(contact{Prenom: strings.Repeat("a", 51), Phone: "0612345678", Message: "assez long message"})
	assert.Equal(t, map[string]string{"prenom": "Le prénom ne peut pas dépasser 50 caractères"}, errs)
}

func TestPhoneRule(t *testing.T) {
	valid := []string{"0612345678", "+33612345678", "06 12 34 56 78", "(01) 23-45-67-89"}
	for _, p := range valid {
		assert.NotContains(t, Validate(sample{Phone: p}), "telephone", p)
	}

	invalid := []string{"06.12.34.56.78", "phone: 0612", "++33612345678", "0612345678x"}
	for _, p := range invalid {
		assert.Contains(t, Validate(sample{Phone: p}), "telephone", p)
	}
}

func TestDecodeErrorsNamesMistypedField(t *testing.T) {
	var target sample
	err := json.Unmarshal([]byte(`{"area":"25"}`), &target)
	assert.Equal(t, map[string]string{"area": "Doit être un nombre entier"}, DecodeErrors(err))

	err = json.Unmarshal([]byte(`{"area":10.5}`), &target)
	assert.Equal(t, map[string]string{"area": "Doit être un nombre entier"}, DecodeErrors(err))

	err = json.Unmarshal([]byte(`{"tags":"x"}`), &target)
	assert.Equal(t, map[string]string{"tags": "Doit être une liste"}, DecodeErrors(err))

	assert.Nil(t, DecodeErrors(errors.New("unexpected EOF")))
	assert.Nil(t, DecodeErrors(json.Unmarshal([]byte(`{`), &target)))
}
