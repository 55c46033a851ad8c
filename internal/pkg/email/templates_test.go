package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBookingRequest(t *testing.T) {
	html, text, err := RenderBookingRequest(BookingRequestData{
		StudioName: "Studio Podcast Pro",
		FirstName:  "Amina",
		LastName:   "Benali",
		Email:      "amina@example.com",
		Phone:      "+33 6 12 34 56 78",
		City:       "Lyon",
		Message:    "Bonjour, je souhaite <réserver> samedi.",
	})
	require.NoError(t, err)

	assert.Contains(t, text, "Studio: Studio Podcast Pro")
	assert.Contains(t, text, "Nom: Amina Benali")
	assert.Contains(t, text, "<réserver>")
	assert.True(t, strings.HasSuffix(text, "Envoyé depuis le site web Misk Studios"))

	assert.Contains(t, html, "mailto:amina@example.com")
	assert.Contains(t, html, "&lt;réserver&gt;")
	assert.NotContains(t, html, "<réserver>")
}

func TestBookingRequestSubject(t *testing.T) {
	assert.Equal(t, "Nouvelle demande de réservation - Studio Streaming Live", BookingRequestSubject("Studio Streaming Live"))
}
