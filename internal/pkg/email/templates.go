package email

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// BookingRequestData is rendered into the operator notification.
type BookingRequestData struct {
	StudioID   string
	StudioName string
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	City       string
	Message    string
}

const bookingRequestHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Nouvelle demande de réservation</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background-color: #f8fafc; padding: 20px; border-radius: 10px; margin-bottom: 20px;">
    <h1 style="color: #2563eb; margin: 0;">Nouvelle demande de réservation</h1>
  </div>
  <div style="background-color: #fff; padding: 20px; border-radius: 8px; border: 1px solid #e5e7eb;">
    <h2 style="color: #374151; border-bottom: 2px solid #2563eb; padding-bottom: 10px;">Détails de la réservation</h2>
    <table style="width: 100%; border-collapse: collapse;">
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #4b5563;">Studio:</td>
        <td style="padding: 8px 0; color: #2563eb; font-weight: bold;">{{.StudioName}}</td>
      </tr>
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #4b5563;">Nom complet:</td>
        <td style="padding: 8px 0;">{{.FirstName}} {{.LastName}}</td>
      </tr>
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #4b5563;">Email:</td>
        <td style="padding: 8px 0;"><a href="mailto:{{.Email}}" style="color: #2563eb;">{{.Email}}</a></td>
      </tr>
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #4b5563;">Téléphone:</td>
        <td style="padding: 8px 0;"><a href="tel:{{.Phone}}" style="color: #2563eb;">{{.Phone}}</a></td>
      </tr>
      <tr>
        <td style="padding: 8px 0; font-weight: bold; color: #4b5563;">Ville:</td>
        <td style="padding: 8px 0;">{{.City}}</td>
      </tr>
    </table>
    <h3 style="color: #374151; margin-top: 20px; margin-bottom: 10px;">Message:</h3>
    <div style="background-color: #f3f4f6; padding: 15px; border-radius: 6px; white-space: pre-wrap;">{{.Message}}</div>
  </div>
  <div style="margin-top: 20px; text-align: center; color: #6b7280; font-size: 14px;">
    <p>Envoyé depuis le site web Misk Studios</p>
  </div>
</body>
</html>`

const bookingRequestText = `Nouvelle demande de réservation

Studio: {{.StudioName}}
Nom: {{.FirstName}} {{.LastName}}
Email: {{.Email}}
Téléphone: {{.Phone}}
Ville: {{.City}}

Message:
{{.Message}}

---
Envoyé depuis le site web Misk Studios`

var (
	bookingRequestHTMLTmpl = htmltemplate.Must(htmltemplate.New("booking_request_html").Parse(bookingRequestHTML))
	bookingRequestTextTmpl = texttemplate.Must(texttemplate.New("booking_request_text").Parse(bookingRequestText))
)

// BookingRequestSubject returns the subject line for a booking notification.
func BookingRequestSubject(studioName string) string {
	return "Nouvelle demande de réservation - " + studioName
}

// RenderBookingRequest renders the HTML and plain-text bodies.
func RenderBookingRequest(data BookingRequestData) (html, text string, err error) {
	var buf bytes.Buffer
	if err := bookingRequestHTMLTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	html = buf.String()

	buf.Reset()
	if err := bookingRequestTextTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	text = strings.TrimSpace(buf.String())

	return html, text, nil
}
