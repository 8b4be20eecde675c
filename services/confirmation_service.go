package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/mobauto/workshop-backend/configs"
	"github.com/mobauto/workshop-backend/database"
	"github.com/mobauto/workshop-backend/models"
	"github.com/mobauto/workshop-backend/notifications"
)

const confirmationTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1f2937; margin: 40px; }
  h1 { color: #b91c1c; }
  .reference { font-size: 22px; letter-spacing: 2px; }
  table { border-collapse: collapse; margin-top: 16px; }
  td { padding: 6px 16px 6px 0; vertical-align: top; }
  .label { color: #6b7280; }
  .footer { margin-top: 48px; font-size: 12px; color: #6b7280; }
</style>
</head>
<body>
  <h1>Mobauto — Cita confirmada</h1>
  <p class="reference">Referencia: <strong>{{.Reference}}</strong></p>
  <table>
    <tr><td class="label">Cliente</td><td>{{.CustomerName}}</td></tr>
    <tr><td class="label">Fecha</td><td>{{.Date}}</td></tr>
    <tr><td class="label">Hora</td><td>{{.Time}}</td></tr>
    <tr><td class="label">Vehiculo</td><td>{{.Vehicle}}</td></tr>
    <tr><td class="label">Servicios</td><td>{{range .Services}}{{.}}<br>{{end}}</td></tr>
  </table>
  <p class="footer">Presenta esta referencia al llegar al taller. Emitido el {{.IssuedAt}}.</p>
</body>
</html>`

// GenerateConfirmationPDF renders the confirmation document for a just
// confirmed appointment, uploads it and stores the URL on the record.
// Runs in the background after the admin status update; failures are
// logged, never surfaced to the customer flow.
func GenerateConfirmationPDF(appointmentID uuid.UUID) {
	var appointment models.Appointment
	if err := database.DB.Preload("Services.Service").First(&appointment, "id = ?", appointmentID).Error; err != nil {
		log.Printf("🔥 Confirmation PDF: appointment %s not found: %v", appointmentID, err)
		return
	}
	if appointment.Status != models.StatusConfirmed {
		return
	}

	htmlData, err := renderConfirmationHTML(appointment)
	if err != nil {
		log.Printf("🔥 Failed to render confirmation HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate confirmation PDF: %v", err)
		return
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, appointment.Reference)
	if err != nil {
		log.Printf("🔥 Failed to upload confirmation PDF: %v", err)
		return
	}

	appointment.ConfirmationPDFURL = &uploadURL
	if err := database.DB.Model(&models.Appointment{}).Where("id = ?", appointment.ID).
		Update("confirmation_pdf_url", uploadURL).Error; err != nil {
		log.Printf("🔥 Failed to store confirmation PDF URL for %s: %v", appointment.ID, err)
		return
	}

	go notifications.SendEmail(
		appointment.CustomerName,
		appointment.CustomerEmail,
		"Tu cita en Mobauto está confirmada",
		fmt.Sprintf("<h1>Cita confirmada</h1><p>Tu cita %s del %s a las %s ha sido confirmada.</p><p><a href='%s'>Descargar justificante</a></p>",
			appointment.Reference, appointment.ScheduledDate.Format("2006-01-02"), appointment.ScheduledTime, uploadURL),
	)

	log.Printf("✅ Confirmation PDF generated for appointment %s", appointment.Reference)
}

func renderConfirmationHTML(appointment models.Appointment) (string, error) {
	tmpl, err := template.New("confirmation").Parse(confirmationTemplate)
	if err != nil {
		return "", err
	}

	serviceNames := make([]string, 0, len(appointment.Services))
	for _, item := range appointment.Services {
		serviceNames = append(serviceNames, item.Service.Name)
	}

	vehicle := fmt.Sprintf("%s %s (%s)", appointment.VehicleBrand, appointment.VehicleModel, appointment.VehiclePlate)

	data := struct {
		Reference    string
		CustomerName string
		Date         string
		Time         string
		Vehicle      string
		Services     []string
		IssuedAt     string
	}{
		Reference:    appointment.Reference,
		CustomerName: appointment.CustomerName,
		Date:         appointment.ScheduledDate.Format("2006-01-02"),
		Time:         appointment.ScheduledTime,
		Vehicle:      vehicle,
		Services:     serviceNames,
		IssuedAt:     time.Now().Format("2006-01-02 15:04"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, reference string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("confirmations/%s_%s", reference, uuid.New().String()),
		Folder:       "mobauto_confirmations",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
