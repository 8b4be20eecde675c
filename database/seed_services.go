package database

import (
	"log"

	"github.com/mobauto/workshop-backend/models"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// SeedServices inserts the shop catalog on first boot. Existing slugs are
// left untouched so admin edits survive restarts.
func SeedServices() {
	services := []models.Service{
		{
			Slug:             "chapa-pintura",
			Name:             "Chapa y Pintura",
			ShortDescription: "Reparacion de carroceria, abolladuras, aranazos y pintado profesional.",
			FullDescription:  "Nuestro servicio estrella. En Mobauto somos especialistas en chapa y pintura con mas de 10 anos de experiencia.",
			Icon:             "format_paint",
			Category:         "BODYWORK",
			PriceLabel:       "Presupuesto sin compromiso",
			Features: []string{
				"Reparacion de abolladuras y golpes",
				"Pintado parcial o completo del vehiculo",
				"Igualacion de color con tecnologia computerizada",
				"Coche de sustitucion disponible",
			},
			SortOrder: 1,
		},
		{
			Slug:             "cristales",
			Name:             "Cristales para Automoviles",
			ShortDescription: "Reparacion y sustitucion de lunas, parabrisas y cristales laterales.",
			FullDescription:  "Servicio integral de cristales para tu vehiculo.",
			Icon:             "window",
			Category:         "REPAIR",
			PriceLabel:       "Presupuesto sin compromiso",
			Features: []string{
				"Reparacion de impactos en parabrisas",
				"Sustitucion de lunas delanteras y traseras",
				"Cristales homologados",
			},
			SortOrder: 2,
		},
		{
			Slug:             "reparacion-general",
			Name:             "Reparacion de Automoviles",
			ShortDescription: "Mecanica general: motor, frenos, suspension, embrague y mas.",
			FullDescription:  "Taller de reparacion integral.",
			Icon:             "build",
			Category:         "REPAIR",
			PriceLabel:       "Presupuesto sin compromiso",
			Features: []string{
				"Diagnostico electronico avanzado",
				"Reparacion de motor",
				"Sistemas de frenado",
				"Suspension y amortiguadores",
			},
			SortOrder: 3,
		},
		{
			Slug:             "mantenimiento",
			Name:             "Mantenimiento Preventivo",
			ShortDescription: "Cambio de aceite, filtros, revisiones y mantenimiento periodico.",
			FullDescription:  "El mantenimiento preventivo es clave para alargar la vida de tu vehiculo.",
			Icon:             "oil_barrel",
			Category:         "MAINTENANCE",
			PriceMin:         floatPtr(49),
			PriceLabel:       "Desde 49€",
			EstimatedMinutes: intPtr(60),
			Features: []string{
				"Cambio de aceite y filtros",
				"Revision de niveles",
				"Cambio de pastillas de freno",
			},
			SortOrder: 4,
		},
		{
			Slug:             "pre-itv",
			Name:             "Pre-ITV",
			ShortDescription: "Revision completa previa a la ITV.",
			FullDescription:  "Revisamos todos los puntos que se evaluan en la ITV.",
			Icon:             "verified",
			Category:         "INSPECTION",
			PriceMin:         floatPtr(39),
			PriceLabel:       "Desde 39€",
			EstimatedMinutes: intPtr(30),
			Features: []string{
				"Revision de emisiones",
				"Comprobacion de luces y senalizacion",
				"Estado de frenos",
			},
			SortOrder: 5,
		},
		{
			Slug:             "peritaje-siniestros",
			Name:             "Peritaje y Siniestros",
			ShortDescription: "Gestion completa de siniestros con aseguradoras.",
			FullDescription:  "Nos encargamos de todo el proceso de gestion con tu aseguradora.",
			Icon:             "description",
			Category:         "OTHER",
			PriceLabel:       "Presupuesto sin compromiso",
			Features: []string{
				"Peritaje de danos",
				"Tramitacion con la aseguradora",
				"Reparacion del siniestro",
			},
			SortOrder: 6,
		},
	}

	for _, service := range services {
		var count int64
		if err := DB.Model(&models.Service{}).Where("slug = ?", service.Slug).Count(&count).Error; err != nil {
			log.Fatalf("🔥 Failed to check for service %s: %v", service.Slug, err)
			return
		}
		if count > 0 {
			continue
		}
		if err := DB.Create(&service).Error; err != nil {
			log.Fatalf("🔥 Failed to seed service %s: %v", service.Slug, err)
			return
		}
	}

	log.Println("✅ Service catalog seeded successfully")
}
