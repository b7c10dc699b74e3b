package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/NavalhaDigital/booking-api/internal/config"
	dbpkg "github.com/NavalhaDigital/booking-api/internal/db"
	"github.com/NavalhaDigital/booking-api/internal/models"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// --------------------------------------------------
	// Catálogo inicial (só quando a tabela está vazia)
	// --------------------------------------------------
	var serviceCount int64
	db.Model(&models.Service{}).Count(&serviceCount)

	if serviceCount == 0 {
		services := []models.Service{
			{Name: "Corte de Cabelo", Price: 45, DurationMinutes: 30, Description: "Corte clássico ou degradê, com finalização."},
			{Name: "Barba Completa", Price: 35, DurationMinutes: 30, Description: "Modelagem com navalha e toalha quente."},
			{Name: "Combo Corte + Barba", Price: 70, DurationMinutes: 60, Description: "Corte e barba na mesma sessão."},
			{Name: "Sobrancelha", Price: 15, DurationMinutes: 10, Description: "Alinhamento na navalha."},
			{Name: "Hidratação Capilar", Price: 40, DurationMinutes: 25, Description: "Tratamento para couro e fios."},
			{Name: "Pezinho", Price: 15, DurationMinutes: 15, Description: "Acabamento do contorno."},
		}

		if err := db.Create(&services).Error; err != nil {
			log.Fatalf("failed to seed services: %v", err)
		}
		log.Printf("seeded %d services", len(services))
	}

	// --------------------------------------------------
	// Profissional de demonstração
	// --------------------------------------------------
	var professionalCount int64
	db.Model(&models.Professional{}).Count(&professionalCount)

	if professionalCount == 0 {
		professional := models.Professional{
			ID:       uuid.NewString(),
			Name:     "Carlos Andrade",
			Email:    "carlos@navalha.app",
			Phone:    "+55 11 98888-0001",
			IsActive: true,
		}

		if err := db.Create(&professional).Error; err != nil {
			log.Fatalf("failed to seed professional: %v", err)
		}
		log.Printf("seeded professional %s", professional.Name)
	}

	// --------------------------------------------------
	// Usuário do painel (credenciais via ambiente)
	// --------------------------------------------------
	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")

	if adminEmail != "" && adminPassword != "" {
		var userCount int64
		db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&userCount)

		if userCount == 0 {
			hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("failed to hash admin password: %v", err)
			}

			user := models.User{
				Name:         "Administrador",
				Email:        adminEmail,
				PasswordHash: string(hashed),
				Role:         "admin",
			}

			if err := db.Create(&user).Error; err != nil {
				log.Fatalf("failed to seed admin user: %v", err)
			}
			log.Printf("seeded admin user %s", adminEmail)
		}
	}

	log.Println("seed done")
}
