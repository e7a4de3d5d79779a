package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/homeroomhq/homeroom-backend/internal/config"
	"github.com/homeroomhq/homeroom-backend/internal/database"
	"github.com/homeroomhq/homeroom-backend/internal/logger"
	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/homeroomhq/homeroom-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	familyRepo := repository.NewFamilyRepository(pool)
	guardianRepo := repository.NewGuardianRepository(pool)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Family ===")

	// Family name
	fmt.Print("Enter Family Name: ")
	familyName, _ := reader.ReadString('\n')
	familyName = strings.TrimSpace(familyName)
	if familyName == "" {
		fmt.Println("Error: Family name is required")
		return
	}

	// State
	fmt.Print("Enter State (default TN): ")
	state, _ := reader.ReadString('\n')
	state = strings.TrimSpace(state)
	if state == "" {
		state = "TN"
	}

	// Guardian name
	fmt.Print("Enter Guardian Name: ")
	guardianName, _ := reader.ReadString('\n')
	guardianName = strings.TrimSpace(guardianName)
	if guardianName == "" {
		fmt.Println("Error: Guardian name is required")
		return
	}

	// Email
	fmt.Print("Enter Guardian Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	family := &model.Family{Name: familyName, State: state}
	if err := familyRepo.Create(ctx, family); err != nil {
		log.Fatal().Err(err).Msg("Failed to create family")
	}

	guardian := &model.Guardian{
		FamilyID:     family.ID,
		Name:         guardianName,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := guardianRepo.Create(ctx, guardian); err != nil {
		log.Fatal().Err(err).Msg("Failed to create guardian")
	}

	fmt.Printf("\nSuccess! Family '%s' created with ID %d, guardian '%s' (%s) with ID %d\n",
		family.Name, family.ID, guardian.Name, guardian.Email, guardian.ID)
}
