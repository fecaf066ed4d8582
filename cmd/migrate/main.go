package main

import (
	"log"
	"os"

	"lifemind-be/internal/model"
	"lifemind-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Reminder{},
		&model.Priority{},
		&model.Task{},
		&model.Meeting{},
		&model.ConversationTurn{},
		&model.VoiceRecording{},
		&model.NotificationType{},
		&model.Notification{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Seed the notification type registry (idempotent)
	log.Println("Step 3: Seeding notification types...")

	seedSQL := []string{
		`INSERT INTO notification_types (code, display_name, template, target_type, is_active)
		 VALUES ('REMINDER_CREATED', 'Reminder Added', 'Reminder set: {text} on {date} at {time}', 'SELF', true)
		 ON CONFLICT (code) DO NOTHING;`,
		`INSERT INTO notification_types (code, display_name, template, target_type, is_active)
		 VALUES ('REMINDER_DUE', 'Reminder Due', '{text} is due now ({date} {time})', 'SELF', true)
		 ON CONFLICT (code) DO NOTHING;`,
		`INSERT INTO notification_types (code, display_name, template, target_type, is_active)
		 VALUES ('PRIORITY_CREATED', 'Priority Added', 'Priority added: {text}', 'SELF', true)
		 ON CONFLICT (code) DO NOTHING;`,
		`INSERT INTO notification_types (code, display_name, template, target_type, is_active)
		 VALUES ('TASK_CREATED', 'Task Added', 'Task added: {text}', 'SELF', true)
		 ON CONFLICT (code) DO NOTHING;`,
		`INSERT INTO notification_types (code, display_name, template, target_type, is_active)
		 VALUES ('MEETING_CREATED', 'Meeting Scheduled', 'Meeting scheduled: {text} on {date} at {time}', 'SELF', true)
		 ON CONFLICT (code) DO NOTHING;`,
		`INSERT INTO notification_types (code, display_name, template, target_type, is_active)
		 VALUES ('SYSTEM_BROADCAST', 'Announcement', '{message}', 'BROADCAST', true)
		 ON CONFLICT (code) DO NOTHING;`,
	}

	for _, sql := range seedSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to seed notification type: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
