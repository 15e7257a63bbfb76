package main

import (
	"log"
	"time"

	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	if _, err := services.InitCatalog(config.AllergenDataPath()); err != nil {
		log.Fatalf("failed to load allergen catalog: %v", err)
	}

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
		push = nil
	}
	services.InitAlertDeps(config.DB, hub, push)

	ocr, err := services.NewOCRService()
	if err != nil {
		log.Printf("server-side OCR disabled: %v", err)
		ocr = nil
	}
	gemini := services.NewGeminiService()
	scans := services.NewScanService(ocr, gemini)

	services.StartReminderLoop(time.Minute)

	r := routes.SetupRouter(routes.Deps{
		Hub:    hub,
		Push:   push,
		Scans:  scans,
		Gemini: gemini,
	})
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
