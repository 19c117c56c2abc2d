package main

import (
	"fmt"
	"os"

	"farmer-market/internal/config"
	market "farmer-market/internal/marketService"
	"farmer-market/internal/notification"
	"farmer-market/internal/realtime"
	"farmer-market/internal/repository"
	"farmer-market/internal/server"
	"farmer-market/internal/sms"
	"farmer-market/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}

	gateway := notification.NewGateway(buildSender(cfg))
	hub := realtime.NewHub()
	repo := repository.NewMemoryRepo()

	marketSvc := market.NewMarketService(repo, gateway, hub)
	interpreter := sms.NewInterpreter(marketSvc)

	router := server.SetupRouter(marketSvc, interpreter, hub)

	addr := ":" + cfg.Port
	fmt.Printf("Starting marketplace server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildSender returns a Twilio sender when credentials are configured, nil
// otherwise. A nil sender makes the notification gateway log-only.
func buildSender(cfg config.App) notification.Sender {
	if !cfg.TwilioConfigured() {
		utils.Warn("sms provider not configured; notifications will be logged only", nil)
		return nil
	}
	return &notification.TwilioSender{
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
		From:       cfg.TwilioPhoneNumber,
	}
}
