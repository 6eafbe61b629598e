package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"kindlelink/config"
	"kindlelink/logger"
	"kindlelink/services/search"
	"kindlelink/services/shortener"
	"kindlelink/services/worker"
)

var rootCmd = &cobra.Command{
	Use:   "kindlelink <campaign-url>",
	Short: "Turn a Bookwalker campaign page into shortened Kindle search links",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(args[0])
	},
}

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v", err)
	}
}

func run(campaignURL string) {
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	searchClient, err := search.NewClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create search client")
	}
	bitly := shortener.NewBitly(cfg.BitlyToken)

	log.Info().
		Str("environment", cfg.Environment).
		Str("marketplace", searchClient.Marketplace()).
		Msg("Starting campaign processing")

	w := worker.NewWorker(cfg, searchClient, bitly, searchClient.Marketplace())
	if err := w.Run(campaignURL); err != nil {
		log.Error().Err(err).Msg("Campaign processing failed")
		return
	}

	log.Info().Msg("Done")
}
