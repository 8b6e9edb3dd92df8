package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cdelavallette-lang/healthapp/config"
	httpDelivery "github.com/cdelavallette-lang/healthapp/internal/delivery/http"
	"github.com/cdelavallette-lang/healthapp/internal/infrastructure/store"
	"github.com/cdelavallette-lang/healthapp/internal/infrastructure/tables"
	"github.com/cdelavallette-lang/healthapp/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Nutrient Core v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Definition tables load once and stay read-only for the process
	// lifetime; a malformed table is fatal here rather than a
	// misclassification later.
	ruleTable, err := tables.LoadInteractionRules(cfg.Data.RulesPath)
	if err != nil {
		log.Fatalf("Failed to load interaction rules: %v", err)
	}
	biomarkers, err := tables.LoadBiomarkerDefinitions(cfg.Data.BiomarkersPath)
	if err != nil {
		log.Fatalf("Failed to load biomarker definitions: %v", err)
	}
	log.Printf("Tables loaded: %d interaction rules, %d biomarker definitions", len(ruleTable.Rules), len(biomarkers))

	recipeStore, err := store.NewSQLiteStore(cfg.Data.RecipeDBPath)
	if err != nil {
		log.Fatalf("Failed to open recipe store: %v", err)
	}
	defer recipeStore.Close()
	log.Printf("Recipe store: %s", cfg.Data.RecipeDBPath)

	analysisService := usecase.NewAnalysisService(ruleTable.Rules, ruleTable.CompletionFoods, biomarkers)

	handler := httpDelivery.NewHandler(analysisService, recipeStore)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
