// Package main is the entrypoint for the pharmintel service: the data
// gateway, the multi-agent dispatcher, and the report endpoints in one
// process.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/pharmaxis/pharmintel/agents"
	"github.com/pharmaxis/pharmintel/components"
	"github.com/pharmaxis/pharmintel/dataset"
	"github.com/pharmaxis/pharmintel/internal/config"
	"github.com/pharmaxis/pharmintel/internal/server"
	"github.com/pharmaxis/pharmintel/report"
	"github.com/pharmaxis/pharmintel/tools"
	"github.com/pharmaxis/pharmintel/tools/gateway"
	"github.com/pharmaxis/pharmintel/tools/pubmed"
	"github.com/pharmaxis/pharmintel/tools/websearch"
	"github.com/pharmaxis/pharmintel/tools/webscraper"
)

const logPrefix = "cmd:pharmintel"

func main() {
	if err := run(); err != nil {
		log.Fatalf("pharmintel: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	slog.Info(fmt.Sprintf("%s - starting", logPrefix), "addr", cfg.Addr, "model", cfg.Model)

	store, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return err
	}

	engine := components.NewInstrumentedEngine(
		components.NewOpenAIEngine(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL),
	)
	client := gateway.NewClient(cfg.GatewayBaseURL)

	master := agents.NewMaster(
		agents.MasterCapabilities(
			agents.NewIqviaInsightsAgent(client, agentOptions(cfg, engine, "IQVIA Agent")...),
			agents.NewWebIntelligenceAgent(webCapabilities(cfg), agentOptions(cfg, engine, "Web Intelligence Agent")...),
			agents.NewEximTradeAgent(client, agentOptions(cfg, engine, "EXIM Trade Agent")...),
			agents.NewPatentLandscapeAgent(client, agentOptions(cfg, engine, "Patent Agent")...),
			agents.NewClinicalTrialsAgent(client, agentOptions(cfg, engine, "Clinical Trials Agent")...),
			agents.NewInternalKnowledgeAgent(client, agentOptions(cfg, engine, "Internal Knowledge Agent")...),
		),
		report.NewGenerator(cfg.ReportsDir),
		agentOptions(cfg, engine, "Master Agent")...,
	)

	return server.New(cfg.Addr, master, store, cfg.ReportsDir).Run()
}

// agentOptions merges the global reasoning defaults with the per-agent
// overrides from the agents file.
func agentOptions(cfg *config.Config, engine components.Engine, name string) []agents.Option {
	opts := []agents.Option{
		agents.WithEngine(engine),
		agents.WithModel(cfg.Model),
		agents.WithTemperature(cfg.Temperature),
		agents.WithMaxTokens(cfg.MaxTokens),
	}
	override := cfg.Agent(name)
	if override.Model != "" {
		opts = append(opts, agents.WithModel(override.Model))
	}
	if override.Temperature != 0 {
		opts = append(opts, agents.WithTemperature(override.Temperature))
	}
	if override.MaxTokens != 0 {
		opts = append(opts, agents.WithMaxTokens(override.MaxTokens))
	}
	if override.MaxIterations != 0 {
		opts = append(opts, agents.WithMaxIterations(override.MaxIterations))
	}
	if override.SystemPrompt != "" {
		opts = append(opts, agents.WithSystemPrompt(override.SystemPrompt))
	}
	return opts
}

// webCapabilities assembles the web intelligence toolset. Web search needs a
// configured metasearch instance; the literature search and the scraper are
// always on.
func webCapabilities(cfg *config.Config) []tools.Capability {
	caps := make([]tools.Capability, 0, 3)
	if cfg.SearxngBaseURL != "" {
		caps = append(caps, websearch.New(websearch.WithBaseURL(cfg.SearxngBaseURL)))
	}
	caps = append(caps, pubmed.New(), webscraper.New())
	return caps
}
