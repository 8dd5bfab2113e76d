package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"i18ncheck/internal/adapters/report"
	"i18ncheck/internal/application"
	"i18ncheck/internal/config"
	"i18ncheck/internal/domain"
	"i18ncheck/internal/infrastructure/catalog"
	"i18ncheck/internal/infrastructure/grammar"
	"i18ncheck/internal/infrastructure/i18n"
)

// Exit codes: the CI gate keys off these.
const (
	exitOK     = 0
	exitIssues = 1
	exitFatal  = 2 // source locale unreadable, or startup failure
)

func main() {
	app := &cli.App{
		Name:  "i18ncheck",
		Usage: "validate locale JSON catalogs against the source locale",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Usage: "locales root directory (overrides LOCALES_DIR)"},
			&cli.StringFlag{Name: "source", Usage: "source locale (overrides SOURCE_LOCALE)"},
			&cli.BoolFlag{Name: "ci", Usage: "plain output + CI annotations (implied by the CI env var)"},
		},
		Action: run,
	}
	// Les erreurs ExitCoder (issues, source illisible) sont gérées par
	// urfave/cli lui-même ; il ne reste ici que les erreurs de démarrage.
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFatal)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}
	if dir := c.String("dir"); dir != "" {
		cfg.LocalesDir = dir
	}
	if source := c.String("source"); source != "" {
		cfg.SourceLocale = source
	}
	if c.Bool("ci") {
		cfg.CI = true
	}
	if cfg.CI {
		// Les annotations CI doivent rester en texte brut.
		color.NoColor = true
	}

	loader := catalog.NewLoader(cfg.LocalesDir)
	validator := application.NewValidator(loader, grammar.Parser{}, cfg.Namespaces)

	result, err := validator.Run(cfg.SourceLocale)
	if err != nil {
		return cli.Exit(fmt.Sprintf("fatal: %v", err), exitFatal)
	}

	translator := i18n.NewTranslator(cfg.ReportLocale)
	report.New(translator, loader, cfg.ReportLocale, cfg.CI).Render(os.Stdout, result)

	if domain.HasErrors(result.Issues) {
		return cli.Exit("", exitIssues)
	}
	return nil
}
