package main

import (
	"context"
	"flag"
	"os"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"docmint/src/pkg/config"
	"docmint/src/pkg/docgen"
	"docmint/src/pkg/email"
	"docmint/src/pkg/render"
	"docmint/src/pkg/rows"
	"docmint/src/pkg/store"
	"docmint/src/pkg/util"
)

/*
main runs one generation batch from tabular input.

-workbook takes an XLSX file with "Invoices" and "Receipts" sheets;
-invoices / -receipts take per-kind CSV files instead. Either way each
sheet/file starts with a header row (date, number, client, amount,
description). One PDF per valid row lands in the output directory; failures
become diagnostics, never aborts.
*/
func main() {
	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	// Program-specific flags.
	workbookPath := flag.String("workbook", "", "XLSX workbook with 'Invoices' and 'Receipts' sheets.")
	invoicesPath := flag.String("invoices", "", "CSV file with invoice rows.")
	receiptsPath := flag.String("receipts", "", "CSV file with receipt rows.")
	outputDir := flag.String("out", "", "Output directory. Defaults to the configured one.")
	templateDir := flag.String("templates", "", "Template directory. Defaults to the configured one.")
	strict := flag.Bool("strict", false, "Reject rows with unparseable dates or amounts instead of defaulting.")
	emailTo := flag.String("email-to", "", "Comma-separated recipients to mail the outcome to.")

	flag.Parse()
	config.InitializeConfig(*configPath)

	generatorCfg := config.Cfg.Generator
	if *outputDir != "" {
		generatorCfg.OutputDir = *outputDir
	}
	if *templateDir != "" {
		generatorCfg.TemplateDir = *templateDir
	}
	if *strict {
		generatorCfg.Strict = true
	}

	util.RequireOneOf(
		util.NamedStringFlag(workbookPath, "--workbook"),
		util.NamedStringFlag(invoicesPath, "--invoices"),
		util.NamedStringFlag(receiptsPath, "--receipts"),
	)

	request, e := loadRequest(*workbookPath, *invoicesPath, *receiptsPath)
	e.QuitIf("error")

	location, e := generatorCfg.LoadLocation()
	e.QuitIf("error")

	renderer, e := render.New()
	e.QuitIf("error")
	defer renderer.Close()

	localStore, e := store.NewLocal(generatorCfg.OutputDir)
	e.QuitIf("error")

	generator := &docgen.Generator{
		Renderer:       renderer,
		Store:          localStore,
		TemplateDir:    generatorCfg.TemplateDir,
		Location:       location,
		CurrencySymbol: generatorCfg.CurrencySymbol,
		Strict:         generatorCfg.Strict,
		RenderTimeout:  generatorCfg.RenderTimeout(),
		InjectCSS:      generatorCfg.InjectPageCSS,
		PageMarginMM:   generatorCfg.PageMarginMM,
	}

	outcome := generator.Generate(context.Background(), request)

	for _, message := range outcome.Messages {
		tl.Log(tl.Warning, palette.PurpleBold, "%s", message)
	}
	for _, name := range outcome.Generated {
		tl.Log(tl.Info1, palette.Green, "Generated '%s'", localStore.Path(name))
	}

	if e := store.WriteManifest(localStore.Dir, outcome.Generated, outcome.Messages); e != nil {
		tl.Log(tl.Warning, palette.YellowBold, "Could not write batch manifest: '%s'", e)
	}

	if *emailTo != "" && len(outcome.Generated) > 0 {
		provider := email.Provider(config.Cfg.Email.Provider)
		config.CheckIfEnvVarsPresent(email.RequiredEnvVars(provider)...)
		recipients := strings.Split(*emailTo, ",")
		e := email.SendBatchOutcome(
			context.Background(), provider, config.Cfg.Email.Sender, recipients,
			outcome.Generated, outcome.Messages,
			func(name string) (data []byte, e *xerr.Error) {
				path := localStore.Path(name)
				data, err := os.ReadFile(path)
				if err != nil {
					e = xerr.NewError(err, "read generated document", path)
					return
				}
				return data, nil
			},
		)
		e.QuitIf("error")
	}

	tl.Log(
		tl.Notice, palette.GreenBold, "Done. Generated: '%d', diagnostics: '%d'",
		len(outcome.Generated), len(outcome.Messages),
	)
}

func loadRequest(workbookPath string, invoicesPath string, receiptsPath string) (request docgen.BatchRequest, e *xerr.Error) {
	if workbookPath != "" {
		request.Invoices, request.Receipts, e = rows.FromXLSX(workbookPath)
		return
	}
	if invoicesPath != "" {
		request.Invoices, e = rows.FromCSV(invoicesPath)
		if e != nil {
			return
		}
	}
	if receiptsPath != "" {
		request.Receipts, e = rows.FromCSV(receiptsPath)
	}
	return
}
