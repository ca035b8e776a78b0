package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"docmint/src/pkg/config"
	"docmint/src/pkg/docgen"
	echomw "docmint/src/pkg/echo-middleware"
	"docmint/src/pkg/email"
	"docmint/src/pkg/render"
	"docmint/src/pkg/store"
)

/*
main serves the batch document-generation API.

POST /api/generate takes the two row arrays (invoice/receipt), runs the
batch, and answers with the outcome: filenames written plus diagnostics.
Generated files are served back under /output/. Optional bearer auth via
DOCMINT_API_BEARER_TOKEN; optional S3 mirroring and outcome email via the
config file.
*/
func main() {
	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")
	flag.Parse()
	config.InitializeConfig(*configPath)

	generatorCfg := config.Cfg.Generator

	location, e := generatorCfg.LoadLocation()
	e.QuitIf("error")

	renderer, e := render.New()
	e.QuitIf("error")
	defer renderer.Close()

	localStore, e := store.NewLocal(generatorCfg.OutputDir)
	e.QuitIf("error")

	var documentStore docgen.Store = localStore
	if config.Cfg.Store.S3Bucket != "" {
		s3Store, e := store.NewS3(config.Cfg.Store.S3Region, config.Cfg.Store.S3Bucket, config.Cfg.Store.S3Prefix)
		e.QuitIf("error")
		documentStore = store.Multi{localStore, s3Store}
		tl.Log(tl.Info, palette.Cyan, "Mirroring generated documents to S3 bucket '%s'", config.Cfg.Store.S3Bucket)
	}

	emailProvider := email.Provider(config.Cfg.Email.Provider)
	config.CheckIfEnvVarsPresent(email.RequiredEnvVars(emailProvider)...)

	generator := &docgen.Generator{
		Renderer:       renderer,
		Store:          documentStore,
		TemplateDir:    generatorCfg.TemplateDir,
		Location:       location,
		CurrencySymbol: generatorCfg.CurrencySymbol,
		Strict:         generatorCfg.Strict,
		RenderTimeout:  generatorCfg.RenderTimeout(),
		InjectCSS:      generatorCfg.InjectPageCSS,
		PageMarginMM:   generatorCfg.PageMarginMM,
	}

	srv := echo.New()
	srv.HideBanner = true
	srv.HidePort = true

	echomw.UpdateRateLimits(config.Cfg.Web.RateLimit, config.Cfg.Web.Burst)
	srv.Use(echomw.RouteAccessLoggerMiddleware)
	srv.Use(echomw.RateLimiterMiddleware)

	srv.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	srv.Static("/output", generatorCfg.OutputDir)

	api := srv.Group("/api")
	if echomw.BearerTokenConfigured() {
		tl.Log(tl.Info, palette.Cyan, "%s", "Bearer auth enabled on /api")
		api.Use(echomw.RequireBearerToken)
	}
	api.POST("/generate", handleGenerate(generator, localStore, emailProvider))

	address := fmt.Sprintf("%s:%d", config.Cfg.Web.Address, config.Cfg.Web.Port)
	tl.Log(
		tl.Notice, palette.BlueBold, "%s on '%s'. Output directory: '%s'",
		"Starting docmint web server", address, generatorCfg.OutputDir,
	)
	if err := srv.Start(address); err != nil {
		tl.Log(tl.Error, palette.RedBold, "Server stopped: '%s'", err)
		os.Exit(1)
	}
}

type generateRequest struct {
	docgen.BatchRequest
	EmailTo []string `json:"email_to,omitempty"`
}

type generateResponse struct {
	docgen.Outcome
	Emailed bool `json:"emailed,omitempty"`
}

func handleGenerate(generator *docgen.Generator, localStore *store.LocalStore, provider email.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		var request generateRequest
		if err := c.Bind(&request); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		outcome := generator.Generate(c.Request().Context(), request.BatchRequest)

		if e := store.WriteManifest(localStore.Dir, outcome.Generated, outcome.Messages); e != nil {
			tl.Log(tl.Warning, palette.YellowBold, "Could not write batch manifest: '%s'", e)
		}

		response := generateResponse{Outcome: outcome}
		if len(request.EmailTo) > 0 && len(outcome.Generated) > 0 {
			e := email.SendBatchOutcome(
				c.Request().Context(), provider, config.Cfg.Email.Sender, request.EmailTo,
				outcome.Generated, outcome.Messages,
				func(name string) ([]byte, *xerr.Error) { return readDocument(localStore, name) },
			)
			if e != nil {
				response.Messages = append(response.Messages, fmt.Sprintf("Email delivery failed: %s", e))
			} else {
				response.Emailed = true
			}
		}

		return c.JSON(http.StatusOK, response)
	}
}

func readDocument(localStore *store.LocalStore, name string) (data []byte, e *xerr.Error) {
	path := localStore.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		e = xerr.NewError(err, "read generated document", path)
		return
	}
	return data, nil
}
