package main

import (
	"embed"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	dbsqlite "locheck/internal/adapters/db/sqlite"
	"locheck/internal/adapters/llm/httpclient"
	jliffparser "locheck/internal/adapters/parser/jliff"
	tagmapparser "locheck/internal/adapters/parser/tagmap"
	apiapp "locheck/internal/api/app"
	"locheck/internal/ports"
	"locheck/internal/usecase/importer"
	jobsusecase "locheck/internal/usecase/jobs"
	"locheck/internal/usecase/normalizer"
	"locheck/internal/usecase/reviewer"
	"locheck/internal/usecase/suggester"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	app := NewApp()

	db, err := dbsqlite.Init("data/locheck.db")
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	projectRepo := dbsqlite.NewProjectRepo(db)
	fileRepo := dbsqlite.NewFileRepo(db)
	reviewRepo := dbsqlite.NewReviewRepo(db)
	jobRepo := dbsqlite.NewJobRepo(db)
	settingsRepo := dbsqlite.NewSettingsRepo(db)

	jliff := jliffparser.New()
	tagmap := tagmapparser.New()
	engine := normalizer.New()

	importSvc := importer.New(fileRepo, jliff, tagmap)
	reviewSvc := reviewer.New(reviewer.Deps{
		Files:   fileRepo,
		Reviews: reviewRepo,
		Jliff:   jliff,
		TagMap:  tagmap,
		Engine:  engine,
	})
	suggestSvc := suggester.New(suggester.Deps{
		Settings: settingsRepo,
		BuildProvider: func(baseURL, apiKey, model string) ports.Provider {
			return httpclient.New(baseURL, apiKey, model)
		},
	})

	runner := jobsusecase.NewRunner(jobsusecase.Deps{Jobs: jobRepo, Files: fileRepo, Review: reviewSvc})
	app.SetRunner(runner)

	werr := wails.Run(&options.App{
		Title:  "locheck",
		Width:  1200,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		Bind: []interface{}{
			app,
			apiapp.NewProjectAPI(projectRepo),
			apiapp.NewFileAPI(fileRepo),
			apiapp.NewImportAPI(importSvc),
			apiapp.NewReviewAPI(reviewSvc, reviewRepo),
			apiapp.NewJobsAPI(runner, jobRepo),
			apiapp.NewSuggestAPI(suggestSvc, reviewSvc, fileRepo, projectRepo),
			apiapp.NewSettingsAPI(settingsRepo),
		},
	})
	if werr != nil {
		log.Fatal().Err(werr).Msg("run app")
	}
}
