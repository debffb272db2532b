package bootstrap

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	authinadapter "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/adapter/in"
	authoutadapter "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/adapter/out"
	authin "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/port/in"
	authservice "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/service"
	authusecase "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/auth/usecase"
	feedsinadapter "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/adapter/in"
	feedsoutadapter "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/adapter/out"
	feedsin "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/port/in"
	feedsservice "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/service"
	feedsusecase "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/feeds/usecase"
	knowledgeinadapter "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/adapter/in"
	knowledgeoutadapter "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/adapter/out"
	knowledgein "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/port/in"
	knowledgeservice "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/service"
	knowledgeusecase "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/knowledge/usecase"
	reportsinadapter "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/adapter/in"
	reportsoutadapter "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/adapter/out"
	reportsin "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/port/in"
	reportsservice "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/service"
	reportsusecase "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/reports/usecase"
	searchinadapter "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/adapter/in"
	searchoutadapter "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/adapter/out"
	searchin "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/port/in"
	searchservice "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/service"
	searchusecase "github.com/CloudAceEmma/xu-ai-news-rag/internal/modules/search/usecase"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/config"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/logging"
	"github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/rest"
	uiapp "github.com/CloudAceEmma/xu-ai-news-rag/internal/ui/app"
)

// App wires the whole client together: one REST client, one token store,
// one usecase per module, plus the CLI handlers the commands call into.
type App struct {
	AuthCLI      authinadapter.CLIHandler
	KnowledgeCLI knowledgeinadapter.CLIHandler
	FeedsCLI     feedsinadapter.CLIHandler
	SearchCLI    searchinadapter.CLIHandler
	ReportsCLI   reportsinadapter.CLIHandler

	Auth      authin.Usecase
	Knowledge knowledgein.Usecase
	Feeds     feedsin.Usecase
	Search    searchin.Usecase
	Reports   reportsin.Usecase

	Logger *zap.Logger
}

func New(cfg config.Config) (*App, error) {
	logger := logging.New(cfg.LogPath)

	tokens := authoutadapter.NewFileTokenStore(cfg.TokenPath())
	client := rest.NewClient(cfg.APIBaseURL, tokens)

	authUC := authusecase.NewInteractor(authservice.NewAuthService(tokens, authoutadapter.NewRestAPI(client)))
	knowledgeUC := knowledgeusecase.NewInteractor(knowledgeservice.NewKnowledgeService(knowledgeoutadapter.NewRestAPI(client)))
	feedsUC := feedsusecase.NewInteractor(feedsservice.NewFeedService(feedsoutadapter.NewRestAPI(client)))
	searchUC := searchusecase.NewInteractor(searchservice.NewSearchService(searchoutadapter.NewRestAPI(client)))
	reportsUC := reportsusecase.NewInteractor(reportsservice.NewReportService(reportsoutadapter.NewRestAPI(client)))

	return &App{
		AuthCLI:      authinadapter.NewCLIHandler(authUC),
		KnowledgeCLI: knowledgeinadapter.NewCLIHandler(knowledgeUC),
		FeedsCLI:     feedsinadapter.NewCLIHandler(feedsUC),
		SearchCLI:    searchinadapter.NewCLIHandler(searchUC),
		ReportsCLI:   reportsinadapter.NewCLIHandler(reportsUC),
		Auth:         authUC,
		Knowledge:    knowledgeUC,
		Feeds:        feedsUC,
		Search:       searchUC,
		Reports:      reportsUC,
		Logger:       logger,
	}, nil
}

func RunTUI(app *App) error {
	defer app.Logger.Sync()
	model := uiapp.NewModel(app.Auth, app.Search, app.Knowledge, app.Feeds, app.Reports, app.Logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
