package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	hookinadapter "offlinewins/internal/modules/hook/adapter/in"
	hookoutadapter "offlinewins/internal/modules/hook/adapter/out"
	hookservice "offlinewins/internal/modules/hook/service"
	hookusecase "offlinewins/internal/modules/hook/usecase"
	insightsinadapter "offlinewins/internal/modules/insights/adapter/in"
	insightsoutadapter "offlinewins/internal/modules/insights/adapter/out"
	insightsservice "offlinewins/internal/modules/insights/service"
	insightsusecase "offlinewins/internal/modules/insights/usecase"
	profileinadapter "offlinewins/internal/modules/profile/adapter/in"
	profileoutadapter "offlinewins/internal/modules/profile/adapter/out"
	profileservice "offlinewins/internal/modules/profile/service"
	profileusecase "offlinewins/internal/modules/profile/usecase"
	reflectioninadapter "offlinewins/internal/modules/reflection/adapter/in"
	reflectionoutadapter "offlinewins/internal/modules/reflection/adapter/out"
	reflectionservice "offlinewins/internal/modules/reflection/service"
	reflectionusecase "offlinewins/internal/modules/reflection/usecase"
	sessioninadapter "offlinewins/internal/modules/session/adapter/in"
	sessionoutadapter "offlinewins/internal/modules/session/adapter/out"
	sessionservice "offlinewins/internal/modules/session/service"
	sessionusecase "offlinewins/internal/modules/session/usecase"
	"offlinewins/internal/platform/calendar"
	"offlinewins/internal/platform/clock"
	"offlinewins/internal/platform/config"
	"offlinewins/internal/platform/id"
	"offlinewins/internal/platform/kv"
	"offlinewins/internal/platform/logger"
	uiapp "offlinewins/internal/ui/app"
)

type App struct {
	SessionCLI    sessioninadapter.CLIHandler
	ProfileCLI    profileinadapter.CLIHandler
	InsightsCLI   insightsinadapter.CLIHandler
	ReflectionCLI reflectioninadapter.CLIHandler
	HookCLI       hookinadapter.CLIHandler
	Clock         clock.Clock

	store kv.Store
}

func New(cfg config.Config) (*App, error) {
	return NewWithClock(cfg, clock.SystemClock{})
}

// NewWithClock is New with every module reading time from clk.
func NewWithClock(cfg config.Config, clk clock.Clock) (*App, error) {
	if err := logger.Init(logger.Config{Debug: cfg.Debug, Dir: cfg.LogDir}); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	store, err := kv.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return wire(cfg, store, clk), nil
}

func wire(cfg config.Config, store kv.Store, clk clock.Clock) *App {
	hookUC := hookusecase.NewInteractor(hookservice.NewHookService(
		hookoutadapter.NewYAMLManifestStore(cfg.HooksPath),
		hookoutadapter.NewGRPCHost(cfg.Debug),
	))
	notifier := sessionoutadapter.NewHookNotifier(clk, hookUC)

	sessionStore := sessionoutadapter.NewKVSessionStore(store)
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, id.UUID{}, sessionStore, cfg.SessionMaxMinutes),
		sessionStore,
		sessionoutadapter.NewKVActiveSessionStore(store),
		sessionusecase.Options{
			Exporter:      sessionoutadapter.NewMarkdownExporter(),
			Notifier:      notifier,
			ReplaceActive: cfg.OnConflict == config.ConflictReplace,
		},
	)

	profileUC := profileusecase.NewInteractor(profileservice.NewProfileService(
		clk,
		profileoutadapter.NewKVSettingsStore(store),
		profileoutadapter.NewKVWiper(store),
	))

	overrides := reflectionoutadapter.NewKVOverrideStore(store)
	dismissed := reflectionoutadapter.NewKVDismissedStore(store)
	reflectionUC := reflectionusecase.NewInteractor(
		reflectionservice.NewReflectionService(clk, overrides, dismissed, reflectionoutadapter.NewSessionModuleSource(sessionUC)),
		overrides,
		dismissed,
	)

	insightsUC := insightsusecase.NewInteractor(insightsservice.NewInsightsService(
		clk,
		insightsoutadapter.NewSessionModuleSource(sessionUC),
		insightsoutadapter.NewProfileModuleSource(profileUC),
		insightsoutadapter.NewReflectionModuleSource(reflectionUC),
	))
	notifier.WatchGoals(insightsUC)

	return &App{
		SessionCLI:    sessioninadapter.NewCLIHandler(sessionUC),
		ProfileCLI:    profileinadapter.NewCLIHandler(profileUC),
		InsightsCLI:   insightsinadapter.NewCLIHandler(insightsUC),
		ReflectionCLI: reflectioninadapter.NewCLIHandler(reflectionUC),
		HookCLI:       hookinadapter.NewCLIHandler(hookUC),
		Clock:         clk,
		store:         store,
	}
}

// Today is the local date of the app clock.
func (a *App) Today() string {
	return calendar.DateOf(a.Clock.Now())
}

func (a *App) Close() error {
	return a.store.Close()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SessionCLI, app.ProfileCLI, app.InsightsCLI, app.ReflectionCLI, app.HookCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
