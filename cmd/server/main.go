package main

import (
	"os"
	"time"

	"github.com/haatos/visual-ci/internal"
	"github.com/haatos/visual-ci/internal/handler"
	"github.com/haatos/visual-ci/internal/service"
	"github.com/haatos/visual-ci/internal/settings"
	"github.com/haatos/visual-ci/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	internal.InitializeConfiguration()
	if _, err := os.Stat(internal.DotEnvPath); err == nil {
		settings.ReadDotenv(internal.DotEnvPath)
	}
	settings.Settings = settings.NewSettings()

	cleanUpScheduler := service.NewScheduler()
	defer cleanUpScheduler.Shutdown()

	snapshots := store.NewSnapshotStore(time.Duration(internal.Config.SnapshotExpiresHours))
	snapshots.ScheduleDailyCleanUp(cleanUpScheduler)
	cleanUpScheduler.Start()

	editorSvc := service.NewEditorService()

	e := setupEcho()
	router := e.Group("")
	handler.SetupEditorRoutes(router, editorSvc, snapshots)
	handler.SetupConfigRoutes(router, snapshots)

	internal.GracefulShutdown(e, settings.Settings.Port)
}

func setupEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(
		middleware.CORSWithConfig(internal.GetCORSConfig()),
		middleware.RateLimiterWithConfig(internal.GetRateLimiterConfig()),
	)
	return e
}
