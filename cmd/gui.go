package cmd

import (
	"os/signal"
	"syscall"

	"atvremote/res"
	"atvremote/ui"
	"atvremote/ui/util"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runGUI(_ *cobra.Command, _ []string) error {
	cfg := resolveConfig()
	logger := setupLogger(cfg)
	defer logger.Sync()

	fyneApp := app.NewWithID(res.AppID)
	fyneApp.SetIcon(fyne.NewStaticResource("icon.svg", res.AppIcon))

	myApp, err := startApp(cfg)
	if err != nil {
		zap.S().Errorw("fatal startup error", "error", err)
		return err
	}

	mainWindow := ui.NewMainWindow(fyneApp, res.AppName, res.DisplayName, myApp)
	mainWindow.SetMaster()
	logrus.AddHook(mainWindow.Logs.Hook())
	myApp.OnExit = util.FyneDoFunc(mainWindow.Quit)

	sigCtx, stop := signal.NotifyContext(myApp.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-sigCtx.Done()
		if myApp.Context().Err() == nil {
			zap.S().Info("signal received, quitting")
			_ = myApp.Quit()
		}
	}()

	mainWindow.StartPolling(myApp.Context(), myApp.Config.PollInterval())
	mainWindow.ShowAndRun()

	zap.S().Info("Running shutdown tasks...")
	myApp.Shutdown()
	zap.S().Info("shutdown complete")
	return nil
}
