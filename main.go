package main

import (
	"fmt"
	"log"
	"os"

	"github.com/abel-mekonn/pathviz-api/api"
	api_i "github.com/abel-mekonn/pathviz-api/api/i"
	solverapi "github.com/abel-mekonn/pathviz-api/api/solver"
	"github.com/abel-mekonn/pathviz-api/config"
	"github.com/abel-mekonn/pathviz-api/service"
	"github.com/abel-mekonn/pathviz-api/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	appLogger        *log.Logger
	runManager       i.RunManager
	solverController api_i.Controller
	router           *api.Router
)

func newLogger(name, color string) *log.Logger {
	return log.New(os.Stdout, fmt.Sprintf("%s[%s]%s ", color, name, config.ColorReset), log.LstdFlags)
}

func initRunManager() {
	var err error
	runManager, err = service.NewRunManager(&service.Config{
		MazeWidth:  config.Envs.MazeWidth,
		MazeHeight: config.Envs.MazeHeight,
		MazeSeed:   config.Envs.MazeSeed,
		Logger:     newLogger("SOLVER", config.ColorCyan),
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating run manager: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Run manager initialized", config.LogInfoColor, config.LogColorReset)
}

func initSolverController() {
	var err error
	solverController, err = solverapi.NewSolverController(runManager, solverapi.MazeDefaults{
		Width:  config.Envs.MazeWidth,
		Height: config.Envs.MazeHeight,
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating solver controller: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Solver controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{solverController},
	})
	appLogger.Printf("%s[INFO]%s Router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	gin.SetMode(config.Envs.GinMode)
	appLogger = newLogger("APP", config.ColorGreen)

	initRunManager()
	initSolverController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Printf("%s[ERROR]%s Starting server: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}
