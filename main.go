package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"quote-ui/config"
	"quote-ui/database"
	"quote-ui/database/model"
	"quote-ui/logger"
	"quote-ui/web"
	"quote-ui/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			_ = server.Stop()
			_ = database.CloseDB()
			logger.CloseLogger()
			return
		}
	}
}

func showSetting() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	userService := service.UserService{}
	admin, err := userService.GetByEmail("admin@gmail.com")
	if err != nil {
		fmt.Println("get admin user failed:", err)
		return
	}
	if admin.Role != model.RoleAdmin {
		fmt.Println("default admin account was repurposed, check the users table")
		return
	}
	fmt.Println("current panel settings as follows:")
	fmt.Println("email:", admin.Email)
	fmt.Println("password:", admin.Password)
	fmt.Println("port:", config.GetPort())
}

func main() {
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use: "quote-ui",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Inspect settings",
	}

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the seeded admin credentials and port",
		Run: func(cmd *cobra.Command, args []string) {
			showSetting()
		},
	}

	settingCmd.AddCommand(showCmd)
	rootCmd.AddCommand(runCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
