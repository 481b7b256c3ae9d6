package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	pkg "github.com/rcee-dev/campusvoice/pkg/internal"
	"github.com/rcee-dev/campusvoice/pkg/internal/database"
	"github.com/rcee-dev/campusvoice/pkg/internal/http"
	"github.com/rcee-dev/campusvoice/pkg/internal/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString("  ____                                 __     __    _\n / ___|__ _ _ __ ___  _ __  _   _ ___ \\ \\   / /__ (_) ___ ___\n| |   / _` | '_ ` _ \\| '_ \\| | | / __| \\ \\ / / _ \\| |/ __/ _ \\\n| |__| (_| | | | | | | |_) | |_| \\__ \\  \\ V / (_) | | (_|  __/\n \\____\\__,_|_| |_| |_| .__/ \\__,_|___/   \\_/ \\___/|_|\\___\\___|\n                     |_|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("CampusVoice"), pkg.AppVersion)
	fmt.Printf("The campus complaint board and feedback poll service\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Make sure the default management account exists
	if err := services.SeedManagementAccount(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when seeding the management account.")
	}

	// Server
	http.NewServer()
	go http.Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
