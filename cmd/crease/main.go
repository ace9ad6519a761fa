package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/asimraja/crease/internal/app"
	"github.com/asimraja/crease/internal/auth"
	"github.com/asimraja/crease/internal/logger"
)

var version = "dev"

// ANSI escape codes
const (
	reset  = "\033[0m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// printBanner displays the Crease logo
func printBanner() {
	logo := []string{
		`   ____                              `,
		`  / ___|_ __ ___  __ _ ___  ___      `,
		` | |   | '__/ _ \/ _` + "`" + ` / __|/ _ \     `,
		` | |___| | |  __/ (_| \__ \  __/     `,
		`  \____|_|  \___|\__,_|___/\___|     `,
	}
	fmt.Println()
	for _, line := range logo {
		fmt.Printf("  %s%s%s\n", cyan, line, reset)
	}
	fmt.Printf("  %sleague scoring and team balancing%s\n\n", yellow, reset)
}

func main() {
	port := flag.Int("port", 8081, "HTTP server port")
	dbPath := flag.String("db", "crease.db", "SQLite database path")
	masterPw := flag.String("masterpw", "", "Master admin password (auto-generated if not set)")
	adminPw := flag.String("adminpw", "", "Admin password (auto-generated if not set)")
	playerPw := flag.String("playerpw", "", "Player password (auto-generated if not set)")
	logLevel := flag.String("loglevel", "info", "Log level (debug, info, warn, error)")
	noBanner := flag.Bool("nobanner", false, "Skip the startup banner")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Crease - Cricket League Scoring System

Usage:
  crease [options]

Options:
  -port int       HTTP server port (default 8081)
  -db string      SQLite database path (default "crease.db")
  -masterpw str   Master admin password (auto-generated if not set)
  -adminpw str    Admin password (auto-generated if not set)
  -playerpw str   Player password (auto-generated if not set)
  -loglevel str   Log level: debug, info, warn, error (default "info")
  -nobanner       Skip the startup banner
  -version        Show version and exit
  -help           Show this help message

Examples:
  crease                             # Run on port 8081 with crease.db
  crease -port 8080                  # Run on port 8080
  crease -db /data/league.db         # Use custom database path
  crease -adminpw secret123          # Use specific admin password
  crease -port 80 -db prod.db        # Production example

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("crease %s\n", version)
		os.Exit(0)
	}

	if !*noBanner {
		printBanner()
	}

	// Passwords not given on the command line are generated and logged
	// at startup so the organizer can hand them out
	masterPassword := *masterPw
	if masterPassword == "" {
		masterPassword = auth.GeneratePassword()
	}
	adminPassword := *adminPw
	if adminPassword == "" {
		adminPassword = auth.GeneratePassword()
	}
	playerPassword := *playerPw
	if playerPassword == "" {
		playerPassword = auth.GeneratePassword()
	}
	sessionAuth := auth.New(masterPassword, adminPassword, playerPassword)

	appLog := logger.NewWithLevel(logger.ParseLevel(*logLevel))

	a, err := app.New(appLog, *dbPath, sessionAuth)
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	appLog.Info("Master admin password", "password", masterPassword)
	appLog.Info("Admin password", "password", adminPassword)
	appLog.Info("Player password", "password", playerPassword)

	addr := fmt.Sprintf(":%d", *port)
	if err := a.Run(addr); err != nil {
		log.Fatal(err)
	}
}
