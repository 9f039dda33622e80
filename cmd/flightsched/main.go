// Command flightsched manages flight schedule entries in a local SQLite file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blackeagles/internal/console"
	"blackeagles/internal/database"
	"blackeagles/internal/repository/sqlite"
	"blackeagles/internal/service"
	"blackeagles/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	dbPath := flag.String("db", database.DefaultSQLitePath, "SQLite database file")
	flag.Parse()

	_ = logger.SetLevel("warn")
	defer logger.L.Sync()

	db, err := database.OpenSQLite(*dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "데이터베이스 연결에 실패했습니다.")
		logger.L.Error("open sqlite failed", zap.String("path", *dbPath), zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := sqlite.Migrate(ctx, db); err != nil {
		fmt.Fprintln(os.Stderr, "데이터베이스 초기화에 실패했습니다.")
		logger.L.Error("migrate sqlite failed", zap.Error(err))
		os.Exit(1)
	}

	// A blocked stdin read cannot be cancelled, so an interrupt ends the process here.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
		fmt.Println("\n\n프로그램이 중단되었습니다.")
		db.Close()
		os.Exit(0)
	}()

	schedules := service.NewScheduleService(sqlite.NewScheduleStore(db), time.Local)
	if err := console.NewSession(schedules, os.Stdin, os.Stdout).Run(ctx); err != nil {
		logger.L.Error("session ended with error", zap.Error(err))
	}
}
