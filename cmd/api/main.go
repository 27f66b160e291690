package main

import (
	"clinicdesk/cmd/internal/config"
	"clinicdesk/cmd/internal/domain/memory"
	"clinicdesk/cmd/internal/domain/seed"
	"clinicdesk/cmd/internal/domain/sqlite"
	"clinicdesk/cmd/internal/domain/sqlite/repository"
	"clinicdesk/cmd/internal/logging"
	"clinicdesk/cmd/internal/routes"
	"clinicdesk/cmd/internal/service"
	"clinicdesk/cmd/internal/utils/clock"
	"clinicdesk/cmd/internal/utils/token"
	"clinicdesk/cmd/internal/utils/validators"
	"clinicdesk/cmd/internal/worker"
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type serveFlags struct {
	envFile           string
	port              string
	store             string
	reminderPeriod    time.Duration
	reminderThreshold time.Duration
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "clinicdesk",
		Short: "Clinic appointments, patient records and reminders over a JSON API.",
	}
	root.AddCommand(newServeCommand())
	return root
}

func newServeCommand() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the reminder worker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(envFiles(flags.envFile)...)
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg, &flags)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&flags.envFile, "env-file", "", "env file to load (default .env)")
	cmd.Flags().StringVar(&flags.port, "port", "", "port to listen on (PORT)")
	cmd.Flags().StringVar(&flags.store, "store", "", "store driver: memory or sqlite (STORE_DRIVER)")
	cmd.Flags().DurationVar(&flags.reminderPeriod, "reminder-period", 0, "interval between reminder sweeps (REMINDER_PERIOD)")
	cmd.Flags().DurationVar(&flags.reminderThreshold, "reminder-threshold", 0, "age before an appointment is auto reminded (REMINDER_THRESHOLD)")
	return cmd
}

func envFiles(path string) []string {
	if path == "" {
		return nil
	}
	return []string{path}
}

func applyFlags(cmd *cobra.Command, cfg *config.Config, flags *serveFlags) {
	if cmd.Flags().Changed("port") {
		cfg.Port = flags.port
	}
	if cmd.Flags().Changed("store") {
		cfg.StoreDriver = flags.store
	}
	if cmd.Flags().Changed("reminder-period") {
		cfg.ReminderPeriod = flags.reminderPeriod
	}
	if cmd.Flags().Changed("reminder-threshold") {
		cfg.ReminderThreshold = flags.reminderThreshold
	}
}

type repositories struct {
	appointments  service.AppointmentRepository
	records       service.RecordRepository
	notifications service.NotificationRepository
	users         service.UserRepository
}

func openRepositories(cfg *config.Config) (*repositories, error) {
	if cfg.StoreDriver == config.DriverMemory {
		return &repositories{
			appointments:  memory.NewAppointmentRepository(),
			records:       memory.NewRecordRepository(),
			notifications: memory.NewNotificationRepository(),
			users:         memory.NewUserRepository(),
		}, nil
	}

	db, err := sqlite.Init(cfg.SQLiteDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return &repositories{
		appointments:  repository.NewAppointmentRepository(db),
		records:       repository.NewRecordRepository(db),
		notifications: repository.NewNotificationRepository(db),
		users:         repository.NewUserRepository(db),
	}, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	e := echo.New()
	e.HideBanner = true
	logCloser := logging.Setup(cfg.Log, e)
	defer logCloser.Close()

	repos, err := openRepositories(cfg)
	if err != nil {
		return err
	}

	if cfg.SeedData {
		if err := seed.Load(repos.appointments, repos.records, repos.users); err != nil {
			return fmt.Errorf("failed to seed data: %w", err)
		}
	}

	clk := clock.New()
	validate := validators.New()
	tokens := token.NewIssuer(cfg.JWTSecret, cfg.JWTTTL, clk)

	// Getting services
	notifService := service.NewNotificationService(repos.notifications, clk)
	apptService := service.NewAppointmentService(repos.appointments, notifService, validate, clk)
	recordService := service.NewRecordService(repos.records)
	alertService := service.NewAlertService(repos.appointments, repos.records, clk)
	userService := service.NewUserService(repos.users, validate, tokens)

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))

	routes.Register(e, &routes.Handlers{
		Appointments: routes.NewAppointmentDefault(apptService),
		Records:      routes.NewRecordDefault(recordService),
		Dashboard:    routes.NewDashboardDefault(notifService, alertService),
		Users:        routes.NewUserDefault(userService, tokens),
	})

	reminders := worker.NewReminderWorker(apptService, clk, cfg.ReminderPeriod, cfg.ReminderThreshold)
	reminders.Start()
	defer reminders.Stop(5 * time.Second)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("clinicdesk listening on %s (store=%s)", cfg.Address(), cfg.StoreDriver)
		errCh <- e.Start(cfg.Address())
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
