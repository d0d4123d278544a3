package container

import (
	"log/slog"

	"github.com/Azhar512/tassiecar/internal/config"
	"github.com/Azhar512/tassiecar/internal/models"
	"github.com/Azhar512/tassiecar/internal/services"
	"github.com/supabase-community/supabase-go"
)

// Container holds all application dependencies. The Supabase client is
// constructed once and injected by reference everywhere it is needed.
type Container struct {
	Logger         *slog.Logger
	Config         *config.Config
	SupabaseClient *supabase.Client

	VehicleService *services.VehicleService
	BookingService *services.BookingService
	MessageService *services.MessageService
	AuthService    *services.AuthService
	WizardStore    *services.WizardStore
}

// NewContainer wires repositories and services. With SimulateLatency on,
// every repository is wrapped in the artificial-delay facade so loading
// states stay observable during development.
func NewContainer(logger *slog.Logger, cfg *config.Config, supabaseClient *supabase.Client) *Container {
	supa := models.SupabaseNewRepo(supabaseClient)

	var (
		vehicleRepo models.VehicleRepo = supa
		bookingRepo models.BookingRepo = supa
		messageRepo models.MessageRepo = supa
	)
	if cfg.SimulateLatency {
		vehicleRepo = models.NewSimulatedVehicleRepo(vehicleRepo)
		bookingRepo = models.NewSimulatedBookingRepo(bookingRepo)
		messageRepo = models.NewSimulatedMessageRepo(messageRepo)
	}

	return &Container{
		Logger:         logger,
		Config:         cfg,
		SupabaseClient: supabaseClient,
		VehicleService: services.NewVehicleService(vehicleRepo),
		BookingService: services.NewBookingService(bookingRepo, vehicleRepo),
		MessageService: services.NewMessageService(messageRepo),
		AuthService:    services.NewAuthService(supa),
		WizardStore:    services.NewWizardStore(),
	}
}
