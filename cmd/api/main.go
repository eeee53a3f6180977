package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/yasumitsu/gurps-manager/core"
	"github.com/yasumitsu/gurps-manager/x/util"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version      = "unknown"
	buildMachine = "unknown"
	buildTime    = "unknown"
)

func main() {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("GURPS Manager %s starting...", version))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true

	config := util.Config{}
	configPath := os.Getenv("GURPS_MANAGER_CONFIG")
	if configPath == "" {
		configPath = "/etc/gurps-manager/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
	}

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "gurps-manager/api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "gurpsapi",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	// Migrate the schema
	slog.Info("start migrate")
	db.AutoMigrate(
		&core.Campaign{},
		&core.SkillSet{},
		&core.Character{},
		&core.Trait{},
		&core.Skill{},
		&core.CharacterSkill{},
		&core.Spell{},
		&core.CharacterSpell{},
		&core.Item{},
		&core.Possession{},
		&core.HitLocation{},
	)

	campaignService := SetupCampaignService(db)
	campaignHandler := SetupCampaignHandler(db)
	skillsetService := SetupSkillsetService(db)
	skillsetHandler := SetupSkillsetHandler(db)
	skillService := SetupSkillService(db)
	skillHandler := SetupSkillHandler(db)
	spellService := SetupSpellService(db)
	spellHandler := SetupSpellHandler(db)
	itemService := SetupItemService(db)
	itemHandler := SetupItemHandler(db)
	characterService := SetupCharacterService(db)
	characterHandler := SetupCharacterHandler(db)
	associationHandler := SetupAssociationHandler(db)

	apiV1 := e.Group("/api/v1")

	// campaign
	apiV1.POST("/campaign", campaignHandler.Create)
	apiV1.GET("/campaign/:id", campaignHandler.Get)
	apiV1.PUT("/campaign/:id", campaignHandler.Update)
	apiV1.DELETE("/campaign/:id", campaignHandler.Delete)
	apiV1.GET("/campaigns", campaignHandler.List)
	apiV1.GET("/campaign/:id/skillsets", campaignHandler.ListSkillSets)
	apiV1.PUT("/campaign/:id/skillsets/:skillset", campaignHandler.AttachSkillSet)
	apiV1.DELETE("/campaign/:id/skillsets/:skillset", campaignHandler.DetachSkillSet)
	apiV1.GET("/campaign/:id/characters", characterHandler.ListByCampaign)

	// skillset
	apiV1.POST("/skillset", skillsetHandler.Create)
	apiV1.GET("/skillset/:id", skillsetHandler.Get)
	apiV1.PUT("/skillset/:id", skillsetHandler.Update)
	apiV1.DELETE("/skillset/:id", skillsetHandler.Delete)
	apiV1.GET("/skillsets", skillsetHandler.List)
	apiV1.GET("/skillset/:id/skills", skillsetHandler.ListSkills)

	// skill
	apiV1.POST("/skill", skillHandler.Create)
	apiV1.GET("/skill/:id", skillHandler.Get)
	apiV1.PUT("/skill/:id", skillHandler.Update)
	apiV1.DELETE("/skill/:id", skillHandler.Delete)
	apiV1.GET("/skills", skillHandler.List)

	// spell
	apiV1.POST("/spell", spellHandler.Create)
	apiV1.GET("/spell/:id", spellHandler.Get)
	apiV1.PUT("/spell/:id", spellHandler.Update)
	apiV1.DELETE("/spell/:id", spellHandler.Delete)
	apiV1.GET("/spells", spellHandler.List)

	// item
	apiV1.POST("/item", itemHandler.Create)
	apiV1.GET("/item/:id", itemHandler.Get)
	apiV1.PUT("/item/:id", itemHandler.Update)
	apiV1.DELETE("/item/:id", itemHandler.Delete)
	apiV1.GET("/items", itemHandler.List)

	// character
	apiV1.POST("/character", characterHandler.Create)
	apiV1.GET("/character/:id", characterHandler.Get)
	apiV1.GET("/character/:id/sheet", characterHandler.GetSheet)
	apiV1.PUT("/character/:id", characterHandler.Update)
	apiV1.DELETE("/character/:id", characterHandler.Delete)
	apiV1.GET("/characters", characterHandler.List)

	// trait
	apiV1.POST("/character/:id/traits", characterHandler.CreateTrait)
	apiV1.GET("/character/:id/traits", characterHandler.ListTraits)
	apiV1.PUT("/trait/:id", characterHandler.UpdateTrait)
	apiV1.DELETE("/trait/:id", characterHandler.DeleteTrait)

	// hit location
	apiV1.POST("/character/:id/hitlocations", characterHandler.CreateHitLocation)
	apiV1.GET("/character/:id/hitlocations", characterHandler.ListHitLocations)
	apiV1.PUT("/hitlocation/:id", characterHandler.UpdateHitLocation)
	apiV1.DELETE("/hitlocation/:id", characterHandler.DeleteHitLocation)

	// associations
	apiV1.GET("/character/:id/skills", associationHandler.ListSkills)
	apiV1.PUT("/character/:id/skills/:skill", associationHandler.PutSkill)
	apiV1.DELETE("/character/:id/skills/:skill", associationHandler.DeleteSkill)
	apiV1.GET("/character/:id/spells", associationHandler.ListSpells)
	apiV1.PUT("/character/:id/spells/:spell", associationHandler.PutSpell)
	apiV1.DELETE("/character/:id/spells/:spell", associationHandler.DeleteSpell)
	apiV1.GET("/character/:id/items", associationHandler.ListPossessions)
	apiV1.PUT("/character/:id/items/:item", associationHandler.PutPossession)
	apiV1.DELETE("/character/:id/items/:item", associationHandler.DeletePossession)

	// misc
	apiV1.GET("/profile", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"siteName":    config.Manager.SiteName,
			"description": config.Manager.Description,
			"maintainer":  config.Manager.Maintainer,
			"version":     version,
			"buildInfo": echo.Map{
				"buildTime":    buildTime,
				"buildMachine": buildMachine,
			},
		})
	})
	e.GET("/health", func(c echo.Context) (err error) {
		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		return c.String(http.StatusOK, "ok")
	})

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gurps_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)

	go func() {
		counters := map[string]func(context.Context) (int64, error){
			"campaign":  campaignService.Count,
			"skillset":  skillsetService.Count,
			"skill":     skillService.Count,
			"spell":     spellService.Count,
			"item":      itemService.Count,
			"character": characterService.Count,
		}
		for {
			time.Sleep(15 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			for name, count := range counters {
				value, err := count(ctx)
				if err != nil {
					slog.Error(fmt.Sprintf("failed to count %s: %v", name, err))
					continue
				}
				resourceCountMetrics.WithLabelValues(name).Set(float64(value))
			}
			cancel()
		}
	}()

	e.GET("/metrics", echoprometheus.NewHandler())

	bind := config.Server.Bind
	if bind == "" {
		bind = ":8000"
	}
	e.Logger.Fatal(e.Start(bind))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
