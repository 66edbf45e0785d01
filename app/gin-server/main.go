package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/hojadevida/config"
	"github.com/yoockh/hojadevida/internal/api/handlers"
	"github.com/yoockh/hojadevida/internal/api/middleware"
	"github.com/yoockh/hojadevida/internal/api/routes"
	"github.com/yoockh/hojadevida/internal/cache"
	"github.com/yoockh/hojadevida/internal/cvpdf"
	"github.com/yoockh/hojadevida/internal/forms"
	"github.com/yoockh/hojadevida/internal/logger"
	"github.com/yoockh/hojadevida/internal/models"
	mongorepo "github.com/yoockh/hojadevida/internal/repositories/mongo"
	pgrepo "github.com/yoockh/hojadevida/internal/repositories/postgres"
	"github.com/yoockh/hojadevida/internal/services"
	"github.com/yoockh/hojadevida/internal/storage"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()
	cfg := config.LoadApp()

	// Init PostgreSQL
	if err := config.InitPostgres(); err != nil {
		log.WithError(err).Fatal("PostgreSQL init error")
	}
	if err := config.Migrate(config.PostgresDB); err != nil {
		log.WithError(err).Fatal("schema migration failed")
	}
	log.Info("PostgreSQL connected")

	// Init Redis (optional)
	var profileCache cache.Cache = cache.Nop{}
	switch err := config.InitRedis(); {
	case err == nil:
		profileCache = cache.NewRedisCache(config.RedisClient, "hojadevida:")
		log.Info("Redis connected")
	case errors.Is(err, config.ErrNotConfigured):
		log.Info("Redis not configured, profile cache disabled")
	default:
		log.WithError(err).Fatal("Redis init error")
	}

	// Init MongoDB (optional)
	var exports mongorepo.ExportRepository
	switch err := config.InitMongo(); {
	case err == nil:
		if err := config.EnsureMongoIndexes(); err != nil {
			log.WithError(err).Fatal("MongoDB index setup failed")
		}
		exports = mongorepo.NewExportRepo(config.MongoDatabase(), cfg.ExportHistoryTTL)
		log.Info("MongoDB connected")
	case errors.Is(err, config.ErrNotConfigured):
		log.Info("MongoDB not configured, export history disabled")
	default:
		log.WithError(err).Fatal("MongoDB init error")
	}

	ctx := context.Background()
	store, err := storage.New(ctx, storage.Options{
		Backend:        storage.Backend(cfg.StorageBackend),
		LocalRoot:      cfg.MediaRoot,
		GCSBucket:      cfg.GCSBucket,
		MinioEndpoint:  cfg.MinioEndpoint,
		MinioAccessKey: cfg.MinioAccessKey,
		MinioSecretKey: cfg.MinioSecretKey,
		MinioBucket:    cfg.MinioBucket,
		MinioUseSSL:    cfg.MinioUseSSL,
	})
	if err != nil {
		log.WithError(err).Fatal("storage init error")
	}
	defer store.Close()

	// Local uploads are read straight from disk; remote backends are read
	// through the store, with MEDIA_ROOT still checked first.
	genOpts := cvpdf.Options{
		MediaRoot:     cfg.MediaRoot,
		FetchTimeout:  cfg.FetchTimeout,
		MaxFetchBytes: cfg.FetchMaxBytes,
	}
	if local, ok := store.(*storage.LocalStore); ok {
		genOpts.MediaRoot = local.Root()
	} else {
		genOpts.Remote = store
	}
	generator := cvpdf.NewGenerator(genOpts, log)

	if err := forms.RegisterGinValidators(); err != nil {
		log.WithError(err).Fatal("validator setup failed")
	}

	db := config.PostgresDB
	profileRepo := pgrepo.NewProfileRepo(db)
	expRepo := pgrepo.NewWorkExperienceRepo(db)
	recRepo := pgrepo.NewRecognitionRepo(db)
	courseRepo := pgrepo.NewCourseRepo(db)
	academicRepo := pgrepo.NewAcademicProductRepo(db)

	fileSvc := services.NewFileService(store)
	profileSvc := services.NewProfileService(profileRepo, fileSvc, profileCache, cfg.ProfileCacheTTL, log)
	resumeSvc := services.NewResumeService(services.ResumeSources{
		Profiles:         profileRepo,
		Experiences:      expRepo,
		Recognitions:     recRepo,
		Courses:          courseRepo,
		AcademicProducts: academicRepo,
	}, generator, exports, log)

	phone := forms.DefaultPhoneField()
	deps := routes.Deps{
		JWT: middleware.JWTConfig{
			Secret:   cfg.JWTSecret,
			Issuer:   cfg.JWTIssuer,
			Audience: cfg.JWTAudience,
		},
		Profile: handlers.NewProfileHandler(profileSvc, phone),
		CV:      handlers.NewCVHandler(resumeSvc),
		Choices: handlers.NewChoicesHandler(phone),
		Records: map[string]handlers.RecordRoutes{
			routes.PathExperiences: handlers.NewRecordHandler[models.WorkExperience, forms.WorkExperienceForm](
				"Experience", services.NewRecordService[models.WorkExperience]("experience", profileRepo, expRepo, fileSvc), true),
			routes.PathRecognitions: handlers.NewRecordHandler[models.Recognition, forms.RecognitionForm](
				"Recognition", services.NewRecordService[models.Recognition]("recognition", profileRepo, recRepo, fileSvc), true),
			routes.PathCourses: handlers.NewRecordHandler[models.CompletedCourse, forms.CourseForm](
				"Course", services.NewRecordService[models.CompletedCourse]("course", profileRepo, courseRepo, fileSvc), true),
			routes.PathAcademicProducts: handlers.NewRecordHandler[models.AcademicProduct, forms.AcademicProductForm](
				"AcademicProduct", services.NewRecordService[models.AcademicProduct]("academic product", profileRepo, academicRepo, fileSvc), false),
			routes.PathLaborProducts: handlers.NewRecordHandler[models.LaborProduct, forms.LaborProductForm](
				"LaborProduct", services.NewRecordService[models.LaborProduct]("labor product", profileRepo, pgrepo.NewLaborProductRepo(db), fileSvc), false),
			routes.PathGarageSales: handlers.NewRecordHandler[models.GarageSaleItem, forms.GarageSaleForm](
				"GarageSale", services.NewRecordService[models.GarageSaleItem]("garage sale item", profileRepo, pgrepo.NewGarageSaleRepo(db), fileSvc), false),
		},
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log, "/ping"))
	r.MaxMultipartMemory = forms.MaxCertificateBytes
	routes.RegisterRoutes(r, deps)

	serve(r, ":"+cfg.Port, log)
}

func serve(h http.Handler, addr string, log *logrus.Logger) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", addr).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("http server shutdown")
	}
	if err := config.CloseMongo(ctx); err != nil {
		log.WithError(err).Warn("mongo disconnect")
	}
	if err := config.CloseRedis(); err != nil {
		log.WithError(err).Warn("redis close")
	}
	if err := config.ClosePostgres(); err != nil {
		log.WithError(err).Warn("postgres close")
	}
	log.Info("http server stopped")
}
