package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"roster/internal/cache"
	"roster/internal/config"
	"roster/internal/db"
	apperrors "roster/internal/errors"
	"roster/internal/logs"
	"roster/internal/model"
	"roster/internal/repository"
	"roster/internal/service"
)

// SeedData is the hierarchy file layout. Zones and dependencies nest under
// their headquarters.
type SeedData struct {
	Headquarters []model.Headquarters `json:"headquarters"`
	Duties       []model.Duty         `json:"duties"`
	WorkRegimes  []model.WorkRegime   `json:"work_regimes"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log, err := logs.New(logs.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		logrus.Fatalf("logger: %v", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("seed_admin_name", "Administrator")
	for _, key := range []string{"seed_admin_email", "seed_admin_password", "seed_file"} {
		_ = v.BindEnv(key)
	}

	log.Info("Starting seed script...")

	gormDB, err := db.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations completed")

	ctx := context.Background()

	if email := v.GetString("seed_admin_email"); email != "" {
		accounts := service.NewAccountService(
			repository.NewUserRepository(gormDB),
			repository.New[model.Leave](gormDB),
			cache.NewWithClient(nil, log),
		)
		in := service.SetupInput{
			Name:     v.GetString("seed_admin_name"),
			Email:    email,
			Password: v.GetString("seed_admin_password"),
		}
		if err := validator.New().Struct(in); err != nil {
			log.Fatalf("Invalid administrator credentials: %v", err)
		}
		admin, err := accounts.Setup(ctx, in)
		switch {
		case errors.Is(err, apperrors.ErrSetupLocked):
			log.Info("Users already exist, skipping administrator setup")
		case err != nil:
			log.Fatalf("Failed to create administrator: %v", err)
		default:
			log.WithField("email", admin.Email).Info("Administrator created")
		}
	}

	source := v.GetString("seed_file")
	if source == "" {
		log.Info("SEED_FILE not set, skipping hierarchy seed")
		return
	}

	log.Infof("Loading hierarchy from: %s", source)
	data, err := loadSeedData(source)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	created, skipped, err := seedHierarchy(ctx, gormDB, data, log)
	if err != nil {
		log.Fatalf("Failed to seed hierarchy: %v", err)
	}

	log.Info("Seed completed successfully!")
	log.Infof("  - New records created: %d", created)
	log.Infof("  - Existing records skipped: %d", skipped)
}

// loadSeedData reads the hierarchy from a local file or an http(s) URL.
func loadSeedData(source string) (*SeedData, error) {
	var body []byte
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch seed file: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("seed source returned status code: %d", resp.StatusCode)
		}
		if body, err = io.ReadAll(resp.Body); err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
	} else {
		var err error
		if body, err = os.ReadFile(source); err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
	}

	var data SeedData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &data, nil
}

// seedHierarchy creates every named record that does not exist yet. Records
// are matched by name (description for duties).
func seedHierarchy(ctx context.Context, gormDB *gorm.DB, data *SeedData, log logrus.FieldLogger) (created int, skipped int, err error) {
	hqRepo := repository.New[model.Headquarters](gormDB)
	for i := range data.Headquarters {
		hq := data.Headquarters[i]
		ok, err := createIfMissing(ctx, hqRepo, repository.Filter{"name": hq.Name}, &hq)
		if err != nil {
			return created, skipped, fmt.Errorf("headquarters %q: %w", hq.Name, err)
		}
		if !ok {
			log.WithField("headquarters", hq.Name).Debug("already present")
			skipped++
			continue
		}
		created++
	}

	dutyRepo := repository.New[model.Duty](gormDB)
	for i := range data.Duties {
		duty := data.Duties[i]
		ok, err := createIfMissing(ctx, dutyRepo, repository.Filter{"description": duty.Description}, &duty)
		if err != nil {
			return created, skipped, fmt.Errorf("duty %q: %w", duty.Description, err)
		}
		if ok {
			created++
		} else {
			skipped++
		}
	}

	regimeRepo := repository.New[model.WorkRegime](gormDB)
	for i := range data.WorkRegimes {
		regime := data.WorkRegimes[i]
		if err := regime.Check(); err != nil {
			return created, skipped, fmt.Errorf("work regime %q: %w", regime.Name, err)
		}
		ok, err := createIfMissing(ctx, regimeRepo, repository.Filter{"name": regime.Name}, &regime)
		if err != nil {
			return created, skipped, fmt.Errorf("work regime %q: %w", regime.Name, err)
		}
		if ok {
			created++
		} else {
			skipped++
		}
	}

	return created, skipped, nil
}

func createIfMissing[T any](ctx context.Context, repo repository.Repository[T], match repository.Filter, entity *T) (bool, error) {
	existing, err := repo.List(ctx, match)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}
	if err := repo.Create(ctx, entity); err != nil {
		return false, err
	}
	return true, nil
}
