package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hibiki-labs/kioku/internal/core/domain"
	"github.com/hibiki-labs/kioku/internal/core/ports/driven"
	"github.com/hibiki-labs/kioku/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySnapshotDriver = "snapshot.driver"
	keySnapshotPath   = "snapshot.path"
	keyDefaultLimit   = "search.default_limit"
	keyCacheSize      = "search.cache_size"
	keyWatchEnabled   = "watch.enabled"
	keyWatchDebounce  = "watch.debounce_ms"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to their defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Snapshot: domain.SnapshotSettings{
			Driver: s.getDriver(defaults.Snapshot.Driver),
			Path:   s.configStore.GetString(keySnapshotPath),
		},
		Search: domain.SearchSettings{
			DefaultLimit: s.getInt(keyDefaultLimit, defaults.Search.DefaultLimit),
			CacheSize:    s.getInt(keyCacheSize, defaults.Search.CacheSize),
		},
		Watch: domain.WatchSettings{
			Enabled:  s.getBool(keyWatchEnabled, defaults.Watch.Enabled),
			Debounce: s.getDuration(keyWatchDebounce, defaults.Watch.Debounce),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.Validate(settings); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keySnapshotDriver, settings.Snapshot.Driver.String()},
		{keySnapshotPath, settings.Snapshot.Path},
		{keyDefaultLimit, settings.Search.DefaultLimit},
		{keyCacheSize, settings.Search.CacheSize},
		{keyWatchEnabled, settings.Watch.Enabled},
		{keyWatchDebounce, int(settings.Watch.Debounce / time.Millisecond)},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Validate checks settings against their constraints.
func (s *SettingsService) Validate(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidSettings)
	}
	err := validate.Struct(settings)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSettings, err)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidSettings, strings.Join(problems, "; "))
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns the configuration file path.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "AppSettings.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return time.Duration(s.configStore.GetInt(key)) * time.Millisecond
}

func (s *SettingsService) getDriver(defaultVal domain.SnapshotDriver) domain.SnapshotDriver {
	val := s.configStore.GetString(keySnapshotDriver)
	if val == "" {
		return defaultVal
	}
	driver := domain.SnapshotDriver(strings.ToLower(val))
	if !driver.IsValid() {
		return defaultVal
	}
	return driver
}
