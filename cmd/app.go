package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/AubakirovAzamat/Dragon-Dice/internal/engine"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/haptics"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/logging"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/persistence"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/session"
	"github.com/AubakirovAzamat/Dragon-Dice/internal/settings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app bundles everything a command needs, built from the viper config.
type app struct {
	logger   *zap.Logger
	kv       persistence.KV
	store    *settings.Store
	feedback haptics.Feedback
}

func storeConfig() persistence.Config {
	return persistence.Config{
		Driver:    viper.GetString("store.driver"),
		Path:      viper.GetString("store.path"),
		RedisAddr: viper.GetString("store.redis_addr"),
		RedisDB:   viper.GetInt("store.redis_db"),
	}
}

func logPath() string {
	if p := viper.GetString("log.file"); p != "" {
		return p
	}
	return filepath.Join(persistence.DefaultDir(), "dragon-dice.log")
}

// newApp opens the configured store and loads the saved settings.
// bell receives haptic feedback when haptics are enabled.
func newApp(ctx context.Context, bell io.Writer) (*app, error) {
	logger, err := logging.New(viper.GetString("log.level"), logPath())
	if err != nil {
		return nil, err
	}

	kv, err := persistence.Open(ctx, storeConfig())
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}

	var feedback haptics.Feedback = haptics.Nop{}
	if viper.GetBool("haptics") && bell != nil {
		feedback = haptics.NewBell(bell, logger.Named("haptics"))
	}

	store := settings.NewStore(kv, logger.Named("settings"))
	loaded := store.Load(ctx)
	logger.Debug("settings loaded",
		zap.String("driver", storeConfig().Driver),
		zap.Int("dice_count", loaded.DiceCount),
		zap.Int("dice_size", loaded.DiceSize),
		zap.Float64("animation_speed", loaded.AnimationSpeed))

	return &app{
		logger:   logger,
		kv:       kv,
		store:    store,
		feedback: feedback,
	}, nil
}

func (a *app) newSession() *session.Session {
	return session.New(a.store, engine.NewSource(), a.feedback, a.logger.Named("session"))
}

func (a *app) Close() {
	if err := a.kv.Close(); err != nil {
		a.logger.Warn("failed to close settings store", zap.Error(err))
	}
	_ = a.logger.Sync()
}
