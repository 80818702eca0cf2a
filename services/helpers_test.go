package services_test

import (
	"os"
	"testing"
	"time"

	"MedzenGo/config"
	"MedzenGo/storage"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}

func fixedClock(date string) func() time.Time {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("bad test date: " + date)
	}
	return func() time.Time { return parsed }
}

func newTestStore(t *testing.T) *storage.MemoryStore {
	t.Helper()
	return storage.NewMemoryStore()
}
