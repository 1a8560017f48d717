package assets

import (
	"os"
	"testing"

	"Terra3D/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
