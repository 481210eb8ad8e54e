package Controllers_test

import (
	"os"
	"testing"

	"github.com/pepperjack/tableorder/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}
