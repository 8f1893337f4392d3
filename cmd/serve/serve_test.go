package serve

import (
	"net/http/httptest"
	"testing"

	"fjacquet/ccstmt-csv/internal/config"
	"fjacquet/ccstmt-csv/internal/container"
	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/pdfparser"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Output.Format = "xlsx"
	cfg.PDF.Engine = "library"
	cfg.Server.Address = ":0"
	cfg.Server.MaxUploadMB = 4

	c, err := container.NewContainer(cfg,
		container.WithLogger(logging.NewMockLogger()),
		container.WithExtractor(pdfparser.NewMockPDFExtractor("", nil)))
	require.NoError(t, err)

	s := NewServer(c)
	resp, err := s.App().Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCommand_Metadata(t *testing.T) {
	assert.Equal(t, "serve", Cmd.Use)
	flag := Cmd.Flags().Lookup("address")
	require.NotNil(t, flag)
	assert.Equal(t, "a", flag.Shorthand)
}
