package config

import (
	"io"
	"log"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := log.New(io.Discard, "", 0)

	cfg, err := Initialize(fs, "/work", logger)
	if err != nil {
		t.Fatal(err)
	}
	assert.Nil(t, cfg.Validate())

	// The written config round-trips.
	loaded, err := Load(fs, "/work")
	assert.Nil(t, err)
	assert.Equal(t, cfg, loaded)

	// A second run refuses to clobber.
	_, err = Initialize(fs, "/work", logger)
	assert.NotNil(t, err)
}
