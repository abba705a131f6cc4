package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

func TestSetupLogging_RejectsBadValues(t *testing.T) {
	t.Cleanup(func() {
		viper.Set("logging.level", "info")
		viper.Set("logging.format", "console")
	})

	viper.Set("logging.level", "loud")
	viper.Set("logging.format", "console")
	assert.ErrorIs(t, setupLogging(), common.ErrInvalidConfig)

	viper.Set("logging.level", "info")
	viper.Set("logging.format", "xml")
	assert.ErrorIs(t, setupLogging(), common.ErrInvalidConfig)
}

func TestInitConfig_MissingExplicitFile(t *testing.T) {
	cfgFile = filepath.Join(t.TempDir(), "nope.yaml")
	t.Cleanup(func() { cfgFile = "" })

	err := initConfig(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestCategoryBadge(t *testing.T) {
	assert.Equal(t, "📚", categoryBadge(model.Category{Icon: "📚", Name: "Books"}))
	assert.Equal(t, "B", categoryBadge(model.Category{Name: "Books"}))
	assert.Equal(t, "", categoryBadge(model.Category{}))
}
