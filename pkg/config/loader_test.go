package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/pkg/config"
)

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type ValidatedConfig struct {
	Format string `env:"TEST_LOG_FORMAT" envDefault:"json" validate:"oneof=json text"`
	Name   string `env:"TEST_APP_NAME" envDefault:"regform" validate:"required"`
}

type CustomEnvConfig struct {
	TestString    string   `env:"TEST_CUSTOM_STRING"`
	TestInt       int      `env:"TEST_CUSTOM_INT"`
	TestArray     []string `env:"TEST_CUSTOM_ARRAY" envSeparator:","`
	TestWithQuote string   `env:"TEST_CUSTOM_WITH_QUOTES"`
	TestPriority  string   `env:"TEST_PRIORITY"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error with valid environment variables")
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.False(t, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")

	var cfg TestConfigDefault
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.True(t, cfg.TestBool)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_ReloadsOnEveryCall(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "first_value")

	var first TestConfigSuccess
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_STRING_SUCCESS", "second_value")

	var second TestConfigSuccess
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first_value", first.TestString)
	assert.Equal(t, "second_value", second.TestString)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		t.Setenv("TEST_LOG_FORMAT", "text")
		var cfg ValidatedConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "text", cfg.Format)
		assert.Equal(t, "regform", cfg.Name)
	})

	t.Run("value outside oneof", func(t *testing.T) {
		t.Setenv("TEST_LOG_FORMAT", "xml")
		var cfg ValidatedConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.NotErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestLoad_WithPrefix(t *testing.T) {
	t.Setenv("REGFORM_TEST_APP_NAME", "prefixed")
	t.Setenv("TEST_APP_NAME", "plain")

	var cfg ValidatedConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("REGFORM_")))
	assert.Equal(t, "prefixed", cfg.Name)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	err := config.Load(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")
	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
	})

	t.Setenv("REQUIRED_VALUE", "set")
	assert.NotPanics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
		assert.Equal(t, "set", cfg.Required)
	})
}

func TestLoadEnv(t *testing.T) {
	for _, key := range []string{"TEST_CUSTOM_STRING", "TEST_CUSTOM_INT", "TEST_CUSTOM_ARRAY", "TEST_CUSTOM_WITH_QUOTES"} {
		// Register cleanup through t.Setenv, then clear so the file value is used.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("TEST_PRIORITY", "process_value")

	require.NoError(t, config.LoadEnv("testdata/.env.custom"))

	var cfg CustomEnvConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "custom_value", cfg.TestString)
	assert.Equal(t, 1234, cfg.TestInt)
	assert.Equal(t, []string{"item1", "item2", "item3"}, cfg.TestArray)
	assert.Equal(t, "quoted value", cfg.TestWithQuote)
	assert.Equal(t, "process_value", cfg.TestPriority, "existing variables win over the file")
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
