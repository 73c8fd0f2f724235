package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		user     string
		pass     string
		expected string
	}{
		{"empty", "", "", "", ""},
		{"native dsn untouched", "root:pw@tcp(db:3306)/contacts?parseTime=true", "x", "y", "root:pw@tcp(db:3306)/contacts?parseTime=true"},
		{
			"jdbc url with overrides",
			"jdbc:mysql://127.0.0.1:3306/contacts?useSSL=false&serverTimezone=UTC&characterEncoding=utf8",
			"root", "secret",
			"root:secret@tcp(127.0.0.1:3306)/contacts?charset=utf8&loc=UTC&parseTime=true&tls=false",
		},
		{
			"url credentials and defaults",
			"mysql://app:pw@localhost:3306/contacts",
			"", "",
			"app:pw@tcp(localhost:3306)/contacts?charset=utf8mb4&parseTime=true",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalizeMySQLDSN(tc.in, tc.user, tc.pass))
		})
	}
}

func TestMaskDSN(t *testing.T) {
	assert.Equal(t, "root:****@tcp(db:3306)/x", maskDSN("root:secret@tcp(db:3306)/x"))
	assert.Equal(t, "root@tcp(db:3306)/x", maskDSN("root@tcp(db:3306)/x"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, parseLevel("silent"))
	assert.Equal(t, gormlogger.Info, parseLevel("info"))
	assert.Equal(t, gormlogger.Warn, parseLevel(""))
}

func TestNewGorm_UnsupportedDriver(t *testing.T) {
	_, err := NewGorm(Opts{Driver: "sqlite"}, zap.NewNop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
