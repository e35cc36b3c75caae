package converters_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darianmavgo/csvtosql/converters"
	"github.com/darianmavgo/csvtosql/converters/common"
)

type stubDriver struct{}

func (stubDriver) Open(io.Reader, string, *common.ConversionConfig) ([]*common.Table, error) {
	return nil, nil
}

func TestDrivers(t *testing.T) {
	assert.Subset(t, converters.Drivers(), []string{"csv", "excel", "tsv"})
}

func TestDriverName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"users.csv", "csv"},
		{"USERS.CSV", "csv"},
		{"users.csv.gz", "csv"},
		{"book.xlsx", "excel"},
		{"scores.tsv", "tsv"},
		{"scores.tsv.zst", "tsv"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := converters.DriverName(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := converters.DriverName("notes.txt")
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestRegisterPanics(t *testing.T) {
	assert.Panics(t, func() { converters.Register("nil-driver", nil) })
	assert.Panics(t, func() { converters.Register("csv", stubDriver{}) })
	assert.Panics(t, func() { converters.Register("csv-again", stubDriver{}, ".csv") })
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := converters.Open("parquet", nil, "t", nil)
	assert.ErrorContains(t, err, "unknown driver")
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "users", converters.BaseName("/data/users.csv"))
	assert.Equal(t, "users", converters.BaseName("users.csv.xz"))
	assert.Equal(t, "a.b", converters.BaseName("a.b.csv"))
	assert.Equal(t, "tb0", converters.BaseName("/data/.csv"))
	assert.Equal(t, "tb0", converters.BaseName(".csv.gz"))
}
