package converters

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/darianmavgo/csvtosql/converters/common"
)

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]common.Driver)
	exts      = make(map[string]string) // extension -> driver name
)

// Register makes a loader driver available by the provided name and binds
// it to the given file extensions (with leading dot).
// If Register is called twice with the same name or extension or if driver is nil, it panics.
func Register(name string, driver common.Driver, extensions ...string) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if driver == nil {
		panic("converters: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("converters: Register called twice for driver " + name)
	}
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if other, dup := exts[ext]; dup {
			panic("converters: extension " + ext + " already registered by " + other)
		}
		exts[ext] = name
	}
	drivers[name] = driver
}

// Open reads all tables from source with the named driver.
func Open(driverName string, source io.Reader, name string, config *common.ConversionConfig) ([]*common.Table, error) {
	driversMu.RLock()
	driver, ok := drivers[driverName]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("converters: unknown driver %q (forgotten import?)", driverName)
	}
	return driver.Open(source, name, config)
}

// Drivers returns a sorted list of the names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	list := make([]string, 0, len(drivers))
	for name := range drivers {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

// DriverName returns the driver registered for the extension of path,
// after any compression extension has been removed.
func DriverName(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(TrimCompressionExt(path)))
	driversMu.RLock()
	name, ok := exts[ext]
	driversMu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, ext)
	}
	return name, nil
}

// BaseName returns the file name of path without directory, compression
// extension and last extension: "dir/users.csv.gz" -> "users". A name that
// is only an extension (".csv") becomes "tb0".
func BaseName(path string) string {
	name := filepath.Base(TrimCompressionExt(path))
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" {
		return common.GenTableNames([]string{name})[0]
	}
	return name
}
