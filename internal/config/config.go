package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig application configuration
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Report ReportConfig `toml:"report"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig working directory for transient uploads and results
type DataConfig struct {
	DataDir     string `toml:"data_dir"`
	KeepResults bool   `toml:"keep_results"`
}

// ReportConfig pipeline settings
type ReportConfig struct {
	HeaderMarker      string          `toml:"header_marker"`
	SheetName         string          `toml:"sheet_name"`
	DetectSheet       bool            `toml:"detect_sheet"`
	DateLayout        string          `toml:"date_layout"`
	Timezone          string          `toml:"timezone"`
	DefaultVariant    string          `toml:"default_variant"`
	FoldHospitalNames bool            `toml:"fold_hospital_names"`
	Variants          []VariantConfig `toml:"variants"`
}

// VariantConfig one aging report variant.
// UpperBounds holds the inclusive upper edge of the first two bins.
type VariantConfig struct {
	Name        string    `toml:"name"`
	DateColumn  string    `toml:"date_column"`
	DateHeader  string    `toml:"date_header"`
	RequireDone bool      `toml:"require_done"`
	Labels      [3]string `toml:"labels"`
	UpperBounds [2]int    `toml:"upper_bounds"`
}

// LogConfig logger settings
type LogConfig struct {
	Level   string `toml:"level"`
	Console bool   `toml:"console"`
}

// LoadConfigInfo metadata about how the config was loaded
type LoadConfigInfo struct {
	PortSpecified bool
	ConfigPath    string
	FromFile      bool
}

const (
	VariantVerification = "verification"
	VariantSubmission   = "submission"
)

// DefaultVariants the two aging reports of the original tool
func DefaultVariants() []VariantConfig {
	return []VariantConfig{
		{
			Name:        VariantVerification,
			DateColumn:  "tanggal verifikasi",
			DateHeader:  "Tanggal Verifikasi",
			RequireDone: true,
			Labels:      [3]string{"<10", "10-14", ">14"},
			UpperBounds: [2]int{9, 14},
		},
		{
			Name:        VariantSubmission,
			DateColumn:  "tanggal klaim diajukan",
			DateHeader:  "Tanggal Klaim Diajukan",
			RequireDone: false,
			Labels:      [3]string{"0-10", "11-14", ">14"},
			UpperBounds: [2]int{10, 14},
		},
	}
}

// DefaultConfig default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    5500,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:     "data",
			KeepResults: false,
		},
		Report: ReportConfig{
			HeaderMarker:      "nomor id jaminan",
			SheetName:         "",
			DetectSheet:       false,
			DateLayout:        "2-1-2006",
			Timezone:          "Local",
			DefaultVariant:    VariantVerification,
			FoldHospitalNames: true,
			Variants:          DefaultVariants(),
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Variant looks up a configured variant by name (case-insensitive).
func (c ReportConfig) Variant(name string) (VariantConfig, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = strings.ToLower(c.DefaultVariant)
	}
	for _, v := range c.Variants {
		if strings.ToLower(v.Name) == name {
			return v, true
		}
	}
	return VariantConfig{}, false
}

// Validate checks the invariants the pipeline relies on.
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.Report.HeaderMarker) == "" {
		return errors.New("report.header_marker must not be empty")
	}
	if strings.TrimSpace(c.Report.DateLayout) == "" {
		return errors.New("report.date_layout must not be empty")
	}
	if len(c.Report.Variants) == 0 {
		return errors.New("report.variants must not be empty")
	}
	for _, v := range c.Report.Variants {
		if strings.TrimSpace(v.Name) == "" || strings.TrimSpace(v.DateColumn) == "" {
			return errors.New("report.variants: name and date_column are required")
		}
		if v.UpperBounds[0] >= v.UpperBounds[1] {
			return errors.New("report.variants[" + v.Name + "]: upper_bounds must be increasing")
		}
	}
	if _, ok := c.Report.Variant(c.Report.DefaultVariant); !ok {
		return errors.New("report.default_variant " + strconv.Quote(c.Report.DefaultVariant) + " is not configured")
	}
	return nil
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir directory of the running executable
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultConfigPath config.toml next to the executable
func DefaultConfigPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

// LoadConfigWithInfo loads config.toml next to the executable (or at path when
// given), then applies .env and REKAP_* environment overrides.
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	// .env is optional
	_ = godotenv.Load()

	if path == "" {
		path = DefaultConfigPath()
	}
	info.ConfigPath = path

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		info.FromFile = true
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, err
		}
	case os.IsNotExist(err):
	default:
		return nil, info, err
	}

	applyEnvOverrides(config, &info)

	if len(config.Report.Variants) == 0 {
		config.Report.Variants = DefaultVariants()
	}
	if err := config.Validate(); err != nil {
		return nil, info, err
	}
	return config, info, nil
}

func applyEnvOverrides(config *AppConfig, info *LoadConfigInfo) {
	if v := os.Getenv("REKAP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			config.Server.Port = port
			info.PortSpecified = true
		}
	}
	if v := os.Getenv("REKAP_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("REKAP_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}
	if v := os.Getenv("REKAP_DEFAULT_VARIANT"); v != "" {
		config.Report.DefaultVariant = v
	}
	if v := os.Getenv("REKAP_TIMEZONE"); v != "" {
		config.Report.Timezone = v
	}
	if v := os.Getenv("REKAP_HEADER_MARKER"); v != "" {
		config.Report.HeaderMarker = v
	}
}

// SaveConfig writes config as TOML to path, or to config.toml next to the
// executable when path is empty. It returns the path written.
func SaveConfig(config *AppConfig, path string) (string, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return "", err
	}

	return path, os.WriteFile(path, data, 0644)
}

// Subdirectories of the data dir
const (
	UploadsDir = "uploads"
	ResultsDir = "results"
)

// EnsureDataDir makes sure the data directory and its subdirectories exist.
// Relative data dirs are resolved against the executable directory.
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := resolveDataDir(config)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	for _, subdir := range []string{UploadsDir, ResultsDir} {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}

// GetDataPath path of a file inside a data subdirectory
func GetDataPath(config *AppConfig, subdir, filename string) string {
	return filepath.Join(resolveDataDir(config), subdir, filename)
}

func resolveDataDir(config *AppConfig) string {
	if filepath.IsAbs(config.Data.DataDir) {
		return config.Data.DataDir
	}
	exeDir, err := GetExeDir()
	if err != nil || exeDir == "" {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir)
}
