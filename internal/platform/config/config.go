package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// CompanyProfile is the issuing business identity printed on documents.
type CompanyProfile struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// DefaultCompanyID scopes requests that carry no explicit company header.
	DefaultCompanyID int64

	// DefaultTaxRate is the percent applied when a document request carries none.
	DefaultTaxRate decimal.Decimal

	CurrencyCode   string
	CurrencySymbol string

	Company CompanyProfile

	// RateLimit uses the <limit>-<period> notation, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DEFAULT_COMPANY_ID", int64(1))
	viper.SetDefault("DEFAULT_TAX_RATE", "16")
	viper.SetDefault("CURRENCY_CODE", "KES")
	viper.SetDefault("CURRENCY_SYMBOL", "KSh")
	viper.SetDefault("COMPANY_NAME", "")
	viper.SetDefault("COMPANY_ADDRESS", "")
	viper.SetDefault("COMPANY_PHONE", "")
	viper.SetDefault("COMPANY_EMAIL", "")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DefaultCompanyID = viper.GetInt64("DEFAULT_COMPANY_ID")

	taxRateStr := viper.GetString("DEFAULT_TAX_RATE")
	taxRate, err := decimal.NewFromString(taxRateStr)
	if err != nil || taxRate.IsNegative() {
		taxRate = decimal.NewFromInt(16)
		log.Printf("Warning: Invalid value for DEFAULT_TAX_RATE ('%s'). Defaulting to %s.\n", taxRateStr, taxRate)
	}
	cfg.DefaultTaxRate = taxRate

	cfg.CurrencyCode = viper.GetString("CURRENCY_CODE")
	cfg.CurrencySymbol = viper.GetString("CURRENCY_SYMBOL")

	cfg.Company = CompanyProfile{
		Name:    viper.GetString("COMPANY_NAME"),
		Address: viper.GetString("COMPANY_ADDRESS"),
		Phone:   viper.GetString("COMPANY_PHONE"),
		Email:   viper.GetString("COMPANY_EMAIL"),
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
