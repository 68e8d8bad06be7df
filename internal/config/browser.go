package config

import "time"

type Browser struct {
	APIURL           string        `env:"BROWSER_API_URL" envDefault:"http://localhost:3000/api/numbers"`
	LogFile          string        `env:"BROWSER_LOG_FILE" envDefault:"browser.log"`
	PrefetchDistance int           `env:"BROWSER_PREFETCH_DISTANCE" envDefault:"3"`
	RequestTimeout   time.Duration `env:"BROWSER_REQUEST_TIMEOUT" envDefault:"30s"`
}
