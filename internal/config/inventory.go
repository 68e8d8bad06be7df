package config

import "time"

type Inventory struct {
	URL     string        `env:"INVENTORY_URL" envDefault:"https://nbcmcc.cn/optimization/api/query_new"`
	Token   string        `env:"INVENTORY_TOKEN" json:"-"`
	Timeout time.Duration `env:"INVENTORY_TIMEOUT" envDefault:"15s"`
}
