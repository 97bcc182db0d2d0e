package classifier

type Config struct {
	APIKey   string
	Endpoint string `yaml:"endpoint"`
	Timeout  int64  `yaml:"timeout_in_ms"`
}
