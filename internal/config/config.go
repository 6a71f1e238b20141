package config

import "time"

// Config is the root build configuration.
type Config struct {
	Build   BuildConfig   `yaml:"build"`
	Sources SourcesConfig `yaml:"sources"`
	Log     LogConfig     `yaml:"log"`
}

// BuildConfig holds output locations and pipeline limits.
type BuildConfig struct {
	ResourcesDir string        `yaml:"resources_dir" env:"DICT_RESOURCES_DIR" env-default:"resources/dictionaries"`
	RawDir       string        `yaml:"raw_dir"       env:"DICT_RAW_DIR"       env-default:"data/raw"`
	BatchSize    int           `yaml:"batch_size"    env:"DICT_BATCH_SIZE"    env-default:"500"`
	Timeout      time.Duration `yaml:"timeout"       env:"DICT_BUILD_TIMEOUT" env-default:"2h"`
}

// SourcesConfig holds the remote locations of the raw dictionaries.
type SourcesConfig struct {
	HTTPTimeout   time.Duration `yaml:"http_timeout"   env:"DICT_HTTP_TIMEOUT"   env-default:"30m"`
	WiktionaryURL string        `yaml:"wiktionary_url" env:"DICT_WIKTIONARY_URL" env-default:"https://kaikki.org/dictionary/English/kaikki.org-dictionary-English.jsonl.gz"`
	CEDICTURL     string        `yaml:"cedict_url"     env:"DICT_CEDICT_URL"     env-default:"https://www.mdbg.net/chinese/export/cedict/cedict_1_0_ts_utf-8_mdbg.txt.gz"`
	JMdictURL     string        `yaml:"jmdict_url"     env:"DICT_JMDICT_URL"     env-default:"http://ftp.edrdg.org/pub/Nihongo/JMdict.gz"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
