package config

type StorageConfig struct {
	BackendName string `yaml:"backend"`
	DataDir     string `yaml:"dir"`
	SQLiteFile  string `yaml:"sqlite-path"`
}

func (s *StorageConfig) Backend() string {
	return s.BackendName
}

func (s *StorageConfig) Dir() string {
	return s.DataDir
}

func (s *StorageConfig) SQLitePath() string {
	return s.SQLiteFile
}

type PostgresConfig struct {
	Hostname string `yaml:"host"`
	PortNum  int    `yaml:"port"`
	Db       string `yaml:"db"`
	User     string `yaml:"username"`
	Pswd     string `yaml:"password"`
	SSL      string `yaml:"sslmode"`
}

func (s *PostgresConfig) Host() string {
	return s.Hostname
}

func (s *PostgresConfig) Port() int {
	return s.PortNum
}

func (s *PostgresConfig) Database() string {
	return s.Db
}

func (s *PostgresConfig) Username() string {
	return s.User
}

func (s *PostgresConfig) Password() string {
	return s.Pswd
}

func (s *PostgresConfig) SSLMode() string {
	return s.SSL
}

type MemcachedConfig struct {
	NodeHosts []string `yaml:"hosts"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}
