package database

type Config struct {
	FilePath string `envconfig:"SKETCHY_DB_PATH" default:"sketchy.db"`
}
