package database

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// EmbeddedMigrations, binary'ye gömülü migration dosyalarını döner.
// embed.FS "migrations/" önekiyle gelir; fs.Sub ile kök dizine indirilir
// ki runMigrations dosyaları doğrudan "." altında görsün.
func EmbeddedMigrations() (fs.FS, error) {
	return fs.Sub(embeddedMigrations, "migrations")
}
