//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput            = "gen"
	migrationsDir        = "migrations"
	serverBin            = "./bin/server"
	serverConfigPath     = "configs/server.toml"
	botConfigPath        = "configs/bot.toml"
	sqliteFileLocation   = "vegas.sqlite"
	coverProfileLocation = "cover.out"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
	migrateTool  = toolsBinDir + "migrate"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server binary
func Build() error {
	mg.Deps(goModDownload)
	mg.Deps(GenJet)
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-o", serverBin, "cmd/main.go")
}

// Run starts server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "-server-config", serverConfigPath, "-bot-config", botConfigPath)
}

// Test runs unit tests with coverage
func Test() error {
	mg.Deps(goModDownload)
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "test", "-race", "-coverprofile", coverProfileLocation, "./...")
}

// Clean removes the binary and the local database
func Clean() error {
	if err := sh.Rm(serverBin); err != nil {
		return err
	}
	return sh.Rm(sqliteFileLocation)
}

// GenJet regenerates gen/table and gen/model from the migrated database
func GenJet() error {
	mg.Deps(migrateUp, buildJetTool)
	return sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteFileLocation, "-path", jetOutput,
		"-ignore-tables", "schema_migrations")
}

func migrateUp() error {
	mg.Deps(buildMigrateTool)
	return sh.Run(migrateTool, "-source", "file://"+migrationsDir, "-database", "sqlite3://"+sqliteFileLocation, "up")
}

func buildJetTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-o", jetTool, "github.com/go-jet/jet/v2/cmd/jet")
}

func buildMigrateTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-tags", "sqlite3", "-o", migrateTool,
		"github.com/golang-migrate/migrate/v4/cmd/migrate")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}
