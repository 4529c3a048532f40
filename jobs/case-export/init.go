package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/db"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/utils"
	"gopkg.in/yaml.v2"

	caseDB "github.com/Mentoons-github/Mentoons-website-sub002/pkg/db/case"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_CASE_DB_USERNAME = "CASE_DB_USERNAME"
	ENV_CASE_DB_PASSWORD = "CASE_DB_PASSWORD"
)

type CaseExportTask struct {
	InstanceID   string `json:"instance_id" yaml:"instance_id"`
	ExportFormat string `json:"export_format" yaml:"export_format"` // csv or json
}

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		CaseDB db.DBConfigYaml `json:"case_db" yaml:"case_db"`
	} `json:"db_configs" yaml:"db_configs"`

	ExportPath string `json:"export_path" yaml:"export_path"`

	ExportTasks []CaseExportTask `json:"export_tasks" yaml:"export_tasks"`
}

var conf config

var (
	caseDBService *caseDB.CaseDBService
)

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
		conf.Logging.IncludeBuildInfo,
	)

	// Override secrets from environment variables
	secretsOverride()

	// init db
	initDBs()

	if conf.ExportPath == "" {
		err := fmt.Errorf("export path must be set to define where to store the export files")
		slog.Error("Error reading config", slog.String("error", err.Error()))
		panic(err)
	}

	if _, err := os.Stat(conf.ExportPath); os.IsNotExist(err) {
		// create folder
		err = os.MkdirAll(conf.ExportPath, os.ModePerm)
		if err != nil {
			slog.Error("Error creating export path", slog.String("error", err.Error()))
			panic(err)
		}
		slog.Info("Created export path", slog.String("path", conf.ExportPath))
	}
}

func secretsOverride() {
	// Override secrets from environment variables

	if dbUsername := os.Getenv(ENV_CASE_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.CaseDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_CASE_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.CaseDB.Password = dbPassword
	}
}

func initDBs() {
	instanceIDs := getInstanceIDs()

	var err error
	caseDBService, err = caseDB.NewCaseDBService(db.DBConfigFromYamlObj(conf.DBConfigs.CaseDB, instanceIDs))
	if err != nil {
		slog.Error("Error connecting to Case DB", slog.String("error", err.Error()))
		panic(err)
	}
}

func getInstanceIDs() []string {
	instanceIDs := []string{}
	for _, task := range conf.ExportTasks {
		instanceIDs = append(instanceIDs, task.InstanceID)
	}
	return instanceIDs
}
