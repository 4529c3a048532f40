package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/db"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/utils"
	"gopkg.in/yaml.v2"

	casedb "github.com/Mentoons-github/Mentoons-website-sub002/pkg/db/case"
	portaluserdb "github.com/Mentoons-github/Mentoons-website-sub002/pkg/db/portal-user"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_CASE_DB_USERNAME        = "CASE_DB_USERNAME"
	ENV_CASE_DB_PASSWORD        = "CASE_DB_PASSWORD"
	ENV_PORTAL_USER_DB_USERNAME = "PORTAL_USER_DB_USERNAME"
	ENV_PORTAL_USER_DB_PASSWORD = "PORTAL_USER_DB_PASSWORD"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		CaseDB       db.DBConfigYaml `json:"case_db" yaml:"case_db"`
		PortalUserDB db.DBConfigYaml `json:"portal_user_db" yaml:"portal_user_db"`
	} `json:"db_configs" yaml:"db_configs"`

	InstanceIDs []string `json:"instance_ids" yaml:"instance_ids"`

	// Task configurations
	TaskConfigs TaskConfigs `json:"task_configs" yaml:"task_configs"`
}

type TaskConfigs struct {
	DropIndexes    DropIndexesConfig    `json:"drop_indexes" yaml:"drop_indexes"`
	CreateIndexes  CreateIndexesConfig  `json:"create_indexes" yaml:"create_indexes"`
	MigrationTasks MigrationTasksConfig `json:"migration_tasks" yaml:"migration_tasks"`
}

type DropIndexesConfig struct {
	CaseDB       DropIndexesMode `json:"case_db" yaml:"case_db"`
	PortalUserDB DropIndexesMode `json:"portal_user_db" yaml:"portal_user_db"`
}

type CreateIndexesConfig struct {
	CaseDB       bool `json:"case_db" yaml:"case_db"`
	PortalUserDB bool `json:"portal_user_db" yaml:"portal_user_db"`
}

type MigrationTasksConfig struct {
	// Pads or truncates the three-slot lists of stored case records to
	// exactly three entries.
	NormalizeCaseRecordSlots bool `json:"normalize_case_record_slots" yaml:"normalize_case_record_slots"`
}

type DropIndexesMode string

const (
	DropIndexesModeAll  DropIndexesMode = "all"
	DropIndexesModeNone DropIndexesMode = "none"
)

func (mode DropIndexesMode) IsValid() bool {
	switch mode {
	case DropIndexesModeAll, DropIndexesModeNone, "":
		return true
	default:
		return false
	}
}

func validateConfig() {
	validateDropIndexesMode("task_configs.drop_indexes.case_db", conf.TaskConfigs.DropIndexes.CaseDB)
	validateDropIndexesMode("task_configs.drop_indexes.portal_user_db", conf.TaskConfigs.DropIndexes.PortalUserDB)
}

func validateDropIndexesMode(field string, mode DropIndexesMode) {
	if !mode.IsValid() {
		panic(fmt.Sprintf("invalid drop indexes mode for %s: %q. Use one of: %v", field, mode, []DropIndexesMode{DropIndexesModeAll, DropIndexesModeNone}))
	}
}

type RequiredDBs struct {
	CaseDB       bool
	PortalUserDB bool
}

var conf config

// Database service variables - initialized only for required databases based on task config
var (
	caseDBService       *casedb.CaseDBService
	portalUserDBService *portaluserdb.PortalUserDBService
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

	validateConfig()

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
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_CASE_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.CaseDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_CASE_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.CaseDB.Password = dbPassword
	}

	if dbUsername := os.Getenv(ENV_PORTAL_USER_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.PortalUserDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_PORTAL_USER_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.PortalUserDB.Password = dbPassword
	}
}

// getRequiredDBs determines which databases need to be connected based on task configurations
func getRequiredDBs() RequiredDBs {
	requiredDBs := RequiredDBs{}

	if conf.TaskConfigs.DropIndexes.CaseDB == DropIndexesModeAll {
		requiredDBs.CaseDB = true
	}
	if conf.TaskConfigs.DropIndexes.PortalUserDB == DropIndexesModeAll {
		requiredDBs.PortalUserDB = true
	}

	if conf.TaskConfigs.CreateIndexes.CaseDB {
		requiredDBs.CaseDB = true
	}
	if conf.TaskConfigs.CreateIndexes.PortalUserDB {
		requiredDBs.PortalUserDB = true
	}

	if conf.TaskConfigs.MigrationTasks.NormalizeCaseRecordSlots {
		requiredDBs.CaseDB = true
	}

	return requiredDBs
}

func initDBs() {
	requiredDBs := getRequiredDBs()

	var err error

	if requiredDBs.CaseDB {
		caseDBService, err = casedb.NewCaseDBService(db.DBConfigFromYamlObj(conf.DBConfigs.CaseDB, conf.InstanceIDs))
		if err != nil {
			slog.Error("Error connecting to Case DB", slog.String("error", err.Error()))
			panic(err)
		}
	}

	if requiredDBs.PortalUserDB {
		portalUserDBService, err = portaluserdb.NewPortalUserDBService(db.DBConfigFromYamlObj(conf.DBConfigs.PortalUserDB, conf.InstanceIDs))
		if err != nil {
			slog.Error("Error connecting to Portal User DB", slog.String("error", err.Error()))
			panic(err)
		}
	}

	slog.Info("Database connections established",
		slog.Bool("case_db", requiredDBs.CaseDB),
		slog.Bool("portal_user_db", requiredDBs.PortalUserDB))
}
