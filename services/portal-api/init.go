package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/apihelpers"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/db"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/portal-user/pwhash"
	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/utils"
	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	caseDB "github.com/Mentoons-github/Mentoons-website-sub002/pkg/db/case"
	portaluserDB "github.com/Mentoons-github/Mentoons-website-sub002/pkg/db/portal-user"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_CASE_DB_USERNAME        = "CASE_DB_USERNAME"
	ENV_CASE_DB_PASSWORD        = "CASE_DB_PASSWORD"
	ENV_PORTAL_USER_DB_USERNAME = "PORTAL_USER_DB_USERNAME"
	ENV_PORTAL_USER_DB_PASSWORD = "PORTAL_USER_DB_PASSWORD"

	ENV_PORTAL_USER_JWT_SIGN_KEY   = "PORTAL_USER_JWT_SIGN_KEY"
	ENV_PORTAL_USER_JWT_EXPIRES_IN = "PORTAL_USER_JWT_EXPIRES_IN"
)

type PortalApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		// Mutual TLS configs
		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	// portal user configs
	PortalUserConfig struct {
		PWHashing struct {
			Argon2Memory      uint32 `json:"argon2_memory" yaml:"argon2_memory"`
			Argon2Iterations  uint32 `json:"argon2_iterations" yaml:"argon2_iterations"`
			Argon2Parallelism uint8  `json:"argon2_parallelism" yaml:"argon2_parallelism"`
		} `json:"pw_hashing" yaml:"pw_hashing"`
		JWTConfig struct {
			SignKey   string        `json:"sign_key" yaml:"sign_key"`
			ExpiresIn time.Duration `json:"expires_in" yaml:"expires_in"`
		} `json:"jwt_config" yaml:"jwt_config"`
	} `json:"portal_user_config" yaml:"portal_user_config"`

	AllowedInstanceIDs []string `json:"allowed_instance_ids" yaml:"allowed_instance_ids"`

	// DB configs
	DBConfigs struct {
		CaseDB       db.DBConfigYaml `json:"case_db" yaml:"case_db"`
		PortalUserDB db.DBConfigYaml `json:"portal_user_db" yaml:"portal_user_db"`
	} `json:"db_configs" yaml:"db_configs"`

	FilestorePath string `json:"filestore_path" yaml:"filestore_path"`
}

var (
	caseDBService       *caseDB.CaseDBService
	portalUserDBService *portaluserDB.PortalUserDBService
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

	// Init DBs
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// init argon2
	pwhash.InitArgonParams(
		conf.PortalUserConfig.PWHashing.Argon2Memory,
		conf.PortalUserConfig.PWHashing.Argon2Iterations,
		conf.PortalUserConfig.PWHashing.Argon2Parallelism,
	)

	checkFilestorePath()
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

	if jwtSignKey := os.Getenv(ENV_PORTAL_USER_JWT_SIGN_KEY); jwtSignKey != "" {
		conf.PortalUserConfig.JWTConfig.SignKey = jwtSignKey
	}

	if expInVal := os.Getenv(ENV_PORTAL_USER_JWT_EXPIRES_IN); expInVal != "" {
		expiresIn, err := utils.ParseDurationString(expInVal)
		if err != nil {
			slog.Error("could not parse token expiry override", slog.String("error", err.Error()), slog.String("value", expInVal))
			panic(err)
		}
		conf.PortalUserConfig.JWTConfig.ExpiresIn = expiresIn
	}
}

func checkFilestorePath() {
	// To store uploaded signature images
	fsPath := conf.FilestorePath
	if fsPath == "" {
		slog.Error("Filestore path not set")
		panic("Filestore path not set")
	}

	if _, err := os.Stat(fsPath); os.IsNotExist(err) {
		slog.Error("Filestore path does not exist", slog.String("path", fsPath))
		panic("Filestore path does not exist")
	}
}

func initDBs() {
	var err error
	caseDBService, err = caseDB.NewCaseDBService(db.DBConfigFromYamlObj(conf.DBConfigs.CaseDB, conf.AllowedInstanceIDs))
	if err != nil {
		slog.Error("Error connecting to Case DB", slog.String("error", err.Error()))
		panic(err)
	}

	portalUserDBService, err = portaluserDB.NewPortalUserDBService(db.DBConfigFromYamlObj(conf.DBConfigs.PortalUserDB, conf.AllowedInstanceIDs))
	if err != nil {
		slog.Error("Error connecting to Portal User DB", slog.String("error", err.Error()))
		panic(err)
	}
}
