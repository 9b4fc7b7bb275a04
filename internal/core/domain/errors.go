package domain

import "go.trai.ch/zerr"

var (
	// ErrHomeNotFound is returned when the user home directory cannot be determined.
	ErrHomeNotFound = zerr.New("could not determine home directory")

	// ErrUnsupportedPlatform is returned for an unknown OS/architecture combination.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrEngineDownloadFailed is returned when fetching the engine archive fails.
	ErrEngineDownloadFailed = zerr.New("failed to download engine")

	// ErrEngineUnpackFailed is returned when the engine archive cannot be extracted.
	ErrEngineUnpackFailed = zerr.New("failed to unpack engine archive")

	// ErrEngineMissing is returned when the archive held no engine binary.
	ErrEngineMissing = zerr.New("engine binary missing after extraction")

	// ErrManifestNotFound is returned when the manifest file does not exist.
	ErrManifestNotFound = zerr.New("config file not found")

	// ErrManifestReadFailed is returned when the manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read config file")

	// ErrManifestParseFailed is returned when the manifest is not valid YAML.
	ErrManifestParseFailed = zerr.New("failed to parse config file")

	// ErrManifestExists is returned by init when a manifest is already present.
	ErrManifestExists = zerr.New("cask.yaml already exists in this directory")

	// ErrIdentityReadFailed is returned when the authoritative file cannot be read.
	ErrIdentityReadFailed = zerr.New("failed to read authoritative file")

	// ErrVenvCreateFailed is returned when the engine cannot create the runtime.
	ErrVenvCreateFailed = zerr.New("failed to create venv")

	// ErrInstallFailed is returned when dependency installation exits non-zero.
	ErrInstallFailed = zerr.New("failed to install dependencies")

	// ErrLockFailed is returned when lockfile compilation exits non-zero.
	ErrLockFailed = zerr.New("failed to lock dependencies")

	// ErrBuildFailed is returned when the build pipeline fails for an identity.
	ErrBuildFailed = zerr.New("environment build failed")

	// ErrPayloadFailed is returned when the user payload exits non-zero.
	ErrPayloadFailed = zerr.New("payload exited with error")

	// ErrEnvFileInvalid is returned when the secrets file has a malformed line.
	ErrEnvFileInvalid = zerr.New("invalid .env file")
)
