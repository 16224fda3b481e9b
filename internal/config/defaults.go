package config

const (
	defaultFlacBinary           = "flac"
	defaultMetaflacBinary       = "metaflac"
	defaultMP3ValBinary         = "mp3val"
	defaultFlacCompressionLevel = 8
	defaultPaddingBytes         = 8192
	defaultMinFreeMiB           = 512
	defaultHistoryPath          = "~/.local/share/salmon/history.db"
	defaultLogDir               = "~/.local/share/salmon/logs"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			Flac:     defaultFlacBinary,
			Metaflac: defaultMetaflacBinary,
			MP3Val:   defaultMP3ValBinary,
		},
		Check: Check{
			Concurrency:          0,
			FlacCompressionLevel: defaultFlacCompressionLevel,
			PaddingBytes:         defaultPaddingBytes,
			MinFreeMiB:           defaultMinFreeMiB,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Dir:    defaultLogDir,
		},
	}
}
