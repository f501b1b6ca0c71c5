package cli

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
)

const defaultEnvFile = ".env"

// envFileFromArgs finds --env-file in args, then TCOCOMPARE_ENV_FILE, then
// falls back to .env. It runs before flag parsing so the file can feed
// every other flag.
func envFileFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		for _, prefix := range []string{"--env-file", "-env-file"} {
			if arg == prefix && i+1 < len(args) {
				return args[i+1]
			}
			if v, ok := strings.CutPrefix(arg, prefix+"="); ok {
				return v
			}
		}
	}
	if v := os.Getenv(envPrefix + "ENV_FILE"); v != "" {
		return v
	}
	return defaultEnvFile
}

// loadEnvFile loads the dotenv file named by args. Variables already set in
// the environment win. A missing file is not an error.
func loadEnvFile(args []string) error {
	path := envFileFromArgs(args)
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}
