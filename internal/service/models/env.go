package models

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const DefaultEnvFile = ".env"

// LoadEnvFiles loads variables from dotenv files into process environment.
// Variables that are already set are not overridden.
// If required is false, missing files are skipped.
func LoadEnvFiles(fs afero.Fs, required bool, paths ...string) error {
	for _, path := range paths {
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return errors.Errorf("failed to check env file %q: %v", path, err)
		}

		if !exists {
			if required {
				return errors.Errorf("env file %q does not exist", path)
			}

			continue
		}

		err = loadEnvFile(fs, path)
		if err != nil {
			return errors.WithMessagef(err, "failed to load env file %q", path)
		}
	}

	return nil
}

func loadEnvFile(fs afero.Fs, path string) error {
	f, err := fs.Open(path)
	if err != nil {
		return errors.New(err.Error())
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return errors.New(err.Error())
	}

	for key, value := range vars {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}

		if err = os.Setenv(key, value); err != nil {
			return errors.New(err.Error())
		}
	}

	return nil
}
