package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load читает .env, если он есть, и применяет флаг -port поверх PORT.
// Переменные окружения процесса имеют приоритет над файлом.
func Load(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
