package config

import (
	"os"
	"strconv"
)

const (
	defaultBaseURL       = "http://localhost:5001"
	defaultStorePath     = "quizdeck-admin.db"
	defaultBlockSize     = 20
	defaultTokenStoreKey = "token"
)

var (
	apiBaseURL     string
	apiFallbackURL string
	storePath      string
	blockSize      int
)

// Init reads the environment once. Call it before anything else.
func Init() {
	apiBaseURL = getenv("API_BASE_URL", defaultBaseURL)
	apiFallbackURL = os.Getenv("API_FALLBACK_URL")
	storePath = getenv("ADMIN_STORE_PATH", defaultStorePath)

	blockSize = defaultBlockSize
	if raw := os.Getenv("QUESTION_BLOCK_SIZE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			panic("QUESTION_BLOCK_SIZE must be a positive integer")
		}
		blockSize = n
	}
}

func APIBaseURL() string {
	return apiBaseURL
}

// APIFallbackURL is an optional second backend base tried when the primary
// is unreachable or answers 404 (the dev-proxy setup runs the backend on a
// LAN address while the primary points at the proxy).
func APIFallbackURL() string {
	return apiFallbackURL
}

func StorePath() string {
	return storePath
}

// QuestionBlockSize is the size of the numeric question-id block reserved
// per quiz.
func QuestionBlockSize() int {
	if blockSize == 0 {
		return defaultBlockSize
	}
	return blockSize
}

// TokenStoreKey is the fixed localstore key the session token lives under.
func TokenStoreKey() string {
	return defaultTokenStoreKey
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
