package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName is the directory under the user's home that holds the key files.
	DefaultDirName = ".s3"
	// AccessKeyFile holds the access key ID.
	AccessKeyFile = "key"
	// SecretKeyFile holds the secret access key.
	SecretKeyFile = "private_key"
)

// ErrKeysNotFound indicates that one or both credential files are missing.
var ErrKeysNotFound = errors.New("credential key files not found")

// Credentials is an access key / secret key pair.
type Credentials struct {
	AccessKey string
	SecretKey string
}

// Resolve returns credentials from the explicit pair when both values are
// non-empty, otherwise from the key files under keyLocation.
//
// An empty keyLocation resolves to <home>/.s3 at call time; the home
// directory is never cached across calls.
func Resolve(accessKey, secretKey, keyLocation string) (Credentials, error) {
	if accessKey != "" && secretKey != "" {
		return Credentials{AccessKey: accessKey, SecretKey: secretKey}, nil
	}
	return ReadKeys(keyLocation)
}

// ReadKeys loads the key pair from <keyLocation>/key and
// <keyLocation>/private_key, stripping surrounding whitespace.
func ReadKeys(keyLocation string) (Credentials, error) {
	if keyLocation == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Credentials{}, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		keyLocation = filepath.Join(home, DefaultDirName)
	}

	accessPath := filepath.Join(keyLocation, AccessKeyFile)
	secretPath := filepath.Join(keyLocation, SecretKeyFile)

	if !isFile(accessPath) || !isFile(secretPath) {
		return Credentials{}, fmt.Errorf(
			"%w: no key or private key found in %s, please create files %s and %s",
			ErrKeysNotFound, keyLocation, accessPath, secretPath,
		)
	}

	accessKey, err := readTrimmed(accessPath)
	if err != nil {
		return Credentials{}, err
	}
	secretKey, err := readTrimmed(secretPath)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{AccessKey: accessKey, SecretKey: secretKey}, nil
}

func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
