// Package credentials resolves the access key pair used to authenticate
// against the object storage service.
//
// # Resolution Order
//
//  1. Explicit values (configuration or environment), used verbatim when
//     both are non-empty.
//  2. Plaintext key files 'key' and 'private_key' inside the configured key
//     directory (default: ~/.s3), each holding a single value with
//     surrounding whitespace stripped.
//
// Missing key files produce an error wrapping ErrKeysNotFound whose message
// names the directory and both expected file paths, so an operator knows
// exactly what to create.
//
// Credentials are read once per call and never cached; the default key
// directory is resolved from the home directory lazily at call time.
package credentials
