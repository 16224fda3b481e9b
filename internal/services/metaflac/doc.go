// Package metaflac wraps the metaflac binary for metadata block surgery.
package metaflac
