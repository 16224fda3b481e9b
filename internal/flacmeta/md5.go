package flacmeta

import (
	"errors"
	"fmt"

	flac "github.com/go-flac/go-flac"
)

// STREAMINFO layout: the unencoded-audio MD5 occupies the final 16 bytes of
// the 34-byte block body.
const (
	md5Offset     = 18
	streamInfoLen = 34
)

// ErrNoStreamInfo indicates the file carries no STREAMINFO block; such a
// file is not a playable FLAC stream.
var ErrNoStreamInfo = errors.New("flac file has no STREAMINFO block")

// Signature is the raw 16-byte MD5 of the decoded audio stream as stored in
// the file header. The zero value is the "no signature" sentinel.
type Signature [16]byte

// IsZero reports whether the signature is the all-zero absent sentinel.
func (s Signature) IsZero() bool {
	return s == Signature{}
}

// Hex renders the signature the way flac tooling prints it.
func (s Signature) Hex() string {
	return fmt.Sprintf("%x", s[:])
}

// ReadMD5Signature returns the MD5 signature stored in the STREAMINFO block
// of the file at path.
func ReadMD5Signature(path string) (Signature, error) {
	file, err := flac.ParseFile(path)
	if err != nil {
		return Signature{}, fmt.Errorf("parse flac metadata: %w", err)
	}
	block, err := streamInfo(file)
	if err != nil {
		return Signature{}, err
	}
	var sig Signature
	copy(sig[:], block.Data[md5Offset:md5Offset+16])
	return sig, nil
}

// WriteMD5Signature rewrites the stored MD5 signature of the file at path,
// leaving every other metadata block and the audio frames untouched.
func WriteMD5Signature(path string, sig Signature) error {
	file, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse flac metadata: %w", err)
	}
	block, err := streamInfo(file)
	if err != nil {
		return err
	}
	copy(block.Data[md5Offset:md5Offset+16], sig[:])
	if err := file.Save(path); err != nil {
		return fmt.Errorf("save flac metadata: %w", err)
	}
	return nil
}

func streamInfo(file *flac.File) (*flac.MetaDataBlock, error) {
	for _, block := range file.Meta {
		if block.Type != flac.StreamInfo {
			continue
		}
		if len(block.Data) < streamInfoLen {
			return nil, fmt.Errorf("STREAMINFO block truncated: %d bytes", len(block.Data))
		}
		return block, nil
	}
	return nil, ErrNoStreamInfo
}
