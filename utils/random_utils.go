package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// RandomInt32 generates a cryptographically random 32-bit integer
func RandomInt32() int32 {
	var num int32
	if err := binary.Read(rand.Reader, binary.BigEndian, &num); err != nil {
		panic("generate random int32 failed")
	}
	return num
}

// GenerateUploadFilename builds a unique stored-blob filename of the form
// {kind}-{unixms}-{rand}{ext}, e.g. "project-1712345678901-384729384.png".
func GenerateUploadFilename(kind, ext string) string {
	n := RandomInt32()
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("%s-%d-%d%s", kind, time.Now().UnixMilli(), n, ext)
}
