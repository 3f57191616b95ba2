package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID 32 位十六进制 uuid，与 varchar(32) 主键对应
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
