package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateObjectName(prefix, fileName string) string {
	extension := filepath.Ext(fileName)
	base := strings.TrimSuffix(filepath.Base(fileName), extension)
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s/%s_%s%s", prefix, base, timestamp, extension)
}
